package contracts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEventBody(t *testing.T, mutate func(map[string]interface{})) []byte {
	t.Helper()

	body := map[string]interface{}{
		"id":           uuid.NewString(),
		"user_id":      uuid.NewString(),
		"type":         "request_received",
		"title":        "새로운 협업 요청이 도착했습니다",
		"body":         "「커피챗」 요청: 세무 상담",
		"reference_id": uuid.NewString(),
		"created_at":   time.Now().UTC().Format(time.RFC3339),
	}
	if mutate != nil {
		mutate(body)
	}

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

func TestValidateEventAcceptsNotificationCreated(t *testing.T) {
	err := ValidateEvent("NotificationCreatedEvent", "1.0.0", validEventBody(t, nil))
	assert.NoError(t, err)
}

func TestValidateEventAcceptsNullReference(t *testing.T) {
	body := validEventBody(t, func(m map[string]interface{}) {
		m["reference_id"] = nil
	})
	assert.NoError(t, ValidateEvent("NotificationCreatedEvent", "1.0.0", body))
}

func TestValidateEventRejectsMissingField(t *testing.T) {
	body := validEventBody(t, func(m map[string]interface{}) {
		delete(m, "title")
	})
	require.Error(t, ValidateEvent("NotificationCreatedEvent", "1.0.0", body))
}

func TestValidateEventRejectsUnknownNotificationType(t *testing.T) {
	body := validEventBody(t, func(m map[string]interface{}) {
		m["type"] = "marketing_blast"
	})
	require.Error(t, ValidateEvent("NotificationCreatedEvent", "1.0.0", body))
}

func TestValidateEventRejectsExtraProperties(t *testing.T) {
	body := validEventBody(t, func(m map[string]interface{}) {
		m["debug"] = true
	})
	require.Error(t, ValidateEvent("NotificationCreatedEvent", "1.0.0", body))
}

func TestValidateEventRejectsUnknownSchema(t *testing.T) {
	require.Error(t, ValidateEvent("NoSuchEvent", "1.0.0", validEventBody(t, nil)))
}

func TestValidateEventRejectsMalformedJSON(t *testing.T) {
	require.Error(t, ValidateEvent("NotificationCreatedEvent", "1.0.0", []byte("{")))
}

func validCreatePayload(t *testing.T, mutate func(map[string]interface{})) []byte {
	t.Helper()

	payload := map[string]interface{}{
		"expert_profile_id": uuid.NewString(),
		"type":              "coffee_chat",
		"subject":           "법인 설립 상담",
		"message":           "30분 정도 커피챗 가능하실까요?",
	}
	if mutate != nil {
		mutate(payload)
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return raw
}

func TestValidateRequestAcceptsCollaborationCreate(t *testing.T) {
	err := ValidateRequest("CollaborationRequestCreateRequest", "1.0.0", validCreatePayload(t, nil))
	assert.NoError(t, err)
}

func TestValidateRequestRejectsUnknownRequestType(t *testing.T) {
	payload := validCreatePayload(t, func(m map[string]interface{}) {
		m["type"] = "mentoring"
	})
	require.Error(t, ValidateRequest("CollaborationRequestCreateRequest", "1.0.0", payload))
}

func TestValidateRequestRejectsEmptySubject(t *testing.T) {
	payload := validCreatePayload(t, func(m map[string]interface{}) {
		m["subject"] = ""
	})
	require.Error(t, ValidateRequest("CollaborationRequestCreateRequest", "1.0.0", payload))
}
