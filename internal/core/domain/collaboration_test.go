package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewCollaborationRequestStartsPending(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()
	expert := uuid.New()

	request := NewCollaborationRequest(sender, recipient, expert,
		RequestTypeCoffeeChat, "커피챗 요청", "안녕하세요", nil)

	assert.Equal(t, RequestStatusPending, request.Status)
	assert.Equal(t, sender, request.SenderID)
	assert.Equal(t, recipient, request.RecipientID)
	assert.NotEqual(t, uuid.Nil, request.ID)
	assert.Nil(t, request.RespondedAt)
}

func TestResponseActionStatusFor(t *testing.T) {
	tests := []struct {
		action ResponseAction
		want   RequestStatus
		ok     bool
	}{
		{action: ResponseAccept, want: RequestStatusAccepted, ok: true},
		{action: ResponseDecline, want: RequestStatusDeclined, ok: true},
		{action: ResponseAction("cancel"), ok: false},
		{action: ResponseAction(""), ok: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			status, ok := tt.action.StatusFor()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, status)
			}
		})
	}
}
