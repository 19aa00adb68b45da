package rest

import (
	"time"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// ExpertCardResponse is one entry in the directory listing.
type ExpertCardResponse struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	BusinessName string   `json:"business_name"`
	Description  string   `json:"description"`
	Specialties  []string `json:"specialties"`
	Regions      []string `json:"regions"`
	HourlyRate   *float64 `json:"hourly_rate"`
	IsAvailable  bool     `json:"is_available"`
	IsFeatured   bool     `json:"is_featured"`
	ViewCount    int      `json:"view_count"`
	RequestCount int      `json:"request_count"`
	DisplayName  string   `json:"display_name"`
	AvatarURL    *string  `json:"avatar_url"`
	Company      *string  `json:"company"`
	CreatedAt    string   `json:"created_at"`
}

// PaginatedExpertsResponse is the directory page envelope.
type PaginatedExpertsResponse struct {
	Data    []ExpertCardResponse `json:"data"`
	Total   int                  `json:"total"`
	HasMore bool                 `json:"has_more"`
}

// UpsertExpertProfileRequest is the body for creating or updating the
// caller's expert profile.
type UpsertExpertProfileRequest struct {
	Category     string   `json:"category"`
	BusinessName string   `json:"business_name"`
	Description  string   `json:"description"`
	Specialties  []string `json:"specialties"`
	Regions      []string `json:"regions"`
	HourlyRate   *float64 `json:"hourly_rate"`
	IsAvailable  bool     `json:"is_available"`
}

// ExpertProfileResponse echoes the stored profile back after an upsert.
type ExpertProfileResponse struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	BusinessName string   `json:"business_name"`
	Description  string   `json:"description"`
	Specialties  []string `json:"specialties"`
	Regions      []string `json:"regions"`
	HourlyRate   *float64 `json:"hourly_rate"`
	IsAvailable  bool     `json:"is_available"`
	Status       string   `json:"status"`
}

// CreateRequestBody is the body for sending a collaboration request.
type CreateRequestBody struct {
	ExpertProfileID string  `json:"expert_profile_id"`
	Type            string  `json:"type"`
	Subject         string  `json:"subject"`
	Message         string  `json:"message"`
	ContactInfo     *string `json:"contact_info,omitempty"`
}

// RespondRequestBody carries the recipient's decision.
type RespondRequestBody struct {
	Action string `json:"action"`
}

// CollaborationRequestResponse is a single request in API responses.
type CollaborationRequestResponse struct {
	ID              string  `json:"id"`
	SenderID        string  `json:"sender_id"`
	RecipientID     string  `json:"recipient_id"`
	ExpertProfileID string  `json:"expert_profile_id"`
	Type            string  `json:"type"`
	Subject         string  `json:"subject"`
	Message         string  `json:"message"`
	ContactInfo     *string `json:"contact_info,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	RespondedAt     *string `json:"responded_at,omitempty"`
}

// NotificationResponse is a single inbox entry.
type NotificationResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	ReferenceID *string `json:"reference_id,omitempty"`
	IsRead      bool    `json:"is_read"`
	CreatedAt   string  `json:"created_at"`
}

// PaginatedNotificationsResponse is one inbox page.
type PaginatedNotificationsResponse struct {
	Data    []NotificationResponse `json:"data"`
	Total   int                    `json:"total"`
	HasMore bool                   `json:"has_more"`
}

// UnreadCountResponse wraps the unread badge counter.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// MarkedAllResponse reports how many notifications a bulk mark-read touched.
type MarkedAllResponse struct {
	Marked int64 `json:"marked"`
}

// ProgramResponse is a single support-program listing.
type ProgramResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Organization  string  `json:"organization"`
	Category      string  `json:"category"`
	Region        string  `json:"region"`
	SupportAmount *string `json:"support_amount,omitempty"`
	StartsAt      *string `json:"starts_at,omitempty"`
	DeadlineAt    *string `json:"deadline_at,omitempty"`
	Link          string  `json:"link"`
	Description   string  `json:"description"`
}

// PaginatedProgramsResponse is one page of program listings.
type PaginatedProgramsResponse struct {
	Data    []ProgramResponse `json:"data"`
	Total   int               `json:"total"`
	HasMore bool              `json:"has_more"`
}

// CreatePostRequest is the body for a new community post.
type CreatePostRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// PostResponse is a single community post.
type PostResponse struct {
	ID           string `json:"id"`
	AuthorID     string `json:"author_id"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	CreatedAt    string `json:"created_at"`
}

// PaginatedPostsResponse is one page of the community board.
type PaginatedPostsResponse struct {
	Data    []PostResponse `json:"data"`
	Total   int            `json:"total"`
	HasMore bool           `json:"has_more"`
}

// RegisterRequest is the sign-up body.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the sign-in body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toExpertCardResponse(e domain.ExpertWithProfile) ExpertCardResponse {
	return ExpertCardResponse{
		ID:           e.ID.String(),
		Category:     string(e.Category),
		BusinessName: e.BusinessName,
		Description:  e.Description,
		Specialties:  e.Specialties,
		Regions:      e.Regions,
		HourlyRate:   e.HourlyRate,
		IsAvailable:  e.IsAvailable,
		IsFeatured:   e.IsFeatured,
		ViewCount:    e.ViewCount,
		RequestCount: e.RequestCount,
		DisplayName:  e.Profile.DisplayName,
		AvatarURL:    e.Profile.AvatarURL,
		Company:      e.Profile.Company,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func toCollaborationRequestResponse(req *domain.CollaborationRequest) CollaborationRequestResponse {
	resp := CollaborationRequestResponse{
		ID:              req.ID.String(),
		SenderID:        req.SenderID.String(),
		RecipientID:     req.RecipientID.String(),
		ExpertProfileID: req.ExpertProfileID.String(),
		Type:            string(req.Type),
		Subject:         req.Subject,
		Message:         req.Message,
		ContactInfo:     req.ContactInfo,
		Status:          string(req.Status),
		CreatedAt:       req.CreatedAt.Format(time.RFC3339),
	}
	if req.RespondedAt != nil {
		respondedAt := req.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &respondedAt
	}
	return resp
}

func toPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:           p.ID.String(),
		AuthorID:     p.AuthorID.String(),
		Category:     p.Category,
		Title:        p.Title,
		Content:      p.Content,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
