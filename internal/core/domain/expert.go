package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExpertStatus is the moderation state of an expert profile.
// Only approved experts are visible in the public directory.
type ExpertStatus string

const (
	ExpertStatusPending   ExpertStatus = "pending"
	ExpertStatusApproved  ExpertStatus = "approved"
	ExpertStatusRejected  ExpertStatus = "rejected"
	ExpertStatusSuspended ExpertStatus = "suspended"
)

// ExpertCategory is the service area of an expert.
type ExpertCategory string

const (
	CategoryMarketing   ExpertCategory = "marketing"
	CategoryDevelopment ExpertCategory = "development"
	CategoryDesign      ExpertCategory = "design"
	CategoryFinance     ExpertCategory = "finance"
	CategoryLegal       ExpertCategory = "legal"
	CategoryHR          ExpertCategory = "hr"
	CategoryStrategy    ExpertCategory = "strategy"
)

// ValidExpertCategory reports whether the given value is a known category.
func ValidExpertCategory(c string) bool {
	switch ExpertCategory(c) {
	case CategoryMarketing, CategoryDevelopment, CategoryDesign,
		CategoryFinance, CategoryLegal, CategoryHR, CategoryStrategy:
		return true
	}
	return false
}

// ExpertProfile is the vetted service-provider record associated with one user account.
type ExpertProfile struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Category     ExpertCategory
	BusinessName string
	Description  string
	Specialties  []string
	Regions      []string
	HourlyRate   *float64 // nil means "price on request"
	IsAvailable  bool
	IsFeatured   bool
	Status       ExpertStatus
	ViewCount    int
	RequestCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileSummary is the minimal user-profile projection joined onto an expert
// for display purposes (the full profile is owned by the users table).
type ProfileSummary struct {
	DisplayName string
	AvatarURL   *string
	Company     *string
}

// ExpertWithProfile is what the directory returns: the expert record plus
// the display fields of its owner.
type ExpertWithProfile struct {
	ExpertProfile
	Profile ProfileSummary
}

// ExpertListResult is one page of the expert directory.
// Invariant: len(Experts) <= the requested limit.
type ExpertListResult struct {
	Experts    []ExpertWithProfile
	TotalCount int
	HasMore    bool
}

// ExpertProfileDraft carries the caller-editable fields of an expert profile.
// New profiles always enter moderation as pending.
type ExpertProfileDraft struct {
	Category     ExpertCategory
	BusinessName string
	Description  string
	Specialties  []string
	Regions      []string
	HourlyRate   *float64
	IsAvailable  bool
}
