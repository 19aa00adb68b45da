package domain

import (
	"time"

	"github.com/google/uuid"
)

// SupportProgram is a government or accelerator support listing
// (자원사업) shown to founders.
type SupportProgram struct {
	ID            uuid.UUID
	Title         string
	Organization  string
	Category      string
	Region        string
	SupportAmount *string
	StartsAt      *time.Time
	DeadlineAt    *time.Time
	Link          string
	Description   string
	CreatedAt     time.Time
}

// ProgramFilters are the optional filters of the program listing.
type ProgramFilters struct {
	Category      *string
	Region        *string
	Keyword       *string
	IncludeClosed bool
}

// ProgramPage is one page of program listings.
type ProgramPage struct {
	Programs   []SupportProgram
	TotalCount int
	HasMore    bool
}
