package constants

// Request contract identifiers used for payload schema validation.
const (
	RequestCollaborationCreate        = "CollaborationRequestCreateRequest"
	RequestCollaborationCreateVersion = "1.0.0"

	RequestExpertProfileUpsert        = "ExpertProfileUpsertRequest"
	RequestExpertProfileUpsertVersion = "1.0.0"

	RequestPostCreate        = "PostCreateRequest"
	RequestPostCreateVersion = "1.0.0"
)
