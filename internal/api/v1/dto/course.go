package dto

// CourseCreateDTO is used for incoming course creation requests. The owner is
// always the authenticated user, so there is no user field.
type CourseCreateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests.
// Optional fields left out of the body keep their stored value.
type CourseUpdateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	EstimatedTime *string        `json:"estimatedTime"`
	Owner         CourseOwnerDTO `json:"owner"`
}

type CourseOwnerDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
