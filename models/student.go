package models

// Student is identified by email; the email is the map key and is not
// repeated in the body.
type Student struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Grade int    `json:"grade" yaml:"grade" validate:"gte=1,lte=12"`
}
