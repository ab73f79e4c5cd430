package models

// SignupResult is returned after a successful signup.
type SignupResult struct {
	Message             string `json:"message"`
	Activity            string `json:"activity"`
	StudentEmail        string `json:"student_email"`
	CurrentParticipants int    `json:"current_participants"`
}
