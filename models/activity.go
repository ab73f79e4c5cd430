package models

// Activity is an extracurricular offering with a participant capacity.
type Activity struct {
	Name            string   `json:"-" yaml:"-"`
	Description     string   `json:"description" yaml:"description" validate:"required"`
	Schedule        string   `json:"schedule" yaml:"schedule" validate:"required"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants" validate:"gte=1"`
	Participants    []string `json:"participants" yaml:"participants" validate:"unique"`
}

// IsFull reports whether no seats remain.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is already signed up.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// View returns the wire representation of the activity, including the
// derived participant count.
func (a Activity) View() ActivityView {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return ActivityView{
		Description:             a.Description,
		Schedule:                a.Schedule,
		MaxParticipants:         a.MaxParticipants,
		Participants:            participants,
		CurrentParticipantCount: len(participants),
	}
}

// ActivityView is what GET /activities returns for each activity.
type ActivityView struct {
	Description             string   `json:"description"`
	Schedule                string   `json:"schedule"`
	MaxParticipants         int      `json:"max_participants"`
	Participants            []string `json:"participants"`
	CurrentParticipantCount int      `json:"current_participant_count"`
}
