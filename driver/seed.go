package driver

import "mergington-activities/models"

// DefaultSeed is the data the API starts with when no seed file is given.
func DefaultSeed() models.Seed {
	return models.Seed{
		Activities: map[string]models.Activity{
			"Chess Club": {
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
			"Programming Class": {
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
			"Gym Class": {
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
		},
		Students: map[string]models.Student{
			"michael@mergington.edu": {Name: "Michael Smith", Grade: 10},
			"daniel@mergington.edu":  {Name: "Daniel Johnson", Grade: 11},
			"emma@mergington.edu":    {Name: "Emma Davis", Grade: 9},
			"sophia@mergington.edu":  {Name: "Sophia Wilson", Grade: 12},
			"john@mergington.edu":    {Name: "John Brown", Grade: 10},
			"olivia@mergington.edu":  {Name: "Olivia Miller", Grade: 11},
		},
	}
}
