package driver

import (
	"os"
	"path/filepath"
	"testing"

	"mergington-activities/models"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultSeedIsValid(t *testing.T) {
	seed := DefaultSeed()
	require.NoError(t, ValidateSeed(seed))
	require.Len(t, seed.Activities, 3)
	require.Len(t, seed.Students, 6)
}

func TestConnectStoreDefault(t *testing.T) {
	log, hook := test.NewNullLogger()

	s, err := ConnectStore("", log)
	require.NoError(t, err)

	chess := s.ListActivities()["Chess Club"]
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, "store seeded", hook.LastEntry().Message)
}

func TestConnectStoreFromFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := writeSeed(t, `
activities:
  Art Studio:
    description: Painting and drawing
    schedule: Wednesdays
    max_participants: 2
    participants: [ada@mergington.edu]
students:
  ada@mergington.edu:
    name: Ada Lovelace
    grade: 12
`)

	s, err := ConnectStore(path, log)
	require.NoError(t, err)

	require.Equal(t, models.ActivityView{
		Description:             "Painting and drawing",
		Schedule:                "Wednesdays",
		MaxParticipants:         2,
		Participants:            []string{"ada@mergington.edu"},
		CurrentParticipantCount: 1,
	}, s.ListActivities()["Art Studio"])
	require.Equal(t, map[string]models.Student{
		"ada@mergington.edu": {Name: "Ada Lovelace", Grade: 12},
	}, s.ListStudents())
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read seed file")

	path := writeSeed(t, "activities:\n  Chess Club:\n    capacity: 3\n")
	_, err = LoadSeed(path)
	require.ErrorContains(t, err, "decode seed file")
}

func TestValidateSeed(t *testing.T) {
	valid := func() models.Seed {
		return models.Seed{
			Activities: map[string]models.Activity{
				"Chess Club": {Description: "d", Schedule: "s", MaxParticipants: 2, Participants: []string{"a@x"}},
			},
			Students: map[string]models.Student{"a@x": {Name: "A", Grade: 9}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.Seed)
	}{
		{name: "no activities", mutate: func(s *models.Seed) { s.Activities = nil }},
		{name: "zero capacity", mutate: func(s *models.Seed) {
			a := s.Activities["Chess Club"]
			a.MaxParticipants = 0
			a.Participants = nil
			s.Activities["Chess Club"] = a
		}},
		{name: "missing schedule", mutate: func(s *models.Seed) {
			a := s.Activities["Chess Club"]
			a.Schedule = ""
			s.Activities["Chess Club"] = a
		}},
		{name: "duplicate participants", mutate: func(s *models.Seed) {
			a := s.Activities["Chess Club"]
			a.Participants = []string{"a@x", "a@x"}
			s.Activities["Chess Club"] = a
		}},
		{name: "over capacity", mutate: func(s *models.Seed) {
			a := s.Activities["Chess Club"]
			a.Participants = []string{"a@x", "b@x", "c@x"}
			s.Activities["Chess Club"] = a
		}},
		{name: "grade out of range", mutate: func(s *models.Seed) {
			s.Students["a@x"] = models.Student{Name: "A", Grade: 13}
		}},
		{name: "student without name", mutate: func(s *models.Seed) {
			s.Students["a@x"] = models.Student{Grade: 9}
		}},
	}

	require.NoError(t, ValidateSeed(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := valid()
			tt.mutate(&seed)
			require.ErrorContains(t, ValidateSeed(seed), "invalid seed")
		})
	}
}

func TestConnectStoreRejectsInvalidFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := writeSeed(t, `
activities:
  Tiny:
    description: d
    schedule: s
    max_participants: 1
    participants: [a@x, b@x]
`)

	_, err := ConnectStore(path, log)
	require.ErrorContains(t, err, "capacity 1")
}
