package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"mergington-activities/models"
	"mergington-activities/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultGrade is assigned to students created by their first signup.
const DefaultGrade = 9

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up for this activity")
	ErrActivityFull     = errors.New("activity is full")
)

type SignupService struct {
	store *store.Store
	log   logrus.FieldLogger
}

func NewSignupService(s *store.Store, log logrus.FieldLogger) *SignupService {
	return &SignupService{store: s, log: log}
}

// Signup adds email to the named activity. Checks run in a fixed order:
// the activity must exist, the email must not already be a participant,
// and a seat must be free. The store is only touched once all three pass,
// and an unknown email gets a student record in the same transaction.
func (s *SignupService) Signup(activityName, email string) (models.SignupResult, error) {
	tx := s.store.Begin()
	defer tx.Rollback()

	activity, err := tx.GetActivity(activityName)
	if errors.Is(err, store.ErrNotFound) {
		return s.reject(activityName, email, ErrActivityNotFound)
	}
	if err != nil {
		return models.SignupResult{}, fmt.Errorf("load activity %q: %w", activityName, err)
	}
	if activity.HasParticipant(email) {
		return s.reject(activityName, email, ErrAlreadySignedUp)
	}
	if activity.IsFull() {
		return s.reject(activityName, email, ErrActivityFull)
	}

	if err := tx.AddParticipant(activityName, email); err != nil {
		return models.SignupResult{}, fmt.Errorf("add participant: %w", err)
	}
	created := false
	if _, err := tx.GetStudent(email); errors.Is(err, store.ErrNotFound) {
		if err := tx.UpsertStudent(email, StudentNameFromEmail(email), DefaultGrade); err != nil {
			return models.SignupResult{}, fmt.Errorf("create student: %w", err)
		}
		created = true
	}
	if err := tx.Commit(); err != nil {
		return models.SignupResult{}, fmt.Errorf("commit signup: %w", err)
	}

	count := len(activity.Participants) + 1
	s.log.WithFields(logrus.Fields{
		"activity":        activityName,
		"email":           email,
		"participants":    count,
		"student_created": created,
	}).Info("student signed up")

	return models.SignupResult{
		Message:             fmt.Sprintf("Successfully signed up %s for %s", email, activityName),
		Activity:            activityName,
		StudentEmail:        email,
		CurrentParticipants: count,
	}, nil
}

func (s *SignupService) reject(activityName, email string, err error) (models.SignupResult, error) {
	s.log.WithFields(logrus.Fields{
		"activity": activityName,
		"email":    email,
	}).WithError(err).Debug("signup rejected")
	return models.SignupResult{}, err
}

// StudentNameFromEmail derives a display name from the part of the email
// before the first "@": dots become spaces and each word is title-cased,
// so "jane.doe@mergington.edu" gives "Jane Doe". Any non-letter ends a
// word, so "o'brien" gives "O'Brien" and "john2smith" gives "John2Smith".
func StudentNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.ReplaceAll(local, ".", " ")

	caser := cases.Title(language.Und)
	var b strings.Builder
	start := -1
	for i, r := range local {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(local[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(local[start:]))
	}
	return b.String()
}
