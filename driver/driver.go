package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"mergington-activities/models"
	"mergington-activities/store"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ConnectStore builds the in-memory store. With an empty seedFile the
// compiled-in DefaultSeed is used.
func ConnectStore(seedFile string, log logrus.FieldLogger) (*store.Store, error) {
	seed := DefaultSeed()
	if seedFile != "" {
		var err error
		seed, err = LoadSeed(seedFile)
		if err != nil {
			return nil, err
		}
	}
	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"activities": len(seed.Activities),
		"students":   len(seed.Students),
		"seed_file":  seedFile,
	}).Info("store seeded")
	return store.New(seed), nil
}

// LoadSeed reads a YAML seed file. Unknown keys are rejected.
func LoadSeed(path string) (models.Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed models.Seed
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return models.Seed{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return seed, nil
}

// ValidateSeed checks field constraints and that no activity starts over
// capacity.
func ValidateSeed(seed models.Seed) error {
	if err := validate.Struct(seed); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	var errs []error
	for name, a := range seed.Activities {
		if len(a.Participants) > a.MaxParticipants {
			errs = append(errs, fmt.Errorf("activity %q has %d participants but capacity %d",
				name, len(a.Participants), a.MaxParticipants))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid seed: %w", errors.Join(errs...))
	}
	return nil
}
