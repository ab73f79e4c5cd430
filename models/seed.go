package models

// Seed is the initial content of the store, either compiled in or read from
// a YAML file.
type Seed struct {
	Activities map[string]Activity `yaml:"activities" validate:"required,dive"`
	Students   map[string]Student  `yaml:"students" validate:"dive"`
}

// Clone returns a deep copy of the seed.
func (s Seed) Clone() Seed {
	out := Seed{
		Activities: make(map[string]Activity, len(s.Activities)),
		Students:   make(map[string]Student, len(s.Students)),
	}
	for name, a := range s.Activities {
		a.Name = name
		a.Participants = append([]string(nil), a.Participants...)
		out.Activities[name] = a
	}
	for email, st := range s.Students {
		out.Students[email] = st
	}
	return out
}
