package store

import "mergington-activities/models"

// Tx is an exclusive view of the store. Writes are staged and only applied
// on Commit, so a rolled back transaction leaves no trace.
type Tx struct {
	s            *Store
	participants []participantOp
	students     []studentOp
	done         bool
}

type participantOp struct {
	activity string
	email    string
}

type studentOp struct {
	email   string
	student models.Student
}

// GetActivity reads committed state; staged writes are not visible.
func (tx *Tx) GetActivity(name string) (models.Activity, error) {
	if tx.done {
		return models.Activity{}, ErrTxDone
	}
	return tx.s.activity(name)
}

func (tx *Tx) GetStudent(email string) (models.Student, error) {
	if tx.done {
		return models.Student{}, ErrTxDone
	}
	return tx.s.student(email)
}

// AddParticipant stages appending email to the activity's participants.
func (tx *Tx) AddParticipant(activity, email string) error {
	if tx.done {
		return ErrTxDone
	}
	if _, ok := tx.s.activities[activity]; !ok {
		return ErrNotFound
	}
	tx.participants = append(tx.participants, participantOp{activity: activity, email: email})
	return nil
}

// UpsertStudent stages an insert-if-absent of the student.
func (tx *Tx) UpsertStudent(email, name string, grade int) error {
	if tx.done {
		return ErrTxDone
	}
	tx.students = append(tx.students, studentOp{email: email, student: models.Student{Name: name, Grade: grade}})
	return nil
}

// Commit applies staged writes in order and releases the lock.
func (tx *Tx) Commit() error {
	if tx.done {
		return ErrTxDone
	}
	for _, op := range tx.participants {
		a := tx.s.activities[op.activity]
		a.Participants = append(a.Participants, op.email)
		tx.s.activities[op.activity] = a
	}
	for _, op := range tx.students {
		tx.s.insertStudent(op.email, op.student)
	}
	tx.finish()
	return nil
}

// Rollback discards staged writes and releases the lock. Calling it after
// Commit returns ErrTxDone and does nothing else, so it is safe to defer.
func (tx *Tx) Rollback() error {
	if tx.done {
		return ErrTxDone
	}
	tx.finish()
	return nil
}

func (tx *Tx) finish() {
	tx.participants = nil
	tx.students = nil
	tx.done = true
	tx.s.mu.Unlock()
}
