package domain

import "time"

// Draft is a saved workshop session: the plan, the step the user was on and
// any generated final report, snapshotted under a name so a workshop can be
// resumed after the program exits.
type Draft struct {
	ID          string
	Name        string
	Plan        *Plan
	StepIndex   int
	FinalReport string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
