package domain

import "github.com/google/uuid"

// Mutations are a closed, typed set: one operation per collection kind.
// None of them validate cross-references or reject input — a task pointing at
// a deleted objective simply stops appearing in derived views. Removing a
// parent deliberately preserves its children as orphans (see views.go);
// nothing is cascade-deleted.

// SetSelfContext replaces the background narrative.
func (p *Plan) SetSelfContext(text string) { p.SelfContext = text }

// SetVision replaces the vision statement.
func (p *Plan) SetVision(text string) { p.Vision = text }

// SetConstraints replaces the constraints narrative.
func (p *Plan) SetConstraints(text string) { p.Constraints = text }

// AddSwotEntry appends an entry to the given SWOT category.
func (p *Plan) AddSwotEntry(cat SwotCategory, text string) {
	p.Swot.setCategory(cat, append(p.Swot.Category(cat), text))
}

// RemoveSwotEntry removes the entry at index i from the given category.
// Out-of-range indexes are a no-op.
func (p *Plan) RemoveSwotEntry(cat SwotCategory, i int) {
	entries := p.Swot.Category(cat)
	if i < 0 || i >= len(entries) {
		return
	}
	p.Swot.setCategory(cat, append(entries[:i:i], entries[i+1:]...))
}

// AddGoal appends a goal with a freshly generated ID and returns it.
func (p *Plan) AddGoal(text string) Goal {
	g := Goal{ID: uuid.NewString(), Text: text}
	p.Goals = append(p.Goals, g)
	return g
}

// RemoveGoal removes the goal with the given ID. Objectives referencing it
// become orphans and are kept.
func (p *Plan) RemoveGoal(id string) {
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			p.Goals = append(p.Goals[:i:i], p.Goals[i+1:]...)
			return
		}
	}
}

// AddObjective appends an objective under the given goal and returns it.
// The goal reference is not validated; an unknown goalID yields an orphan.
func (p *Plan) AddObjective(goalID, text string) Objective {
	o := Objective{ID: uuid.NewString(), GoalID: goalID, Text: text}
	p.Objectives = append(p.Objectives, o)
	return o
}

// RemoveObjective removes the objective with the given ID. Tasks referencing
// it become orphans and are kept.
func (p *Plan) RemoveObjective(id string) {
	for i := range p.Objectives {
		if p.Objectives[i].ID == id {
			p.Objectives = append(p.Objectives[:i:i], p.Objectives[i+1:]...)
			return
		}
	}
}

// AddTask appends a task under the given objective and returns it.
func (p *Plan) AddTask(objectiveID, description, resources, responsibility, timeline string) Task {
	t := Task{
		ID:             uuid.NewString(),
		ObjectiveID:    objectiveID,
		Description:    description,
		Resources:      resources,
		Responsibility: responsibility,
		Timeline:       timeline,
	}
	p.Tasks = append(p.Tasks, t)
	return t
}

// RemoveTask removes the task with the given ID.
func (p *Plan) RemoveTask(id string) {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			p.Tasks = append(p.Tasks[:i:i], p.Tasks[i+1:]...)
			return
		}
	}
}
