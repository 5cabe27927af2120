package domain

// Derived views are pure projections over the plan, recomputed on every call.
// They are cheap (linear scans over small slices) so no caching is done.

// SummaryRow is one line of the goal → objective → task summary table.
// Childless parents are still represented: an objective with no tasks yields
// one row with empty task fields, and a goal with no objectives yields one
// row with empty objective and task fields.
type SummaryRow struct {
	Goal           string
	Objective      string
	Task           string
	Resources      string
	Responsibility string
	Timeline       string
}

// ObjectivesForGoal returns the objectives belonging to the given goal,
// preserving insertion order.
func (p *Plan) ObjectivesForGoal(goalID string) []Objective {
	var out []Objective
	for _, o := range p.Objectives {
		if o.GoalID == goalID {
			out = append(out, o)
		}
	}
	return out
}

// TasksForObjective returns the tasks belonging to the given objective,
// preserving insertion order.
func (p *Plan) TasksForObjective(objectiveID string) []Task {
	var out []Task
	for _, t := range p.Tasks {
		if t.ObjectiveID == objectiveID {
			out = append(out, t)
		}
	}
	return out
}

// OrphanedObjectives returns objectives whose goal no longer exists,
// preserving insertion order. Orphans are excluded from SummaryTable but
// never deleted.
func (p *Plan) OrphanedObjectives() []Objective {
	ids := make(map[string]bool, len(p.Goals))
	for _, g := range p.Goals {
		ids[g.ID] = true
	}
	var out []Objective
	for _, o := range p.Objectives {
		if !ids[o.GoalID] {
			out = append(out, o)
		}
	}
	return out
}

// OrphanedTasks returns tasks whose objective no longer exists, preserving
// insertion order.
func (p *Plan) OrphanedTasks() []Task {
	ids := make(map[string]bool, len(p.Objectives))
	for _, o := range p.Objectives {
		ids[o.ID] = true
	}
	var out []Task
	for _, t := range p.Tasks {
		if !ids[t.ObjectiveID] {
			out = append(out, t)
		}
	}
	return out
}

// SummaryTable flattens the goal → objective → task hierarchy into rows.
// Every goal and every non-orphaned objective appears at least once, so the
// export never silently drops something the user entered.
func (p *Plan) SummaryTable() []SummaryRow {
	var rows []SummaryRow
	for _, g := range p.Goals {
		objectives := p.ObjectivesForGoal(g.ID)
		if len(objectives) == 0 {
			rows = append(rows, SummaryRow{Goal: g.Text})
			continue
		}
		for _, o := range objectives {
			tasks := p.TasksForObjective(o.ID)
			if len(tasks) == 0 {
				rows = append(rows, SummaryRow{Goal: g.Text, Objective: o.Text})
				continue
			}
			for _, t := range tasks {
				rows = append(rows, SummaryRow{
					Goal:           g.Text,
					Objective:      o.Text,
					Task:           t.Description,
					Resources:      t.Resources,
					Responsibility: t.Responsibility,
					Timeline:       t.Timeline,
				})
			}
		}
	}
	return rows
}
