package domain

// Plan is the work plan under construction. It is owned by a single session
// and mutated only through the typed operations in mutate.go.
type Plan struct {
	SelfContext string      `json:"self_context"`
	Swot        Swot        `json:"swot"`
	Vision      string      `json:"vision"`
	Goals       []Goal      `json:"goals"`
	Objectives  []Objective `json:"objectives"`
	Tasks       []Task      `json:"tasks"`
	Constraints string      `json:"constraints"`
}

// Swot holds the four analysis categories. Entries keep insertion order and
// duplicates are allowed; an entry has no identity beyond its position.
type Swot struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// Goal is a top-level strategic aim. Display order is the slice order in
// Plan.Goals; the ID is the stable reference used by objectives.
type Goal struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Objective is a SMART-style measurable target belonging to exactly one goal.
type Objective struct {
	ID     string `json:"id"`
	GoalID string `json:"goal_id"`
	Text   string `json:"text"`
}

// Task is an actionable item belonging to exactly one objective.
type Task struct {
	ID             string `json:"id"`
	ObjectiveID    string `json:"objective_id"`
	Description    string `json:"description"`
	Resources      string `json:"resources"`
	Responsibility string `json:"responsibility"`
	Timeline       string `json:"timeline"`
}

// SwotCategory identifies one of the four SWOT lists.
type SwotCategory string

const (
	SwotStrengths     SwotCategory = "strengths"
	SwotWeaknesses    SwotCategory = "weaknesses"
	SwotOpportunities SwotCategory = "opportunities"
	SwotThreats       SwotCategory = "threats"
)

// SwotCategories is the canonical display order of the four lists.
var SwotCategories = []SwotCategory{
	SwotStrengths, SwotWeaknesses, SwotOpportunities, SwotThreats,
}

// NewPlan returns an empty plan. List fields start as empty slices so JSON
// snapshots never contain nulls.
func NewPlan() *Plan {
	return &Plan{
		Swot: Swot{
			Strengths:     []string{},
			Weaknesses:    []string{},
			Opportunities: []string{},
			Threats:       []string{},
		},
		Goals:      []Goal{},
		Objectives: []Objective{},
		Tasks:      []Task{},
	}
}

// Clone returns a deep copy of the plan, safe to read from another goroutine
// while the original keeps being edited.
func (p *Plan) Clone() *Plan {
	c := *p
	c.Swot = Swot{
		Strengths:     append([]string{}, p.Swot.Strengths...),
		Weaknesses:    append([]string{}, p.Swot.Weaknesses...),
		Opportunities: append([]string{}, p.Swot.Opportunities...),
		Threats:       append([]string{}, p.Swot.Threats...),
	}
	c.Goals = append([]Goal{}, p.Goals...)
	c.Objectives = append([]Objective{}, p.Objectives...)
	c.Tasks = append([]Task{}, p.Tasks...)
	return &c
}

// Category returns the entries of the given SWOT category.
func (s *Swot) Category(cat SwotCategory) []string {
	switch cat {
	case SwotStrengths:
		return s.Strengths
	case SwotWeaknesses:
		return s.Weaknesses
	case SwotOpportunities:
		return s.Opportunities
	case SwotThreats:
		return s.Threats
	}
	return nil
}

func (s *Swot) setCategory(cat SwotCategory, entries []string) {
	switch cat {
	case SwotStrengths:
		s.Strengths = entries
	case SwotWeaknesses:
		s.Weaknesses = entries
	case SwotOpportunities:
		s.Opportunities = entries
	case SwotThreats:
		s.Threats = entries
	}
}

// GoalByID returns the goal with the given ID, or nil.
func (p *Plan) GoalByID(id string) *Goal {
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			return &p.Goals[i]
		}
	}
	return nil
}

// ObjectiveByID returns the objective with the given ID, or nil.
func (p *Plan) ObjectiveByID(id string) *Objective {
	for i := range p.Objectives {
		if p.Objectives[i].ID == id {
			return &p.Objectives[i]
		}
	}
	return nil
}
