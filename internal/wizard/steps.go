package wizard

// StepID identifies a workshop step.
type StepID string

const (
	StepContext     StepID = "context"
	StepSwot        StepID = "swot"
	StepTransition  StepID = "transition"
	StepVision      StepID = "vision"
	StepGoals       StepID = "goals"
	StepObjectives  StepID = "objectives"
	StepTasks       StepID = "tasks"
	StepConstraints StepID = "constraints"
	StepSummary     StepID = "summary"
)

// SkipPolicy controls whether a pure-transition step is auto-skipped when the
// user advances into it.
type SkipPolicy string

const (
	SkipNever           SkipPolicy = "never"
	SkipAlways          SkipPolicy = "always"
	SkipAfterFirstVisit SkipPolicy = "after_first_visit"
)

// ReflectionMode categorizes how a reflection prompt is meant to be discussed.
type ReflectionMode string

const (
	ReflectSolo ReflectionMode = "solo"
	ReflectPair ReflectionMode = "pair"
	ReflectTrio ReflectionMode = "trio"
)

// Reflection is a non-data-bearing prompt shown on arrival at a step. It is
// dismissible and re-openable; it never gates navigation.
type Reflection struct {
	Title   string
	Prompts []string
	Mode    ReflectionMode
}

// Guidance is the methodology sidebar for a step.
type Guidance struct {
	Title       string
	Description string
	HowTo       string
	Example     string
}

// Step is the configuration of one workshop step. Transition steps carry no
// data-entry fields; their Skip policy decides whether Advance passes
// through them.
type Step struct {
	ID         StepID
	Title      string
	Transition bool
	Skip       SkipPolicy
	Guidance   *Guidance
	Reflection *Reflection
}

// DefaultSteps returns the canonical workshop step sequence.
func DefaultSteps() []Step {
	return []Step{
		{
			ID:    StepContext,
			Title: "Mapping & Background",
			Guidance: &Guidance{
				Title:       "Where are we today?",
				Description: "Understanding the environment and background is the base of any relevant work plan.",
				HowTo:       "Describe the current reality: what occupies the unit, and what has changed in the municipal or educational environment.",
				Example:     "Rising demand for special-education support alongside a municipal shift toward welfare.",
			},
		},
		{
			ID:    StepSwot,
			Title: "SWOT Analysis",
			Guidance: &Guidance{
				Title:       "SWOT analysis",
				Description: "A tool for mapping the forces acting inside and outside the service.",
				HowTo:       "Strengths and weaknesses are internal. Opportunities and threats are external.",
				Example:     "Opportunity: a new municipal resilience center is opening.",
			},
		},
		{
			ID:         StepTransition,
			Title:      "From Analysis to Direction",
			Transition: true,
			Skip:       SkipAfterFirstVisit,
			Reflection: &Reflection{
				Title: "Pause before planning",
				Mode:  ReflectPair,
				Prompts: []string{
					"Looking at your SWOT, which single force will shape the coming year the most?",
					"What would you stop doing tomorrow if you could?",
				},
			},
		},
		{
			ID:    StepVision,
			Title: "Service Vision",
			Guidance: &Guidance{
				Title:       "How to phrase a vision?",
				Description: "A vision is the desired picture of the future. It should be short, memorable and inspiring.",
				HowTo:       "Use present or future tense verbs. Think about the core value you bring to the community.",
				Example:     "A leading service that is a hub of knowledge and resilience for every child and educational team in the city.",
			},
			Reflection: &Reflection{
				Title: "Thinking about the future",
				Mode:  ReflectPair,
				Prompts: []string{
					"What is the one thing you would want said about your service in three years?",
					"Which single word best describes your professional mission this year?",
				},
			},
		},
		{
			ID:    StepGoals,
			Title: "Strategic Goals",
			Guidance: &Guidance{
				Title:       "Strategic goals",
				Description: "Goals are the milestones toward realizing the vision.",
				HowTo:       "Phrase broad goals that define a change or improvement in a specific area.",
				Example:     "Embed a community-prevention work model in all elementary schools.",
			},
			Reflection: &Reflection{
				Title: "Focusing the effort",
				Mode:  ReflectTrio,
				Prompts: []string{
					"Out of all the challenges, which three topics are the most critical this year?",
					"Where is the largest gap between the current and the desired state of your service?",
				},
			},
		},
		{
			ID:    StepObjectives,
			Title: "SMART Objectives",
			Guidance: &Guidance{
				Title:       "SMART objectives",
				Description: "An objective breaks a goal down into something measurable and concrete.",
				HowTo:       "Make sure the objective is specific, measurable, achievable, relevant and time-bound.",
				Example:     "Build a training program for 5 counselor teams by December.",
			},
		},
		{
			ID:    StepTasks,
			Title: "Action Plan",
			Guidance: &Guidance{
				Title:       "Action items",
				Description: "Here the plan becomes reality.",
				HowTo:       "Break each objective into small tasks. Define the owner, the timeline and the required resources.",
				Example:     "Task: collect training materials. Owner: community coordinator. Timeline: two weeks.",
			},
			Reflection: &Reflection{
				Title: "From vision to the field",
				Mode:  ReflectSolo,
				Prompts: []string{
					"Who on your team is the engine that can drive these tasks?",
					"What is the first thing you will do on Sunday morning to get started?",
				},
			},
		},
		{
			ID:    StepConstraints,
			Title: "Constraints & Risks",
			Guidance: &Guidance{
				Title:       "Managing constraints",
				Description: "Identify in advance what could go wrong.",
				HowTo:       "Think about staffing, budget or unexpected political changes.",
				Example:     "Possible delay in receiving external funding for the prevention project.",
			},
		},
		{
			ID:    StepSummary,
			Title: "Final Plan",
		},
	}
}
