package wizard

import "planshop/internal/domain"

// Sequencer is the finite state machine over the ordered workshop steps.
// The first step has no backward transition and the last step no forward
// transition; jumping is only allowed to already-completed (earlier) steps so
// a user can never reach, say, the tasks step before objectives exist.
type Sequencer struct {
	steps   []Step
	current int
	visited []bool

	// interstitialOpen tracks the reflection overlay for the current step.
	// It opens by default on every arrival at a step with a reflection.
	interstitialOpen bool
}

// NewSequencer creates a sequencer positioned at the first step.
func NewSequencer(steps []Step) *Sequencer {
	s := &Sequencer{
		steps:   steps,
		visited: make([]bool, len(steps)),
	}
	if len(steps) > 0 {
		s.visited[0] = true
		s.interstitialOpen = steps[0].Reflection != nil
	}
	return s
}

// Steps returns the configured step sequence.
func (s *Sequencer) Steps() []Step { return s.steps }

// Index returns the current step index.
func (s *Sequencer) Index() int { return s.current }

// Current returns the current step.
func (s *Sequencer) Current() Step { return s.steps[s.current] }

// AtTerminal reports whether the sequencer is on the last step.
func (s *Sequencer) AtTerminal() bool { return s.current == len(s.steps)-1 }

// Visited reports whether the step at index i has been arrived at.
func (s *Sequencer) Visited(i int) bool {
	return i >= 0 && i < len(s.visited) && s.visited[i]
}

// Advance moves one step forward, passing through transition steps whose
// skip policy applies. Returns false (no state change) at the terminal step.
func (s *Sequencer) Advance() bool {
	if s.AtTerminal() {
		return false
	}
	next := s.current + 1
	for next < len(s.steps)-1 && s.shouldSkip(next) {
		s.visited[next] = true
		next++
	}
	s.arrive(next)
	return true
}

// Retreat moves one step backward. Returns false at the initial step.
func (s *Sequencer) Retreat() bool {
	if s.current == 0 {
		return false
	}
	s.arrive(s.current - 1)
	return true
}

// JumpTo moves directly to an earlier step. Jumps to the current step or any
// later step are rejected with no state change.
func (s *Sequencer) JumpTo(target int) bool {
	if target < 0 || target >= s.current {
		return false
	}
	s.arrive(target)
	return true
}

func (s *Sequencer) arrive(i int) {
	s.current = i
	s.visited[i] = true
	s.interstitialOpen = s.steps[i].Reflection != nil
}

func (s *Sequencer) shouldSkip(i int) bool {
	st := s.steps[i]
	if !st.Transition {
		return false
	}
	switch st.Skip {
	case SkipAlways:
		return true
	case SkipAfterFirstVisit:
		return s.visited[i]
	}
	return false
}

// InterstitialOpen reports whether the current step's reflection overlay is
// showing.
func (s *Sequencer) InterstitialOpen() bool { return s.interstitialOpen }

// DismissInterstitial closes the reflection overlay. Dismissal is optional
// and never gates navigation.
func (s *Sequencer) DismissInterstitial() { s.interstitialOpen = false }

// ReopenInterstitial shows the current step's reflection again, if it has one.
func (s *Sequencer) ReopenInterstitial() {
	s.interstitialOpen = s.Current().Reflection != nil
}

// Complete reports whether the fields owned by the step at index i are
// non-empty. Transition steps count as complete once visited. This feeds the
// progress display only; it never gates transitions.
func (s *Sequencer) Complete(p *domain.Plan, i int) bool {
	if i < 0 || i >= len(s.steps) {
		return false
	}
	st := s.steps[i]
	if st.Transition {
		return s.visited[i]
	}
	switch st.ID {
	case StepContext:
		return p.SelfContext != ""
	case StepSwot:
		for _, cat := range domain.SwotCategories {
			if len(p.Swot.Category(cat)) > 0 {
				return true
			}
		}
		return false
	case StepVision:
		return p.Vision != ""
	case StepGoals:
		return len(p.Goals) > 0
	case StepObjectives:
		return len(p.Objectives) > 0
	case StepTasks:
		return len(p.Tasks) > 0
	case StepConstraints:
		return p.Constraints != ""
	case StepSummary:
		return s.visited[i]
	}
	return false
}
