package wizard

import "planshop/internal/domain"

// ErrorKind classifies a user-visible AI failure so the operator can
// self-diagnose a missing credential without reading logs.
type ErrorKind string

const (
	ErrorConfig    ErrorKind = "config"
	ErrorTransport ErrorKind = "transport"
)

// ErrorInfo is the user-facing form of an AI gateway failure.
type ErrorInfo struct {
	Kind    ErrorKind
	Message string
}

// RequestToken identifies one outstanding AI request. A response carrying a
// token whose sequence number or step no longer matches the session state is
// stale and its text is discarded.
type RequestToken struct {
	seq  int
	step StepID
}

// Step returns the step the request was issued from.
func (t RequestToken) Step() StepID { return t.step }

// Session owns all mutable workshop state: the plan, the step machine and the
// transient AI state. Handlers mutate it only through these methods, never by
// direct field assignment.
type Session struct {
	Plan *domain.Plan
	Seq  *Sequencer

	advisory    string
	finalReport string
	lastErr     *ErrorInfo

	inFlight bool
	tokenSeq int
}

// NewSession creates a session over the given step configuration with an
// empty plan.
func NewSession(steps []Step) *Session {
	return &Session{
		Plan: domain.NewPlan(),
		Seq:  NewSequencer(steps),
	}
}

// ResumeSession rebuilds a session from a saved draft: the plan, the step the
// user was on and the cached report. Earlier steps count as visited, and no
// reflection overlay opens because resuming is not a fresh arrival.
func ResumeSession(steps []Step, plan *domain.Plan, stepIndex int, finalReport string) *Session {
	s := NewSession(steps)
	if plan != nil {
		s.Plan = plan
	}
	s.finalReport = finalReport
	if stepIndex > 0 && stepIndex < len(steps) {
		for i := 0; i <= stepIndex; i++ {
			s.Seq.visited[i] = true
		}
		s.Seq.current = stepIndex
	}
	s.Seq.interstitialOpen = false
	return s
}

// Advisory returns the cached advisory text for the current step.
func (s *Session) Advisory() string { return s.advisory }

// FinalReport returns the cached final narrative report, if any.
func (s *Session) FinalReport() string { return s.finalReport }

// SetFinalReport installs a previously generated report, e.g. when resuming
// a saved draft.
func (s *Session) SetFinalReport(text string) { s.finalReport = text }

// LastError returns the most recent AI failure, or nil.
func (s *Session) LastError() *ErrorInfo { return s.lastErr }

// InFlight reports whether an AI request is outstanding.
func (s *Session) InFlight() bool { return s.inFlight }

// Advance moves forward one step, clearing per-step advisory state.
func (s *Session) Advance() bool { return s.navigated(s.Seq.Advance()) }

// Retreat moves backward one step, clearing per-step advisory state.
func (s *Session) Retreat() bool { return s.navigated(s.Seq.Retreat()) }

// JumpTo revisits an earlier step, clearing per-step advisory state.
func (s *Session) JumpTo(target int) bool { return s.navigated(s.Seq.JumpTo(target)) }

func (s *Session) navigated(moved bool) bool {
	if moved {
		// Stale suggestions must never be shown against a different step.
		s.advisory = ""
		s.lastErr = nil
	}
	return moved
}

// NeedsFinalReport reports whether arriving at the terminal step should fire
// the final-integration call: once per session, and never while another
// request is outstanding. A cached report suppresses re-triggering on
// re-entry.
func (s *Session) NeedsFinalReport() bool {
	return s.Seq.AtTerminal() && s.finalReport == "" && !s.inFlight
}

// BeginRequest reserves the single in-flight slot for an AI call issued from
// the current step. It returns ok=false while another request is pending.
func (s *Session) BeginRequest() (RequestToken, bool) {
	if s.inFlight {
		return RequestToken{}, false
	}
	s.inFlight = true
	s.tokenSeq++
	s.lastErr = nil
	return RequestToken{seq: s.tokenSeq, step: s.Seq.Current().ID}, true
}

// ResolveAdvisory delivers the outcome of a step-advisory request. The
// in-flight flag is cleared in every case; text and errors are applied only
// when the user is still on the step the request was issued from.
func (s *Session) ResolveAdvisory(tok RequestToken, text string, errInfo *ErrorInfo) {
	if tok.seq != s.tokenSeq {
		return
	}
	s.inFlight = false
	if tok.step != s.Seq.Current().ID {
		return // stale: user has moved on
	}
	if errInfo != nil {
		s.lastErr = errInfo
		return
	}
	s.advisory = text
	s.lastErr = nil
}

// ResolveFinalReport delivers the outcome of the final-integration request.
// The report is session-scoped, so unlike advisories it is cached even if the
// user navigated away while the request was pending.
func (s *Session) ResolveFinalReport(tok RequestToken, text string, errInfo *ErrorInfo) {
	if tok.seq != s.tokenSeq {
		return
	}
	s.inFlight = false
	if errInfo != nil {
		s.lastErr = errInfo
		return
	}
	s.finalReport = text
	s.lastErr = nil
}
