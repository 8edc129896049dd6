package domain

// SessionState models a scheduling session as an explicit state machine
// instead of independent boolean flags, so invalid combinations cannot be
// represented.
type SessionState string

const (
	SessionIdle           SessionState = "idle"
	SessionServiceChosen  SessionState = "service_chosen"
	SessionDateTimeChosen SessionState = "datetime_chosen"
	SessionValidated      SessionState = "validated"
	SessionCommitted      SessionState = "committed"
)

// sessionTransitions enumerates the allowed transitions. Field edits may move
// a session back to ServiceChosen/DateTimeChosen; Committed is terminal.
var sessionTransitions = map[SessionState][]SessionState{
	SessionIdle:           {SessionServiceChosen},
	SessionServiceChosen:  {SessionDateTimeChosen, SessionServiceChosen},
	SessionDateTimeChosen: {SessionValidated, SessionServiceChosen, SessionDateTimeChosen},
	SessionValidated:      {SessionCommitted, SessionServiceChosen, SessionDateTimeChosen},
	SessionCommitted:      {},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s SessionState) CanTransitionTo(next SessionState) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the session has reached its final state.
func (s SessionState) IsTerminal() bool {
	return s == SessionCommitted
}
