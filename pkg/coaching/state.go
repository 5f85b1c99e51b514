package coaching

// State is the lifecycle classification of a client's relationship to the
// coaching program. The five states are linear; there are no cycles. The
// classifier recomputes the state from scratch on every call, so a "transition"
// is only ever observed by classifying two successive snapshots.
type State string

const (
	StateNotSignedUp            State = "NOT_SIGNED_UP"
	StateSignedUpNotMatched     State = "SIGNED_UP_NOT_MATCHED"
	StateMatchedPreFirstSession State = "MATCHED_PRE_FIRST_SESSION"
	StateActiveProgram          State = "ACTIVE_PROGRAM"
	StateCompletedProgram       State = "COMPLETED_PROGRAM"
)

var stateLabels = map[State]string{
	StateNotSignedUp:            "Get Started",
	StateSignedUpNotMatched:     "Finding Your Coach",
	StateMatchedPreFirstSession: "Ready to Begin",
	StateActiveProgram:          "Active Coaching",
	StateCompletedProgram:       "Program Graduate",
}

// Label returns the human-readable display label for the state.
func (s State) Label() string {
	return stateLabels[s]
}

// CanBookSessions reports whether a client in this state may book sessions.
// Only matched clients who have not completed the program can book.
func CanBookSessions(s State) bool {
	return s == StateMatchedPreFirstSession || s == StateActiveProgram
}

// IsAlumni reports whether the state represents a finished program.
func IsAlumni(s State) bool {
	return s == StateCompletedProgram
}
