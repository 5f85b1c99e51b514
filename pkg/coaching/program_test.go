package coaching

import "testing"

func TestNormalizeProgramType(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name           string
		raw            *string
		wantType       ProgramType
		wantTotal      int
		wantRecognized bool
	}{
		{"nil label", nil, ProgramTypeUnknown, 12, false},
		{"exact GROW", str("GROW"), ProgramTypeGrow, 12, true},
		{"GROW with cohort tag", str("GROW - Cohort 1"), ProgramTypeGrow, 12, true},
		{"lowercase exec with year", str("exec 2024"), ProgramTypeExec, 12, true},
		{"scale hyphenated", str("Scale-Q3"), ProgramTypeScale, 6, true},
		{"scale exact lowercase", str("scale"), ProgramTypeScale, 6, true},
		{"leading whitespace", str("  GROW - Spring"), ProgramTypeGrow, 12, true},
		{"prefix without separator", str("GROWTH"), ProgramTypeUnknown, 12, false},
		{"unrelated label", str("Leadership 101"), ProgramTypeUnknown, 12, false},
		{"empty string", str(""), ProgramTypeUnknown, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProgramType(tt.raw)
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.TotalExpectedSessions != tt.wantTotal {
				t.Errorf("TotalExpectedSessions = %d, want %d", got.TotalExpectedSessions, tt.wantTotal)
			}
			if got.Recognized != tt.wantRecognized {
				t.Errorf("Recognized = %v, want %v", got.Recognized, tt.wantRecognized)
			}
		})
	}
}

func TestStateLabels(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateNotSignedUp, "Get Started"},
		{StateSignedUpNotMatched, "Finding Your Coach"},
		{StateMatchedPreFirstSession, "Ready to Begin"},
		{StateActiveProgram, "Active Coaching"},
		{StateCompletedProgram, "Program Graduate"},
	}

	for _, tt := range tests {
		if got := tt.state.Label(); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStatePredicates(t *testing.T) {
	allStates := []State{
		StateNotSignedUp,
		StateSignedUpNotMatched,
		StateMatchedPreFirstSession,
		StateActiveProgram,
		StateCompletedProgram,
	}

	bookable := map[State]bool{
		StateMatchedPreFirstSession: true,
		StateActiveProgram:          true,
	}

	for _, s := range allStates {
		if got := CanBookSessions(s); got != bookable[s] {
			t.Errorf("CanBookSessions(%s) = %v, want %v", s, got, bookable[s])
		}
		if got := IsAlumni(s); got != (s == StateCompletedProgram) {
			t.Errorf("IsAlumni(%s) = %v, want %v", s, got, s == StateCompletedProgram)
		}
	}
}
