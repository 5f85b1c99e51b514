package coaching

import "strings"

// ProgramType is the normalized coaching track identifier.
type ProgramType string

const (
	ProgramTypeGrow    ProgramType = "GROW"
	ProgramTypeExec    ProgramType = "EXEC"
	ProgramTypeScale   ProgramType = "SCALE"
	ProgramTypeUnknown ProgramType = "UNKNOWN"
)

// Expected total sessions per track. GROW and EXEC share the 12-session
// curriculum; SCALE is the short 6-session track.
var expectedSessionsByType = map[ProgramType]int{
	ProgramTypeGrow:  12,
	ProgramTypeExec:  12,
	ProgramTypeScale: 6,
}

// DefaultExpectedSessions is used when the program label is unrecognized.
// Unrecognized labels are treated like GROW/EXEC for progress math, but the
// Recognized flag lets callers render a neutral indicator instead.
const DefaultExpectedSessions = 12

// ProgramInfo is the result of normalizing a free-text program label.
type ProgramInfo struct {
	Type                  ProgramType
	TotalExpectedSessions int
	Recognized            bool
}

// NormalizeProgramType maps a free-text program label (e.g. "GROW - Cohort 1",
// "scale 2024") to a ProgramType and its expected session count. The match is a
// case-insensitive prefix match: the label must be the track name exactly, or
// the track name followed by a space or hyphen and an arbitrary cohort suffix.
// Nil or unmatched input yields ProgramTypeUnknown. Total function, never errors.
func NormalizeProgramType(raw *string) ProgramInfo {
	if raw == nil {
		return ProgramInfo{Type: ProgramTypeUnknown, TotalExpectedSessions: DefaultExpectedSessions}
	}

	label := strings.ToUpper(strings.TrimSpace(*raw))
	for _, t := range []ProgramType{ProgramTypeGrow, ProgramTypeExec, ProgramTypeScale} {
		if matchesTrack(label, string(t)) {
			return ProgramInfo{
				Type:                  t,
				TotalExpectedSessions: expectedSessionsByType[t],
				Recognized:            true,
			}
		}
	}

	return ProgramInfo{Type: ProgramTypeUnknown, TotalExpectedSessions: DefaultExpectedSessions}
}

func matchesTrack(label, track string) bool {
	if label == track {
		return true
	}
	if !strings.HasPrefix(label, track) {
		return false
	}
	// Only a separator may follow the track name ("GROW - Cohort 1", "EXEC 2024").
	sep := label[len(track)]
	return sep == ' ' || sep == '-'
}
