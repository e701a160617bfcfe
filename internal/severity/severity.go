// Package severity ranks the impact of a reported change.
//
// Levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity is the impact level of a change.
type Severity int

const (
	// SeverityInfo marks additions and cosmetic changes.
	SeverityInfo Severity = iota
	// SeverityWarning marks changes that may require caller updates.
	SeverityWarning
	// SeverityError marks changes that break generated code.
	SeverityError
	// SeverityCritical marks removed groups or operations.
	SeverityCritical
)

// String returns the lowercase name of the level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText renders the level name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AtLeast reports whether s is as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}
