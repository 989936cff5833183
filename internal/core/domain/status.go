package domain

// Status is the derived phase of a campaign. It is computed on demand and
// never persisted.
type Status int

const (
	StatusFundingPeriod Status = iota
	StatusSuccessful
	StatusFailed
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusFundingPeriod:
		return "funding_period"
	case StatusSuccessful:
		return "successful"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the funding period is over.
func (s Status) IsTerminal() bool {
	return s == StatusSuccessful || s == StatusFailed
}
