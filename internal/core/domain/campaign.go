package domain

import "github.com/google/uuid"

// Amount is a quantity of the campaign's single value unit. Amounts are
// stored in integer units (e.g. cents) and are never negative once accepted.
type Amount = int64

// Timestamp is a point in time expressed in seconds since the Unix epoch.
type Timestamp = int64

// Identity names a party interacting with a campaign (owner or donor).
type Identity string

// CampaignConfig is the immutable part of a campaign, set once on
// creation. Only the optional caps and floor may be changed afterwards,
// and only by the owner.
type CampaignConfig struct {
	ID       uuid.UUID
	Owner    Identity
	Target   Amount
	Deadline Timestamp

	Limit              Optional[Amount] // cap on total pooled funds
	LimitPerDonor      Optional[Amount] // cap on one donor's cumulative deposit
	MinimumPerDonation Optional[Amount] // floor for a single donation
}

// CallContext describes who is invoking an operation and when.
type CallContext struct {
	Caller Identity
	Now    Timestamp
}
