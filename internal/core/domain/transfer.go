package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferKind tells why funds left the pool.
type TransferKind string

const (
	TransferClaim  TransferKind = "claim"  // owner withdrawal of a successful campaign
	TransferRefund TransferKind = "refund" // donor reclaim of a failed campaign
)

// Transfer is a journal record of a payout made by the custodian.
type Transfer struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Recipient  Identity
	Amount     Amount
	Kind       TransferKind
	CreatedAt  time.Time
}
