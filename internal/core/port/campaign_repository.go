package port

import (
	"context"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CampaignStore is the keyed state of a single campaign: its config and
// the donor ledger. A store is only valid inside the unit of work that
// handed it out.
type CampaignStore interface {
	// Config returns the campaign configuration.
	Config(ctx context.Context) (domain.CampaignConfig, error)
	// SaveConfig replaces the optional caps and floor of the campaign.
	SaveConfig(ctx context.Context, cfg domain.CampaignConfig) error
	// Deposit returns the cumulative deposit of donor. Unknown donors have
	// a zero deposit.
	Deposit(ctx context.Context, donor domain.Identity) (domain.Amount, error)
	// SetDeposit overwrites the ledger entry of donor.
	SetDeposit(ctx context.Context, donor domain.Identity, amount domain.Amount) error
}

// FundsCustodian holds the pooled balance of a single campaign and moves
// value in and out of it. Receive and Transfer are atomic: on error the
// balance is unchanged.
type FundsCustodian interface {
	// Balance returns the current pooled balance.
	Balance(ctx context.Context) (domain.Amount, error)
	// Receive credits an incoming donation from donor to the pool.
	Receive(ctx context.Context, from domain.Identity, amount domain.Amount) error
	// Transfer pays amount out of the pool to the recipient. It reports
	// domain.ErrRecipientRejected when the recipient cannot accept funds.
	Transfer(ctx context.Context, to domain.Identity, amount domain.Amount, kind domain.TransferKind) error
}

// UnitOfWork is invoked by the repository with the state of one campaign.
// Returning an error discards every write made through store and custodian.
type UnitOfWork func(ctx context.Context, store CampaignStore, custodian FundsCustodian) error

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Implementations must serialize
// units of work per campaign and apply them atomically.
type CampaignRepository interface {
	// Create stores a new campaign with an empty ledger and pool.
	Create(ctx context.Context, cfg domain.CampaignConfig) error
	// Within runs fn against the campaign with exclusive access. It
	// returns domain.ErrCampaignNotFound for unknown ids.
	Within(ctx context.Context, id uuid.UUID, fn UnitOfWork) error
	// View runs fn against a consistent read-only snapshot of the campaign.
	// Writes made by fn fail or are discarded.
	View(ctx context.Context, id uuid.UUID, fn UnitOfWork) error
	// Transfers returns the payout journal of a campaign, oldest first.
	Transfers(ctx context.Context, id uuid.UUID) ([]domain.Transfer, error)
}
