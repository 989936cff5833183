package port

import (
	"context"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the
// crowdfunding service. This interface represents the primary port into
// the application domain. Mock implementations can be generated from this
// interface for testing.
type CampaignUseCase interface {
	// CreateCampaign validates and stores a new campaign owned by owner.
	CreateCampaign(ctx context.Context, owner domain.Identity, target domain.Amount, deadline domain.Timestamp) (*CampaignView, error)

	// GetCampaign returns the configuration, current status and pooled
	// funds of a campaign.
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignView, error)

	// Status returns the status of a campaign at the current time.
	Status(ctx context.Context, id uuid.UUID) (domain.Status, error)

	// Deposit returns the cumulative deposit of donor.
	Deposit(ctx context.Context, id uuid.UUID, donor domain.Identity) (domain.Amount, error)

	// SetLimit, SetLimitPerDonor and SetMinimumPerDonation change the
	// optional caps and floor. Only the owner may call them.
	SetLimit(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error
	SetLimitPerDonor(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error
	SetMinimumPerDonation(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error

	// Fund deposits amount from caller during the funding period.
	Fund(ctx context.Context, id uuid.UUID, caller domain.Identity, amount domain.Amount) error

	// Claim pays out the pool to the owner of a successful campaign, or
	// the caller's own deposit of a failed one. It returns the amount
	// transferred, which is zero for repeated claims.
	Claim(ctx context.Context, id uuid.UUID, caller domain.Identity) (domain.Amount, error)

	// Transfers returns the payout journal of a campaign.
	Transfers(ctx context.Context, id uuid.UUID) ([]domain.Transfer, error)
}

// CampaignView is the read model of a campaign returned to clients. It is
// a DTO and does not contain domain behaviour. Unset caps are nil.
type CampaignView struct {
	ID                 uuid.UUID        `json:"id"`
	Owner              domain.Identity  `json:"owner"`
	Target             domain.Amount    `json:"target"`
	Deadline           domain.Timestamp `json:"deadline"`
	Limit              *domain.Amount   `json:"limit,omitempty"`
	LimitPerDonor      *domain.Amount   `json:"limit_per_donor,omitempty"`
	MinimumPerDonation *domain.Amount   `json:"minimum_per_donation,omitempty"`
	Status             string           `json:"status"`
	CurrentFunds       domain.Amount    `json:"current_funds"`
}
