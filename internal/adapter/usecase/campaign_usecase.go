package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/ledger"
	"crowdfund/internal/core/port"
)

// CampaignUseCase provides the crowdfunding business operations. It runs
// every call through the ledger inside a single repository unit of work
// and implements the port.CampaignUseCase interface.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	// now supplies the time of every call. The ledger itself never reads
	// the clock.
	now   func() time.Time
	newID func() uuid.UUID
}

// Option customises a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithIDGenerator replaces uuid.New for campaign ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(u *CampaignUseCase) { u.newID = newID }
}

// NewCampaignUseCase creates a new usecase with the provided repository
// and logger.
func NewCampaignUseCase(repo port.CampaignRepository, logger *slog.Logger, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign validates the target and deadline, then stores a new
// campaign owned by owner.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, owner domain.Identity, target domain.Amount, deadline domain.Timestamp) (*port.CampaignView, error) {
	if owner == "" {
		return nil, domain.ErrUnauthorized
	}
	cfg, err := ledger.Initialize(u.newID(), owner, target, deadline, u.timestamp())
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", cfg.ID.String()),
		slog.String("owner", string(owner)),
		slog.Int64("target", target),
		slog.Int64("deadline", deadline),
	)
	return newView(cfg, domain.StatusFundingPeriod, 0), nil
}

// GetCampaign returns the read model of a campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*port.CampaignView, error) {
	var view *port.CampaignView
	err := u.view(ctx, id, func(l *ledger.Ledger) error {
		cfg, err := l.Config(ctx)
		if err != nil {
			return err
		}
		status, err := l.Status(ctx, u.timestamp())
		if err != nil {
			return err
		}
		funds, err := l.CurrentFunds(ctx)
		if err != nil {
			return err
		}
		view = newView(cfg, status, funds)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Status returns the campaign status at the current time.
func (u *CampaignUseCase) Status(ctx context.Context, id uuid.UUID) (domain.Status, error) {
	var status domain.Status
	err := u.view(ctx, id, func(l *ledger.Ledger) error {
		var err error
		status, err = l.Status(ctx, u.timestamp())
		return err
	})
	return status, err
}

// Deposit returns the cumulative deposit of donor.
func (u *CampaignUseCase) Deposit(ctx context.Context, id uuid.UUID, donor domain.Identity) (domain.Amount, error) {
	var amount domain.Amount
	err := u.view(ctx, id, func(l *ledger.Ledger) error {
		var err error
		amount, err = l.Deposit(ctx, donor)
		return err
	})
	return amount, err
}

// SetLimit caps the total pooled funds of a campaign.
func (u *CampaignUseCase) SetLimit(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error {
	return u.setting(ctx, id, caller, "limit", value, (*ledger.Ledger).SetLimit)
}

// SetLimitPerDonor caps the cumulative deposit of a single donor.
func (u *CampaignUseCase) SetLimitPerDonor(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error {
	return u.setting(ctx, id, caller, "limit_per_donor", value, (*ledger.Ledger).SetLimitPerDonor)
}

// SetMinimumPerDonation sets the floor for a single donation.
func (u *CampaignUseCase) SetMinimumPerDonation(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error {
	return u.setting(ctx, id, caller, "minimum_per_donation", value, (*ledger.Ledger).SetMinimumPerDonation)
}

func (u *CampaignUseCase) setting(
	ctx context.Context,
	id uuid.UUID,
	caller domain.Identity,
	name string,
	value domain.Amount,
	set func(*ledger.Ledger, context.Context, domain.CallContext, domain.Amount) error,
) error {
	call := u.call(caller)
	err := u.within(ctx, id, func(l *ledger.Ledger) error {
		return set(l, ctx, call, value)
	})
	if err != nil {
		return err
	}
	u.logger.Info("campaign setting changed",
		slog.String("campaign_id", id.String()),
		slog.String("setting", name),
		slog.Int64("value", value),
	)
	return nil
}

// Fund deposits amount from caller into the campaign pool.
func (u *CampaignUseCase) Fund(ctx context.Context, id uuid.UUID, caller domain.Identity, amount domain.Amount) error {
	call := u.call(caller)
	err := u.within(ctx, id, func(l *ledger.Ledger) error {
		return l.Fund(ctx, call, amount)
	})
	if err != nil {
		return err
	}
	u.logger.Info("campaign funded",
		slog.String("campaign_id", id.String()),
		slog.String("donor", string(caller)),
		slog.Int64("amount", amount),
	)
	return nil
}

// Claim pays out the pool of a successful campaign to its owner, or the
// caller's deposit of a failed one, and returns the amount transferred.
func (u *CampaignUseCase) Claim(ctx context.Context, id uuid.UUID, caller domain.Identity) (domain.Amount, error) {
	call := u.call(caller)
	var transferred domain.Amount
	err := u.within(ctx, id, func(l *ledger.Ledger) error {
		var err error
		transferred, err = l.Claim(ctx, call)
		return err
	})
	if err != nil {
		return 0, err
	}
	u.logger.Info("campaign claimed",
		slog.String("campaign_id", id.String()),
		slog.String("caller", string(caller)),
		slog.Int64("transferred", transferred),
	)
	return transferred, nil
}

// Transfers returns the payout journal of a campaign.
func (u *CampaignUseCase) Transfers(ctx context.Context, id uuid.UUID) ([]domain.Transfer, error) {
	return u.repo.Transfers(ctx, id)
}

func (u *CampaignUseCase) within(ctx context.Context, id uuid.UUID, fn func(*ledger.Ledger) error) error {
	return u.repo.Within(ctx, id, func(_ context.Context, store port.CampaignStore, custodian port.FundsCustodian) error {
		return fn(ledger.New(store, custodian))
	})
}

func (u *CampaignUseCase) view(ctx context.Context, id uuid.UUID, fn func(*ledger.Ledger) error) error {
	return u.repo.View(ctx, id, func(_ context.Context, store port.CampaignStore, custodian port.FundsCustodian) error {
		return fn(ledger.New(store, custodian))
	})
}

func (u *CampaignUseCase) call(caller domain.Identity) domain.CallContext {
	return domain.CallContext{Caller: caller, Now: u.timestamp()}
}

func (u *CampaignUseCase) timestamp() domain.Timestamp {
	return u.now().Unix()
}

func newView(cfg domain.CampaignConfig, status domain.Status, funds domain.Amount) *port.CampaignView {
	return &port.CampaignView{
		ID:                 cfg.ID,
		Owner:              cfg.Owner,
		Target:             cfg.Target,
		Deadline:           cfg.Deadline,
		Limit:              cfg.Limit.Ptr(),
		LimitPerDonor:      cfg.LimitPerDonor.Ptr(),
		MinimumPerDonation: cfg.MinimumPerDonation.Ptr(),
		Status:             status.String(),
		CurrentFunds:       funds,
	}
}
