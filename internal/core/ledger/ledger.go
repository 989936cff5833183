// Package ledger implements the campaign state machine: status derivation,
// per-donor accounting and the guards on deposits and withdrawals. It is
// storage agnostic and works on the state handed out by a repository unit
// of work.
package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Ledger enforces the rules of one campaign over its store and custodian.
// Every mutating method evaluates all guards against the state read at
// entry before performing any effect.
type Ledger struct {
	store     port.CampaignStore
	custodian port.FundsCustodian
}

// New returns a ledger bound to the given campaign state.
func New(store port.CampaignStore, custodian port.FundsCustodian) *Ledger {
	return &Ledger{store: store, custodian: custodian}
}

// Initialize validates the parameters of a new campaign and returns its
// configuration with all caps and the donation floor unset.
func Initialize(id uuid.UUID, owner domain.Identity, target domain.Amount, deadline, createdAt domain.Timestamp) (domain.CampaignConfig, error) {
	if target <= 0 {
		return domain.CampaignConfig{}, domain.ErrInvalidTarget
	}
	if deadline <= createdAt {
		return domain.CampaignConfig{}, domain.ErrDeadlineInPast
	}
	return domain.CampaignConfig{
		ID:       id,
		Owner:    owner,
		Target:   target,
		Deadline: deadline,
	}, nil
}

// SetLimit caps the total pooled funds.
func (l *Ledger) SetLimit(ctx context.Context, call domain.CallContext, value domain.Amount) error {
	return l.setOption(ctx, call, value, func(cfg *domain.CampaignConfig, v domain.Optional[domain.Amount]) {
		cfg.Limit = v
	})
}

// SetLimitPerDonor caps the cumulative deposit of any single donor.
func (l *Ledger) SetLimitPerDonor(ctx context.Context, call domain.CallContext, value domain.Amount) error {
	return l.setOption(ctx, call, value, func(cfg *domain.CampaignConfig, v domain.Optional[domain.Amount]) {
		cfg.LimitPerDonor = v
	})
}

// SetMinimumPerDonation sets the floor for a single donation. Setting it
// also enables the overall limit check in Fund.
func (l *Ledger) SetMinimumPerDonation(ctx context.Context, call domain.CallContext, value domain.Amount) error {
	return l.setOption(ctx, call, value, func(cfg *domain.CampaignConfig, v domain.Optional[domain.Amount]) {
		cfg.MinimumPerDonation = v
	})
}

func (l *Ledger) setOption(
	ctx context.Context,
	call domain.CallContext,
	value domain.Amount,
	apply func(*domain.CampaignConfig, domain.Optional[domain.Amount]),
) error {
	cfg, err := l.store.Config(ctx)
	if err != nil {
		return err
	}
	if call.Caller != cfg.Owner {
		return domain.ErrUnauthorized
	}
	if value < 0 {
		return domain.ErrNegativeAmount
	}
	apply(&cfg, domain.Some(value))
	return l.store.SaveConfig(ctx, cfg)
}

// Fund accepts a donation of amount from the caller. The guards run in a
// fixed order and the donor's ledger entry is updated last.
func (l *Ledger) Fund(ctx context.Context, call domain.CallContext, amount domain.Amount) error {
	cfg, err := l.store.Config(ctx)
	if err != nil {
		return err
	}
	if call.Now >= cfg.Deadline {
		return domain.ErrFundingClosed
	}
	if amount < 0 {
		return domain.ErrNegativeAmount
	}

	pool, err := l.custodian.Balance(ctx)
	if err != nil {
		return err
	}
	proposedBalance, err := add(pool, amount)
	if err != nil {
		return err
	}

	// The overall limit is only enforced once a minimum donation is set.
	if minimum, ok := cfg.MinimumPerDonation.Get(); ok {
		if limit, ok := cfg.Limit.Get(); ok && proposedBalance > limit {
			return domain.ErrOverallLimitExceeded
		}
		if amount < minimum {
			return domain.ErrBelowMinimumDonation
		}
	}

	deposit, err := l.store.Deposit(ctx, call.Caller)
	if err != nil {
		return err
	}
	proposedDeposit, err := add(deposit, amount)
	if err != nil {
		return err
	}
	if perDonor, ok := cfg.LimitPerDonor.Get(); ok && proposedDeposit > perDonor {
		return domain.ErrPerDonorLimitExceeded
	}

	if err = l.custodian.Receive(ctx, call.Caller, amount); err != nil {
		return err
	}
	return l.store.SetDeposit(ctx, call.Caller, proposedDeposit)
}

// Claim drains the pool according to the campaign status and returns the
// amount transferred. Claims after a full drain succeed with zero.
func (l *Ledger) Claim(ctx context.Context, call domain.CallContext) (domain.Amount, error) {
	cfg, err := l.store.Config(ctx)
	if err != nil {
		return 0, err
	}
	status, err := l.status(ctx, cfg, call.Now)
	if err != nil {
		return 0, err
	}

	switch status {
	case domain.StatusFundingPeriod:
		return 0, domain.ErrClaimBeforeDeadline
	case domain.StatusSuccessful:
		if call.Caller != cfg.Owner {
			return 0, domain.ErrUnauthorized
		}
		balance, err := l.custodian.Balance(ctx)
		if err != nil {
			return 0, err
		}
		if balance == 0 {
			return 0, nil
		}
		if err = l.transfer(ctx, cfg.Owner, balance, domain.TransferClaim); err != nil {
			return 0, err
		}
		return balance, nil
	default:
		deposit, err := l.store.Deposit(ctx, call.Caller)
		if err != nil {
			return 0, err
		}
		if deposit <= 0 {
			return 0, nil
		}
		// pay first, clear the entry only once the transfer went through
		if err = l.transfer(ctx, call.Caller, deposit, domain.TransferRefund); err != nil {
			return 0, err
		}
		if err = l.store.SetDeposit(ctx, call.Caller, 0); err != nil {
			return 0, err
		}
		return deposit, nil
	}
}

// Status derives the campaign status at now. The campaign is still in its
// funding period at the deadline itself.
func (l *Ledger) Status(ctx context.Context, now domain.Timestamp) (domain.Status, error) {
	cfg, err := l.store.Config(ctx)
	if err != nil {
		return domain.StatusFundingPeriod, err
	}
	return l.status(ctx, cfg, now)
}

func (l *Ledger) status(ctx context.Context, cfg domain.CampaignConfig, now domain.Timestamp) (domain.Status, error) {
	if now <= cfg.Deadline {
		return domain.StatusFundingPeriod, nil
	}
	balance, err := l.custodian.Balance(ctx)
	if err != nil {
		return domain.StatusFundingPeriod, err
	}
	if balance >= cfg.Target {
		return domain.StatusSuccessful, nil
	}
	return domain.StatusFailed, nil
}

// CurrentFunds returns the pooled balance.
func (l *Ledger) CurrentFunds(ctx context.Context) (domain.Amount, error) {
	return l.custodian.Balance(ctx)
}

// Config returns the campaign configuration.
func (l *Ledger) Config(ctx context.Context) (domain.CampaignConfig, error) {
	return l.store.Config(ctx)
}

// Deposit returns the cumulative deposit of donor.
func (l *Ledger) Deposit(ctx context.Context, donor domain.Identity) (domain.Amount, error) {
	return l.store.Deposit(ctx, donor)
}

func (l *Ledger) transfer(ctx context.Context, to domain.Identity, amount domain.Amount, kind domain.TransferKind) error {
	if err := l.custodian.Transfer(ctx, to, amount, kind); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}
	return nil
}

func add(a, b domain.Amount) (domain.Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, domain.ErrAmountOverflow
	}
	return a + b, nil
}
