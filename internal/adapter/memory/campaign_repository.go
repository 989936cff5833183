package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var ErrCampaignExists = errors.New("campaign already exists")

// CampaignRepository implements port.CampaignRepository in process memory.
// Units of work are serialized by a single mutex and run against a copy of
// the campaign state that replaces the original only when fn succeeds.
type CampaignRepository struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]*campaignState
	rejected  map[domain.Identity]struct{}
	now       func() time.Time
}

type campaignState struct {
	cfg       domain.CampaignConfig
	deposits  map[domain.Identity]domain.Amount
	balance   domain.Amount
	transfers []domain.Transfer
}

func (s *campaignState) clone() *campaignState {
	return &campaignState{
		cfg:       s.cfg,
		deposits:  maps.Clone(s.deposits),
		balance:   s.balance,
		transfers: slices.Clone(s.transfers),
	}
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns: make(map[uuid.UUID]*campaignState),
		rejected:  make(map[domain.Identity]struct{}),
		now:       time.Now,
	}
}

// RejectRecipient makes every later transfer to id fail with
// domain.ErrRecipientRejected.
func (r *CampaignRepository) RejectRecipient(id domain.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected[id] = struct{}{}
}

// Create stores a new campaign.
func (r *CampaignRepository) Create(_ context.Context, cfg domain.CampaignConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[cfg.ID]; ok {
		return ErrCampaignExists
	}
	r.campaigns[cfg.ID] = &campaignState{
		cfg:      cfg,
		deposits: make(map[domain.Identity]domain.Amount),
	}
	return nil
}

// Within runs fn with exclusive access and commits its writes on success.
func (r *CampaignRepository) Within(ctx context.Context, id uuid.UUID, fn port.UnitOfWork) error {
	return r.run(ctx, id, fn, true)
}

// View runs fn against a snapshot and discards its writes.
func (r *CampaignRepository) View(ctx context.Context, id uuid.UUID, fn port.UnitOfWork) error {
	return r.run(ctx, id, fn, false)
}

func (r *CampaignRepository) run(ctx context.Context, id uuid.UUID, fn port.UnitOfWork, commit bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	t := &tx{repo: r, state: state.clone()}
	if err := fn(ctx, t, t); err != nil {
		return err
	}
	if commit {
		r.campaigns[id] = t.state
	}
	return nil
}

// Transfers returns the payout journal of a campaign.
func (r *CampaignRepository) Transfers(_ context.Context, id uuid.UUID) ([]domain.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return slices.Clone(state.transfers), nil
}

// tx is both the store and the custodian of one unit of work. The repo
// mutex is held for its whole lifetime.
type tx struct {
	repo  *CampaignRepository
	state *campaignState
}

func (t *tx) Config(_ context.Context) (domain.CampaignConfig, error) {
	return t.state.cfg, nil
}

func (t *tx) SaveConfig(_ context.Context, cfg domain.CampaignConfig) error {
	t.state.cfg.Limit = cfg.Limit
	t.state.cfg.LimitPerDonor = cfg.LimitPerDonor
	t.state.cfg.MinimumPerDonation = cfg.MinimumPerDonation
	return nil
}

func (t *tx) Deposit(_ context.Context, donor domain.Identity) (domain.Amount, error) {
	return t.state.deposits[donor], nil
}

func (t *tx) SetDeposit(_ context.Context, donor domain.Identity, amount domain.Amount) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}
	t.state.deposits[donor] = amount
	return nil
}

func (t *tx) Balance(_ context.Context) (domain.Amount, error) {
	return t.state.balance, nil
}

func (t *tx) Receive(_ context.Context, _ domain.Identity, amount domain.Amount) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}
	t.state.balance += amount
	return nil
}

func (t *tx) Transfer(_ context.Context, to domain.Identity, amount domain.Amount, kind domain.TransferKind) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}
	if _, ok := t.repo.rejected[to]; ok {
		return domain.ErrRecipientRejected
	}
	if amount > t.state.balance {
		return domain.ErrInsufficientFunds
	}
	t.state.balance -= amount
	t.state.transfers = append(t.state.transfers, domain.Transfer{
		ID:         uuid.New(),
		CampaignID: t.state.cfg.ID,
		Recipient:  to,
		Amount:     amount,
		Kind:       kind,
		CreatedAt:  t.repo.now().UTC(),
	})
	return nil
}
