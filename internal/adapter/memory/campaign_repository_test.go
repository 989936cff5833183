package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

func newCampaign(t *testing.T, repo *CampaignRepository) uuid.UUID {
	t.Helper()
	cfg := domain.CampaignConfig{ID: uuid.New(), Owner: "owner", Target: 100, Deadline: 10}
	require.NoError(t, repo.Create(context.Background(), cfg))
	return cfg.ID
}

func balance(t *testing.T, repo *CampaignRepository, id uuid.UUID) domain.Amount {
	t.Helper()
	var got domain.Amount
	require.NoError(t, repo.View(context.Background(), id, func(ctx context.Context, _ port.CampaignStore, c port.FundsCustodian) error {
		var err error
		got, err = c.Balance(ctx)
		return err
	}))
	return got
}

func TestCreateDuplicate(t *testing.T) {
	repo := NewCampaignRepository()
	id := newCampaign(t, repo)
	err := repo.Create(context.Background(), domain.CampaignConfig{ID: id})
	require.ErrorIs(t, err, ErrCampaignExists)
}

func TestWithinRollsBackOnError(t *testing.T) {
	repo := NewCampaignRepository()
	id := newCampaign(t, repo)
	boom := errors.New("boom")

	err := repo.Within(context.Background(), id, func(ctx context.Context, s port.CampaignStore, c port.FundsCustodian) error {
		require.NoError(t, c.Receive(ctx, "a", 50))
		require.NoError(t, s.SetDeposit(ctx, "a", 50))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, balance(t, repo, id))
}

func TestViewDiscardsWrites(t *testing.T) {
	repo := NewCampaignRepository()
	id := newCampaign(t, repo)

	require.NoError(t, repo.View(context.Background(), id, func(ctx context.Context, _ port.CampaignStore, c port.FundsCustodian) error {
		return c.Receive(ctx, "a", 50)
	}))
	assert.Zero(t, balance(t, repo, id))
}

func TestTransfer(t *testing.T) {
	repo := NewCampaignRepository()
	id := newCampaign(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.Within(ctx, id, func(ctx context.Context, _ port.CampaignStore, c port.FundsCustodian) error {
		return c.Receive(ctx, "a", 50)
	}))

	err := repo.Within(ctx, id, func(ctx context.Context, _ port.CampaignStore, c port.FundsCustodian) error {
		return c.Transfer(ctx, "owner", 51, domain.TransferClaim)
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	repo.RejectRecipient("mallory")
	err = repo.Within(ctx, id, func(ctx context.Context, _ port.CampaignStore, c port.FundsCustodian) error {
		return c.Transfer(ctx, "mallory", 10, domain.TransferRefund)
	})
	require.ErrorIs(t, err, domain.ErrRecipientRejected)

	require.NoError(t, repo.Within(ctx, id, func(ctx context.Context, _ port.CampaignStore, c port.FundsCustodian) error {
		return c.Transfer(ctx, "owner", 50, domain.TransferClaim)
	}))
	assert.Zero(t, balance(t, repo, id))

	journal, err := repo.Transfers(ctx, id)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, id, journal[0].CampaignID)
	assert.Equal(t, domain.Amount(50), journal[0].Amount)
}

func TestSaveConfigKeepsIdentity(t *testing.T) {
	repo := NewCampaignRepository()
	id := newCampaign(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.Within(ctx, id, func(ctx context.Context, s port.CampaignStore, _ port.FundsCustodian) error {
		return s.SaveConfig(ctx, domain.CampaignConfig{Owner: "someone-else", Target: 1, Limit: domain.Some[domain.Amount](5)})
	}))
	require.NoError(t, repo.View(ctx, id, func(ctx context.Context, s port.CampaignStore, _ port.FundsCustodian) error {
		cfg, err := s.Config(ctx)
		assert.Equal(t, domain.Identity("owner"), cfg.Owner)
		assert.Equal(t, domain.Amount(100), cfg.Target)
		assert.Equal(t, domain.Some[domain.Amount](5), cfg.Limit)
		return err
	}))
}

func TestUnknownCampaign(t *testing.T) {
	repo := NewCampaignRepository()
	noop := func(context.Context, port.CampaignStore, port.FundsCustodian) error { return nil }

	require.ErrorIs(t, repo.Within(context.Background(), uuid.New(), noop), domain.ErrCampaignNotFound)
	require.ErrorIs(t, repo.View(context.Background(), uuid.New(), noop), domain.ErrCampaignNotFound)
	_, err := repo.Transfers(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
