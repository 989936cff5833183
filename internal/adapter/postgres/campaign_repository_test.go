package postgres

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/ledger"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// newTestRepository connects to the database named by PSQL_TEST_ADDRESS and
// applies migrations. The test is skipped when the variable is unset.
func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr, slog.New(slog.NewTextHandler(io.Discard, nil))))
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewCampaignRepository(pool)
}

func TestCampaignLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cfg, err := ledger.Initialize(uuid.New(), "owner", 1000, 100, 0)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, cfg))

	run := func(fn func(*ledger.Ledger) error) error {
		return repo.Within(ctx, cfg.ID, func(_ context.Context, s port.CampaignStore, c port.FundsCustodian) error {
			return fn(ledger.New(s, c))
		})
	}

	require.NoError(t, run(func(l *ledger.Ledger) error {
		return l.SetLimitPerDonor(ctx, domain.CallContext{Caller: "owner"}, 800)
	}))
	require.NoError(t, run(func(l *ledger.Ledger) error {
		return l.Fund(ctx, domain.CallContext{Caller: "a", Now: 1}, 400)
	}))
	require.NoError(t, run(func(l *ledger.Ledger) error {
		return l.Fund(ctx, domain.CallContext{Caller: "b", Now: 2}, 700)
	}))
	require.ErrorIs(t, run(func(l *ledger.Ledger) error {
		return l.Fund(ctx, domain.CallContext{Caller: "b", Now: 3}, 101)
	}), domain.ErrPerDonorLimitExceeded)

	var claimed domain.Amount
	require.NoError(t, run(func(l *ledger.Ledger) error {
		var err error
		claimed, err = l.Claim(ctx, domain.CallContext{Caller: "owner", Now: 101})
		return err
	}))
	assert.Equal(t, domain.Amount(1100), claimed)

	require.NoError(t, repo.View(ctx, cfg.ID, func(ctx context.Context, s port.CampaignStore, c port.FundsCustodian) error {
		balance, err := c.Balance(ctx)
		require.NoError(t, err)
		assert.Zero(t, balance)

		deposit, err := s.Deposit(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(400), deposit)

		stored, err := s.Config(ctx)
		require.NoError(t, err)
		perDonor, ok := stored.LimitPerDonor.Get()
		assert.True(t, ok)
		assert.Equal(t, domain.Amount(800), perDonor)
		assert.False(t, stored.Limit.IsSet())
		return nil
	}))

	journal, err := repo.Transfers(ctx, cfg.ID)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, domain.TransferClaim, journal[0].Kind)
}

func TestUnknownCampaign(t *testing.T) {
	repo := newTestRepository(t)
	err := repo.Within(context.Background(), uuid.New(), func(context.Context, port.CampaignStore, port.FundsCustodian) error {
		return nil
	})
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
