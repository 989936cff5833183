package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port/mocks"
)

// clock is a settable time source shared by a test and its usecase.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(unix int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = time.Unix(unix, 0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryUseCase(t *testing.T) (*CampaignUseCase, *clock) {
	t.Helper()
	c := &clock{}
	c.Set(100)
	return NewCampaignUseCase(memory.NewCampaignRepository(), discardLogger(), WithClock(c.Now)), c
}

// TestSuccessfulCampaign funds past the target and lets the owner drain the pool.
func TestSuccessfulCampaign(t *testing.T) {
	ctx := context.Background()
	svc, c := newMemoryUseCase(t)

	view, err := svc.CreateCampaign(ctx, "owner", 1000, 200)
	require.NoError(t, err)
	assert.Equal(t, "funding_period", view.Status)
	assert.Nil(t, view.Limit)

	require.NoError(t, svc.Fund(ctx, view.ID, "a", 400))
	require.NoError(t, svc.Fund(ctx, view.ID, "b", 700))

	c.Set(200)
	status, err := svc.Status(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFundingPeriod, status)
	require.ErrorIs(t, svc.Fund(ctx, view.ID, "a", 1), domain.ErrFundingClosed)

	c.Set(201)
	got, err := svc.GetCampaign(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "successful", got.Status)
	assert.Equal(t, domain.Amount(1100), got.CurrentFunds)

	_, err = svc.Claim(ctx, view.ID, "a")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	transferred, err := svc.Claim(ctx, view.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(1100), transferred)

	transferred, err = svc.Claim(ctx, view.ID, "owner")
	require.NoError(t, err)
	assert.Zero(t, transferred)

	journal, err := svc.Transfers(ctx, view.ID)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, domain.TransferClaim, journal[0].Kind)
}

// TestFailedCampaign refunds the only donor and lets strangers claim zero.
func TestFailedCampaign(t *testing.T) {
	ctx := context.Background()
	svc, c := newMemoryUseCase(t)

	view, err := svc.CreateCampaign(ctx, "owner", 1000, 200)
	require.NoError(t, err)
	require.NoError(t, svc.Fund(ctx, view.ID, "a", 300))

	c.Set(150)
	_, err = svc.Claim(ctx, view.ID, "a")
	require.ErrorIs(t, err, domain.ErrClaimBeforeDeadline)

	c.Set(300)
	status, err := svc.Status(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, status)

	transferred, err := svc.Claim(ctx, view.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(300), transferred)

	deposit, err := svc.Deposit(ctx, view.ID, "a")
	require.NoError(t, err)
	assert.Zero(t, deposit)

	transferred, err = svc.Claim(ctx, view.ID, "b")
	require.NoError(t, err)
	assert.Zero(t, transferred)
}

func TestCreateCampaignValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryUseCase(t)

	_, err := svc.CreateCampaign(ctx, "owner", 0, 200)
	require.ErrorIs(t, err, domain.ErrInvalidTarget)
	_, err = svc.CreateCampaign(ctx, "owner", 10, 100)
	require.ErrorIs(t, err, domain.ErrDeadlineInPast)
	_, err = svc.CreateCampaign(ctx, "", 10, 200)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSettingsFlowIntoView(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryUseCase(t)

	view, err := svc.CreateCampaign(ctx, "owner", 1000, 200)
	require.NoError(t, err)

	require.ErrorIs(t, svc.SetLimit(ctx, view.ID, "a", 10), domain.ErrUnauthorized)
	require.NoError(t, svc.SetLimit(ctx, view.ID, "owner", 500))
	require.NoError(t, svc.SetLimitPerDonor(ctx, view.ID, "owner", 100))
	require.NoError(t, svc.SetMinimumPerDonation(ctx, view.ID, "owner", 5))

	got, err := svc.GetCampaign(ctx, view.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Limit)
	require.NotNil(t, got.LimitPerDonor)
	require.NotNil(t, got.MinimumPerDonation)
	assert.Equal(t, domain.Amount(500), *got.Limit)
	assert.Equal(t, domain.Amount(100), *got.LimitPerDonor)
	assert.Equal(t, domain.Amount(5), *got.MinimumPerDonation)

	require.ErrorIs(t, svc.Fund(ctx, view.ID, "a", 4), domain.ErrBelowMinimumDonation)
	require.ErrorIs(t, svc.Fund(ctx, view.ID, "a", 101), domain.ErrPerDonorLimitExceeded)
}

func TestUnknownCampaign(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryUseCase(t)

	_, err := svc.GetCampaign(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
	require.ErrorIs(t, svc.Fund(ctx, uuid.New(), "a", 1), domain.ErrCampaignNotFound)
}

// TestConcurrentFunding ensures concurrent deposits keep the ledger and pool in sync.
func TestConcurrentFunding(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryUseCase(t)

	view, err := svc.CreateCampaign(ctx, "owner", 1000, 200)
	require.NoError(t, err)
	require.NoError(t, svc.SetLimitPerDonor(ctx, view.ID, "owner", 50))

	donors := []domain.Identity{"a", "b", "c", "d"}
	wg := sync.WaitGroup{}
	for _, donor := range donors {
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = svc.Fund(ctx, view.ID, donor, 10)
			}()
		}
	}
	wg.Wait()

	// each donor is capped at 50, so only 5 of their 10 deposits succeed
	var sum domain.Amount
	for _, donor := range donors {
		deposit, err := svc.Deposit(ctx, view.ID, donor)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(50), deposit)
		sum += deposit
	}
	got, err := svc.GetCampaign(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, sum, got.CurrentFunds)
}

func TestCreateCampaignRepositoryError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	boom := errors.New("boom")

	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(cfg domain.CampaignConfig) bool {
			return cfg.ID == id && cfg.Owner == "owner" && cfg.Target == 10
		})).
		Return(boom)

	svc := NewCampaignUseCase(repo, discardLogger(),
		WithClock(func() time.Time { return time.Unix(100, 0) }),
		WithIDGenerator(func() uuid.UUID { return id }),
	)
	_, err := svc.CreateCampaign(context.Background(), "owner", 10, 200)
	require.ErrorIs(t, err, boom)
}

func TestFundRepositoryError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	boom := errors.New("serialization failure")

	repo.EXPECT().Within(mock.Anything, id, mock.Anything).Return(boom)

	svc := NewCampaignUseCase(repo, discardLogger())
	require.ErrorIs(t, svc.Fund(context.Background(), id, "a", 1), boom)
}
