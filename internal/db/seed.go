package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Seed creates demo campaigns through svc: one still raising funds, one
// limited by caps and one whose donors are already deposited. It returns
// the ids of the created campaigns.
func Seed(ctx context.Context, svc port.CampaignUseCase) ([]uuid.UUID, error) {
	const owner domain.Identity = "demo-owner"
	deadline := time.Now().Add(30 * 24 * time.Hour).Unix()

	open, err := svc.CreateCampaign(ctx, owner, 100_000, deadline)
	if err != nil {
		return nil, fmt.Errorf("seed open campaign: %w", err)
	}

	capped, err := svc.CreateCampaign(ctx, owner, 50_000, deadline)
	if err != nil {
		return nil, fmt.Errorf("seed capped campaign: %w", err)
	}
	if err = svc.SetMinimumPerDonation(ctx, capped.ID, owner, 100); err != nil {
		return nil, err
	}
	if err = svc.SetLimit(ctx, capped.ID, owner, 60_000); err != nil {
		return nil, err
	}
	if err = svc.SetLimitPerDonor(ctx, capped.ID, owner, 10_000); err != nil {
		return nil, err
	}

	backed, err := svc.CreateCampaign(ctx, owner, 10_000, deadline)
	if err != nil {
		return nil, fmt.Errorf("seed backed campaign: %w", err)
	}
	for i := 1; i <= 5; i++ {
		donor := domain.Identity(fmt.Sprintf("donor-%d", i))
		if err = svc.Fund(ctx, backed.ID, donor, domain.Amount(i*1_000)); err != nil {
			return nil, fmt.Errorf("seed deposit of %s: %w", donor, err)
		}
	}

	return []uuid.UUID{open.ID, capped.ID, backed.ID}, nil
}
