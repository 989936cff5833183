package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. The pooled balance lives on the campaign row, so the row
// lock taken by Within serializes every mutation of a campaign.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a campaign with an empty pool.
func (r *CampaignRepository) Create(ctx context.Context, cfg domain.CampaignConfig) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns
            (id, owner, target, deadline, funding_limit, limit_per_donor, minimum_per_donation, pool_balance, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,0,now(),now())`,
		cfg.ID, string(cfg.Owner), cfg.Target, cfg.Deadline,
		cfg.Limit.Ptr(), cfg.LimitPerDonor.Ptr(), cfg.MinimumPerDonation.Ptr())
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// Within locks the campaign row in a serializable transaction and commits
// when fn succeeds.
func (r *CampaignRepository) Within(ctx context.Context, id uuid.UUID, fn port.UnitOfWork) error {
	return r.run(ctx, id, fn, pgx.TxOptions{IsoLevel: pgx.Serializable}, true)
}

// View runs fn in a read-only repeatable read transaction. Writes made by
// fn fail.
func (r *CampaignRepository) View(ctx context.Context, id uuid.UUID, fn port.UnitOfWork) error {
	return r.run(ctx, id, fn, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, false)
}

func (r *CampaignRepository) run(ctx context.Context, id uuid.UUID, fn port.UnitOfWork, opts pgx.TxOptions, commit bool) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op once committed
		_ = tx.Rollback(ctx)
	}()

	query := selectCampaign
	if commit {
		query += ` FOR UPDATE`
	}
	cfg, err := scanConfig(tx.QueryRow(ctx, query, id))
	if err != nil {
		return err
	}

	state := &campaignTx{tx: tx, cfg: cfg}
	if err = fn(ctx, state, state); err != nil {
		return err
	}
	if !commit {
		return nil
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Transfers returns the payout journal of a campaign, oldest first.
func (r *CampaignRepository) Transfers(ctx context.Context, id uuid.UUID) ([]domain.Transfer, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrCampaignNotFound
	}
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, recipient, amount, kind, created_at
        FROM transfers
        WHERE campaign_id = $1
        ORDER BY created_at, id`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transfer, error) {
		var (
			t         domain.Transfer
			recipient string
			kind      string
		)
		err := row.Scan(&t.ID, &t.CampaignID, &recipient, &t.Amount, &kind, &t.CreatedAt)
		t.Recipient = domain.Identity(recipient)
		t.Kind = domain.TransferKind(kind)
		return t, err
	})
}

const selectCampaign = `
        SELECT id, owner, target, deadline, funding_limit, limit_per_donor, minimum_per_donation
        FROM campaigns
        WHERE id = $1`

func scanConfig(row pgx.Row) (domain.CampaignConfig, error) {
	var (
		cfg                          domain.CampaignConfig
		owner                        string
		limit, perDonor, minDonation *int64
	)
	err := row.Scan(&cfg.ID, &owner, &cfg.Target, &cfg.Deadline, &limit, &perDonor, &minDonation)
	if errors.Is(err, pgx.ErrNoRows) {
		return cfg, domain.ErrCampaignNotFound
	}
	if err != nil {
		return cfg, err
	}
	cfg.Owner = domain.Identity(owner)
	cfg.Limit = domain.FromPtr(limit)
	cfg.LimitPerDonor = domain.FromPtr(perDonor)
	cfg.MinimumPerDonation = domain.FromPtr(minDonation)
	return cfg, nil
}

// campaignTx is the store and custodian of one campaign inside a
// transaction.
type campaignTx struct {
	tx  pgx.Tx
	cfg domain.CampaignConfig
}

func (c *campaignTx) Config(_ context.Context) (domain.CampaignConfig, error) {
	return c.cfg, nil
}

func (c *campaignTx) SaveConfig(ctx context.Context, cfg domain.CampaignConfig) error {
	_, err := c.tx.Exec(ctx, `
        UPDATE campaigns
        SET funding_limit = $1, limit_per_donor = $2, minimum_per_donation = $3, updated_at = now()
        WHERE id = $4`,
		cfg.Limit.Ptr(), cfg.LimitPerDonor.Ptr(), cfg.MinimumPerDonation.Ptr(), c.cfg.ID)
	if err != nil {
		return fmt.Errorf("update campaign settings: %w", err)
	}
	c.cfg.Limit = cfg.Limit
	c.cfg.LimitPerDonor = cfg.LimitPerDonor
	c.cfg.MinimumPerDonation = cfg.MinimumPerDonation
	return nil
}

func (c *campaignTx) Deposit(ctx context.Context, donor domain.Identity) (domain.Amount, error) {
	var amount domain.Amount
	err := c.tx.QueryRow(ctx, `SELECT amount FROM deposits WHERE campaign_id = $1 AND donor = $2`, c.cfg.ID, string(donor)).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return amount, nil
}

func (c *campaignTx) SetDeposit(ctx context.Context, donor domain.Identity, amount domain.Amount) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}
	_, err := c.tx.Exec(ctx, `
        INSERT INTO deposits (campaign_id, donor, amount, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (campaign_id, donor) DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()`,
		c.cfg.ID, string(donor), amount)
	if err != nil {
		return fmt.Errorf("upsert deposit: %w", err)
	}
	return nil
}

func (c *campaignTx) Balance(ctx context.Context) (domain.Amount, error) {
	var balance domain.Amount
	if err := c.tx.QueryRow(ctx, `SELECT pool_balance FROM campaigns WHERE id = $1`, c.cfg.ID).Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (c *campaignTx) Receive(ctx context.Context, _ domain.Identity, amount domain.Amount) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}
	_, err := c.tx.Exec(ctx, `UPDATE campaigns SET pool_balance = pool_balance + $1, updated_at = now() WHERE id = $2`, amount, c.cfg.ID)
	if err != nil {
		return fmt.Errorf("credit pool: %w", err)
	}
	return nil
}

// Transfer debits the pool and records the payout in the journal.
// Recipients listed in blocked_recipients cannot accept funds.
func (c *campaignTx) Transfer(ctx context.Context, to domain.Identity, amount domain.Amount, kind domain.TransferKind) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}
	var blocked bool
	err := c.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blocked_recipients WHERE identity = $1)`, string(to)).Scan(&blocked)
	if err != nil {
		return err
	}
	if blocked {
		return domain.ErrRecipientRejected
	}

	tag, err := c.tx.Exec(ctx, `
        UPDATE campaigns SET pool_balance = pool_balance - $1, updated_at = now()
        WHERE id = $2 AND pool_balance >= $1`, amount, c.cfg.ID)
	if err != nil {
		return fmt.Errorf("debit pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}

	_, err = c.tx.Exec(ctx, `
        INSERT INTO transfers (id, campaign_id, recipient, amount, kind, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)`,
		uuid.New(), c.cfg.ID, string(to), amount, string(kind), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}
