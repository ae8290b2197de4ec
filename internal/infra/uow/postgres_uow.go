package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"grocery-pool/internal/infra/readstore"
	"grocery-pool/internal/infra/repository"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				tx.runAfterCommit(ctx)
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	cartRepo          shared.CartRepository
	stockRepo         shared.StockRepository
	sharedCartRepo    shared.SharedCartRepository
	orderRepo         shared.OrderRepository
	ledgerRepo        shared.LedgerRepository
	settlementJobRepo shared.SettlementJobRepository
	idempotencyRepo   shared.IdempotencyRepository
	commandReads      shared.CommandReads

	afterCommit []func(ctx context.Context)
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q, t.dbtx)
	}
	return t.cartRepo
}

func (t *pgTx) Stock() shared.StockRepository {
	if t.stockRepo == nil {
		t.stockRepo = repository.NewStockRepository(t.uow.q, t.dbtx)
	}
	return t.stockRepo
}

func (t *pgTx) SharedCarts() shared.SharedCartRepository {
	if t.sharedCartRepo == nil {
		t.sharedCartRepo = repository.NewSharedCartRepository(t.uow.q, t.dbtx)
	}
	return t.sharedCartRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.uow.q, t.dbtx)
	}
	return t.ledgerRepo
}

func (t *pgTx) SettlementJobs() shared.SettlementJobRepository {
	if t.settlementJobRepo == nil {
		t.settlementJobRepo = repository.NewSettlementJobRepository(t.uow.q, t.dbtx)
	}
	return t.settlementJobRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

func (t *pgTx) AfterCommit(fn func(ctx context.Context)) {
	t.afterCommit = append(t.afterCommit, fn)
}

// Hooks get a context that outlives request cancellation.
func (t *pgTx) runAfterCommit(ctx context.Context) {
	hookCtx := context.WithoutCancel(ctx)
	for _, fn := range t.afterCommit {
		fn(hookCtx)
	}
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	catalog *readstore.CatalogReadStore
}

func (r *commandReads) store() *readstore.CatalogReadStore {
	if r.catalog == nil {
		r.catalog = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalog
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	user, err := r.store().FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (r *commandReads) SupermarketByID(ctx context.Context, id uuid.UUID) (*shared.SupermarketSnapshot, error) {
	sm, err := r.store().FindSupermarket(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.SupermarketSnapshot{ID: sm.ID, Name: sm.Name, DeliveryFee: sm.DeliveryFee}, nil
}

func (r *commandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	item, err := r.store().FindItem(ctx, id)
	if err != nil {
		return nil, err
	}
	snapshot := &shared.ItemSnapshot{
		ID:            item.ID,
		SupermarketID: item.SupermarketID,
		Name:          item.Name,
		PriceCents:    item.PriceCents,
	}
	return snapshot, nil
}

func (r *commandReads) AddressByID(ctx context.Context, id uuid.UUID) (*shared.AddressSnapshot, error) {
	addr, err := r.store().FindAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.AddressSnapshot{ID: addr.ID, UserID: addr.UserID, BuildingName: addr.BuildingName}, nil
}

func (r *commandReads) OrderSlotByID(ctx context.Context, id uuid.UUID) (*shared.OrderSlotSnapshot, error) {
	s, err := r.store().FindOrderSlot(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.OrderSlotSnapshot{ID: s.ID, SupermarketID: s.SupermarketID, Label: s.Label}, nil
}

func (r *commandReads) OrderSlotByLabel(ctx context.Context, supermarketID uuid.UUID, label string) (*shared.OrderSlotSnapshot, error) {
	s, err := r.store().FindOrderSlotByLabel(ctx, supermarketID, label)
	if err != nil {
		return nil, err
	}
	return &shared.OrderSlotSnapshot{ID: s.ID, SupermarketID: s.SupermarketID, Label: s.Label}, nil
}
