package shared

import (
	"context"
	"time"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/inventory"
	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/domain/sharedcart"
	sqlc "grocery-pool/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Carts() CartRepository
	Stock() StockRepository
	SharedCarts() SharedCartRepository
	Orders() OrderRepository
	Ledger() LedgerRepository
	SettlementJobs() SettlementJobRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
	// AfterCommit registers fn to run once the transaction has committed.
	// It is dropped on rollback and on every retried attempt.
	AfterCommit(fn func(ctx context.Context))
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	SupermarketByID(ctx context.Context, id uuid.UUID) (*SupermarketSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	AddressByID(ctx context.Context, id uuid.UUID) (*AddressSnapshot, error)
	OrderSlotByID(ctx context.Context, id uuid.UUID) (*OrderSlotSnapshot, error)
	OrderSlotByLabel(ctx context.Context, supermarketID uuid.UUID, label string) (*OrderSlotSnapshot, error)
}

type CartRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*cart.Cart, error)
	// ActiveByUserForUpdate returns nil when the user has no active cart.
	ActiveByUserForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*cart.Cart, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) error
	Lines(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) ([]cart.Line, error)
	// LineForUpdate returns nil when the item is not in the cart.
	LineForUpdate(ctx context.Context, tx sqlc.DBTX, cartID, itemID uuid.UUID) (*cart.Line, error)
	InsertLine(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, line cart.Line) error
	UpdateLine(ctx context.Context, tx sqlc.DBTX, line cart.Line) error
	DeleteLine(ctx context.Context, tx sqlc.DBTX, lineID uuid.UUID) error
	DeleteLines(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) (int64, error)
}

type StockRepository interface {
	LockLevel(ctx context.Context, tx sqlc.DBTX, itemID, supermarketID uuid.UUID) (*inventory.StockLevel, error)
	Save(ctx context.Context, tx sqlc.DBTX, level *inventory.StockLevel) error
}

type SharedCartRepository interface {
	// InsertOpen creates the OPEN cart for key unless one already exists.
	InsertOpen(ctx context.Context, tx sqlc.DBTX, sc *sharedcart.SharedCart) (created bool, err error)
	// OpenForUpdate returns nil when no OPEN cart exists for key.
	OpenForUpdate(ctx context.Context, tx sqlc.DBTX, key sharedcart.Key) (*sharedcart.SharedCart, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*sharedcart.SharedCart, error)
	Close(ctx context.Context, tx sqlc.DBTX, sc *sharedcart.SharedCart) error
	// AddContributor returns false when the user is already enrolled.
	AddContributor(ctx context.Context, tx sqlc.DBTX, sharedCartID, userID uuid.UUID, contribution money.Cents) (bool, error)
	// Contributor returns nil when the user is not enrolled.
	Contributor(ctx context.Context, tx sqlc.DBTX, sharedCartID, userID uuid.UUID) (*sharedcart.Contributor, error)
	Contributors(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID) ([]sharedcart.Contributor, error)
	UpdateShare(ctx context.Context, tx sqlc.DBTX, contributorID uuid.UUID, contribution, charged money.Cents) error
	AddLine(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID, line sharedcart.Line) error
	Lines(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID) ([]sharedcart.Line, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order, lines []order.Line) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	// LiveByCart returns nil when the cart has no non-canceled order.
	LiveByCart(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) (*order.Order, error)
	// LiveBySharedCartForUpdate returns nil when the shared cart has no non-canceled order.
	LiveBySharedCartForUpdate(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID) (*order.Order, error)
	Update(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	ReplaceLines(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, lines []order.Line) error
	Lines(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]order.Line, error)
}

type LedgerRepository interface {
	LockUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Append(ctx context.Context, tx sqlc.DBTX, entry *ledger.Entry) error
	Balance(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (money.Cents, error)
}

type SettlementJobRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID, runAt time.Time) (uuid.UUID, error)
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]SettlementJob, error)
	MarkDone(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkSkipped(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, reason string) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, cause string) error
	Requeue(ctx context.Context, tx sqlc.DBTX, jobIDs []uuid.UUID) (int64, error)
}

type IdempotencyRepository interface {
	// Claim records the key unless a live entry exists. Expired entries are
	// taken over.
	Claim(ctx context.Context, tx sqlc.DBTX, claim IdempotencyClaim, now time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID) error
}

// BalanceCache stores derived balances for read paths. Implementations may
// forget entries at any time.
type BalanceCache interface {
	Get(ctx context.Context, userID uuid.UUID) (money.Cents, error)
	// Version must be read before the ledger sum that is later stored.
	Version(ctx context.Context, userID uuid.UUID) (int64, error)
	// SetIfVersion stores balance only when no Delete ran since version was
	// read. A skipped write is not an error.
	SetIfVersion(ctx context.Context, userID uuid.UUID, version int64, balance money.Cents) error
	// Delete invalidates the entry and bumps the version.
	Delete(ctx context.Context, userID uuid.UUID) error
}
