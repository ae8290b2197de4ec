//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id", name, email).Scan(&userID)
	require.NoError(t, err)
	return userID
}

// fee nil leaves the supermarket without a delivery fee.
func CreateTestSupermarket(t *testing.T, db DBLike, name string, fee *int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO supermarkets (name, delivery_fee_cents) VALUES ($1, $2) RETURNING id", name, fee).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestItem inserts an item together with its stock level.
func CreateTestItem(t *testing.T, db DBLike, supermarketID uuid.UUID, name string, priceCents int64, stock int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var id uuid.UUID
	err := db.QueryRow(ctx,
		"INSERT INTO items (supermarket_id, name, photo_url, price_cents) VALUES ($1, $2, $3, $4) RETURNING id",
		supermarketID, name, "https://img.example.com/"+strings.ToLower(name)+".png", priceCents).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO stock_levels (item_id, supermarket_id, quantity) VALUES ($1, $2, $3)", id, supermarketID, stock)
	require.NoError(t, err)
	return id
}

func CreateTestAddress(t *testing.T, db DBLike, userID uuid.UUID, building string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO addresses (user_id, building_name) VALUES ($1, $2) RETURNING id", userID, building).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestOrderSlot(t *testing.T, db DBLike, supermarketID uuid.UUID, label string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO order_slots (supermarket_id, label) VALUES ($1, $2) RETURNING id", supermarketID, label).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreditWallet(t *testing.T, db DBLike, userID uuid.UUID, cents int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO wallet_ledger_entries (user_id, amount_cents, kind, note) VALUES ($1, $2, 'credit', 'seed')",
		userID, cents)
	require.NoError(t, err)
}

func StockOf(t *testing.T, db DBLike, itemID, supermarketID uuid.UUID) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(),
		"SELECT quantity FROM stock_levels WHERE item_id = $1 AND supermarket_id = $2", itemID, supermarketID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func BalanceOf(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(amount_cents), 0)::BIGINT FROM wallet_ledger_entries WHERE user_id = $1", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// Grocery is the standard store used by the scenarios: fee 5.00, one item
// at 2.00 with 10 in stock, slots "now" and "6am".
type Grocery struct {
	UserA         uuid.UUID
	UserB         uuid.UUID
	SupermarketID uuid.UUID
	ItemID        uuid.UUID
	AddressID     uuid.UUID
	SlotNowID     uuid.UUID
	Slot6amID     uuid.UUID
}

const (
	GroceryFeeCents   = int64(500)
	GroceryPriceCents = int64(200)
	GroceryStock      = 10
)

func SeedGrocery(t *testing.T, db DBLike) Grocery {
	t.Helper()

	fee := GroceryFeeCents
	g := Grocery{
		UserA: CreateTestUser(t, db, "Alice", "alice@example.com"),
		UserB: CreateTestUser(t, db, "Bob", "bob@example.com"),
	}
	g.SupermarketID = CreateTestSupermarket(t, db, "Corner Market", &fee)
	g.ItemID = CreateTestItem(t, db, g.SupermarketID, "Apples", GroceryPriceCents, GroceryStock)
	g.AddressID = CreateTestAddress(t, db, g.UserA, "Tower A")
	g.SlotNowID = CreateTestOrderSlot(t, db, g.SupermarketID, "now")
	g.Slot6amID = CreateTestOrderSlot(t, db, g.SupermarketID, "6am")
	return g
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
