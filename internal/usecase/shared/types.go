package shared

import (
	"time"

	"grocery-pool/internal/domain/money"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type SupermarketSnapshot struct {
	ID          uuid.UUID
	Name        string
	DeliveryFee *money.Cents
}

type ItemSnapshot struct {
	ID            uuid.UUID
	SupermarketID uuid.UUID
	Name          string
	PriceCents    money.Cents
}

type AddressSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BuildingName string
}

type OrderSlotSnapshot struct {
	ID            uuid.UUID
	SupermarketID uuid.UUID
	Label         string
}

type SettlementJob struct {
	ID           uuid.UUID
	SharedCartID uuid.UUID
	RunAt        time.Time
	Attempts     int
}

type IdempotencyClaim struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	// ResultID is nil until the guarded write has committed.
	ResultID  *uuid.UUID
	ExpiresAt time.Time
}
