package queries

import (
	"time"

	"grocery-pool/internal/domain/money"

	"github.com/google/uuid"
)

// Catalog views

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// SupermarketView.DeliveryFee is nil when the store has not configured one.
type SupermarketView struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	DeliveryFee *money.Cents `json:"delivery_fee_cents,omitempty"`
}

type ItemView struct {
	ID            uuid.UUID   `json:"id"`
	SupermarketID uuid.UUID   `json:"supermarket_id"`
	Name          string      `json:"name"`
	PhotoURL      string      `json:"photo_url"`
	PriceCents    money.Cents `json:"price_cents"`
}

type AddressView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	BuildingName string    `json:"building_name"`
}

type OrderSlotView struct {
	ID            uuid.UUID `json:"id"`
	SupermarketID uuid.UUID `json:"supermarket_id"`
	Label         string    `json:"label"`
}

// CartView represents a cart with its priced lines and the owner's balance
type CartView struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	SupermarketID uuid.UUID      `json:"supermarket_id"`
	Status        string         `json:"status"`
	Lines         []CartLineView `json:"lines"`
	Total         money.Cents    `json:"total_cents"`
	WalletBalance money.Cents    `json:"wallet_balance_cents"`
}

type CartLineView struct {
	ItemID     uuid.UUID   `json:"item_id"`
	Name       string      `json:"name"`
	PhotoURL   string      `json:"photo_url"`
	Quantity   int         `json:"quantity"`
	PriceCents money.Cents `json:"price_cents"`
	Amount     money.Cents `json:"amount_cents"`
}

// OrderView represents read-optimized order data with lines
type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	SupermarketID   uuid.UUID       `json:"supermarket_id"`
	SupermarketName string          `json:"supermarket_name"`
	AddressID       uuid.UUID       `json:"address_id"`
	BuildingName    string          `json:"building_name"`
	SlotLabel       string          `json:"slot_label"`
	DeliveryFee     money.Cents     `json:"delivery_fee_cents"`
	Total           money.Cents     `json:"total_amount_cents"`
	Status          string          `json:"status"`
	CartID          *uuid.UUID      `json:"cart_id,omitempty"`
	SharedCartID    *uuid.UUID      `json:"shared_cart_id,omitempty"`
	Lines           []OrderLineView `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderLineView struct {
	ItemID     uuid.UUID   `json:"item_id"`
	Name       string      `json:"name"`
	PhotoURL   string      `json:"photo_url"`
	Quantity   int         `json:"quantity"`
	PriceCents money.Cents `json:"price_cents"`
	Amount     money.Cents `json:"amount_cents"`
}

type OrderListItem struct {
	ID              uuid.UUID   `json:"id"`
	SupermarketID   uuid.UUID   `json:"supermarket_id"`
	SupermarketName string      `json:"supermarket_name"`
	SlotLabel       string      `json:"slot_label"`
	Total           money.Cents `json:"total_amount_cents"`
	Status          string      `json:"status"`
	Shared          bool        `json:"shared"`
	CreatedAt       time.Time   `json:"created_at"`
}

type WalletView struct {
	UserID  uuid.UUID         `json:"user_id"`
	Balance money.Cents       `json:"balance_cents"`
	Entries []LedgerEntryView `json:"entries"`
}

type LedgerEntryView struct {
	ID           uuid.UUID   `json:"id"`
	Amount       money.Cents `json:"amount_cents"`
	Kind         string      `json:"kind"`
	OrderID      *uuid.UUID  `json:"order_id,omitempty"`
	SharedCartID *uuid.UUID  `json:"shared_cart_id,omitempty"`
	Note         string      `json:"note"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SharedCartView shows a pooled cart with lines aggregated by item
type SharedCartView struct {
	ID                  uuid.UUID              `json:"id"`
	SupermarketID       uuid.UUID              `json:"supermarket_id"`
	AddressID           uuid.UUID              `json:"address_id"`
	OrderSlotID         uuid.UUID              `json:"order_slot_id"`
	Status              string                 `json:"status"`
	SettlementProcessed bool                   `json:"settlement_processed"`
	Contributors        []ContributorView      `json:"contributors"`
	Lines               []SharedCartLineView   `json:"lines"`
	Total               money.Cents            `json:"total_cents"`
	Settlements         []SettlementJobSummary `json:"settlements"`
}

type ContributorView struct {
	UserID       uuid.UUID   `json:"user_id"`
	Contribution money.Cents `json:"delivery_fee_contribution_cents"`
	Charged      money.Cents `json:"charged_cents"`
	JoinedAt     time.Time   `json:"joined_at"`
}

type SharedCartLineView struct {
	ItemID     uuid.UUID   `json:"item_id"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	PriceCents money.Cents `json:"price_cents"`
	Amount     money.Cents `json:"amount_cents"`
}

type SettlementJobSummary struct {
	ID        uuid.UUID `json:"id"`
	RunAt     time.Time `json:"run_at"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError *string   `json:"last_error,omitempty"`
}

// SharedCartRecord is the raw shape read stores hand back before aggregation.
type SharedCartRecord struct {
	ID                  uuid.UUID
	SupermarketID       uuid.UUID
	AddressID           uuid.UUID
	OrderSlotID         uuid.UUID
	Status              string
	SettlementProcessed bool
}

type SharedCartLineRecord struct {
	ContributorID uuid.UUID
	ItemID        uuid.UUID
	Name          string
	Quantity      int
	PriceCents    money.Cents
}
