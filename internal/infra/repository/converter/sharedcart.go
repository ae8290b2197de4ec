package converter

import (
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/sharedcart"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
)

func SharedCartFromRow(row sqlc.SharedCarts) (*sharedcart.SharedCart, error) {
	key := sharedcart.Key{
		SupermarketID: row.SupermarketID,
		AddressID:     row.AddressID,
		OrderSlotID:   row.OrderSlotID,
	}
	return sharedcart.ReconstructSharedCart(row.ID, key, sharedcart.Status(row.Status), row.SettlementProcessed)
}

func ContributorFromRow(row sqlc.SharedCartContributors) sharedcart.Contributor {
	return sharedcart.Contributor{
		ID:           row.ID,
		UserID:       row.UserID,
		Contribution: money.Cents(row.DeliveryFeeContributionCents),
		Charged:      money.Cents(row.ChargedCents),
		JoinedAt:     pgconv.TimeFromPgtype(row.JoinedAt),
	}
}

func SharedLineFromRow(row sqlc.SharedCartItems) sharedcart.Line {
	return sharedcart.Line{
		ContributorID: row.ContributorID,
		ItemID:        row.ItemID,
		Quantity:      int(row.Quantity),
		PriceCents:    money.Cents(row.PriceCents),
	}
}
