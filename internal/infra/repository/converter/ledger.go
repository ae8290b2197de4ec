package converter

import (
	"grocery-pool/internal/domain/ledger"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
)

func LedgerEntryToInsertParams(e *ledger.Entry) sqlc.InsertLedgerEntryParams {
	ref := e.Reference()
	return sqlc.InsertLedgerEntryParams{
		ID:           e.ID(),
		UserID:       e.UserID(),
		AmountCents:  e.Amount().Int64(),
		Kind:         e.Kind().String(),
		OrderID:      pgconv.UUIDPtrToPgtype(ref.OrderID),
		SharedCartID: pgconv.UUIDPtrToPgtype(ref.SharedCartID),
		Note:         e.Note(),
	}
}
