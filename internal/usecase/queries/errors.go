package queries

import "grocery-pool/internal/pkg/errs"

var (
	ErrUserNotFound        = errs.Kind("user not found", errs.ErrNotFound)
	ErrSupermarketNotFound = errs.Kind("supermarket not found", errs.ErrNotFound)
	ErrItemNotFound        = errs.Kind("item not found", errs.ErrNotFound)
	ErrAddressNotFound     = errs.Kind("address not found", errs.ErrNotFound)
)
