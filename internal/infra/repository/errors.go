package repository

import (
	"grocery-pool/internal/infra"
	"grocery-pool/internal/pkg/errs"
)

// notFound keeps the repository kind and adds the domain sentinel callers match on.
func notFound(msg string, err error, sentinel error) error {
	return errs.Mark(infra.WrapRepoErr(msg, err, infra.KindNotFound), sentinel)
}
