package readstore

import (
	"grocery-pool/internal/infra"
	"grocery-pool/internal/pkg/errs"
)

func notFound(msg string, err error, sentinel error) error {
	return errs.Mark(infra.WrapRepoErr(msg, err, infra.KindNotFound), sentinel)
}
