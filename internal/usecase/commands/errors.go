package commands

import (
	"sport-rental/internal/infra"
	"sport-rental/internal/pkg/errs"
)

// translateRepoErr maps repository error kinds onto use case sentinels.
// notFound is returned for KindNotFound and fkViolation for KindForeignKeyViolated.
func translateRepoErr(err error, notFound, fkViolation error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateCustomer)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, fkViolation)
	case infra.IsKind(err, infra.KindConstraintViolated):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
