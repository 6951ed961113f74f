package api

import (
	"errors"
	"net/http"

	"sport-rental/internal/domain/customer"
	"sport-rental/internal/domain/equipment"
	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/handler/httperr"
	"sport-rental/internal/infra"
	"sport-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ruleCodes gives every validation rule a stable code clients can branch on.
var ruleCodes = []struct {
	err  error
	code string
}{
	{reservation.ErrMissingReference, "missing_reference"},
	{reservation.ErrBlankField, "blank_field"},
	{reservation.ErrDateInPast, "date_in_past"},
	{reservation.ErrReturnNotAfterReservation, "return_not_after_reservation"},
	{reservation.ErrInvalidQuantity, "invalid_quantity"},
	{reservation.ErrInsufficientStock, "insufficient_stock"},
	{reservation.ErrInvalidStatus, "invalid_status"},
	{customer.ErrInvalidEmail, "invalid_email"},
	{customer.ErrPhoneTooShort, "phone_too_short"},
	{equipment.ErrNegativeQuantity, "negative_quantity"},
	{equipment.ErrNonPositivePrice, "non_positive_price"},
}

func validationDetail(err error) httperr.Detail {
	detail := httperr.Detail{Code: "constraint_violated"}
	for _, rc := range ruleCodes {
		if errors.Is(err, rc.err) {
			detail.Code = rc.code
			break
		}
	}
	var stockErr *reservation.InsufficientStockError
	if errors.As(err, &stockErr) {
		detail.Max = &stockErr.Available
	}
	return detail
}

// abortWithUseCaseError picks the status for an error returned by a command or query.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		if infra.IsKind(err, infra.KindConstraintViolated) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Value rejected by the store", validationDetail(err))
			return
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), validationDetail(err))
	case errs.Is(err, errs.ErrInvalidReference):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, errs.ErrInvalidReference.Error(), "invalid_reference")
	case errs.Is(err, errs.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	case errs.Is(err, errs.ErrEquipmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Equipment not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrDuplicateCustomer):
		httperr.AbortWithCode(c, http.StatusConflict, err, errs.ErrDuplicateCustomer.Error(), "duplicate_customer")
	case errs.Is(err, errs.ErrStillReferenced):
		httperr.AbortWithCode(c, http.StatusConflict, err, errs.ErrStillReferenced.Error(), "still_referenced")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
