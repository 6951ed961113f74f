package api

import (
	"net/http"

	resdto "sport-rental/internal/handler/dto/response"
	"sport-rental/internal/handler/httperr"
	"sport-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReservationQueries
}

func NewReportHandler(q queries.ReservationQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Reservations per customer
// @Tags reports
// @Produce json
// @Success 200 {array} resdto.ReservationCountResponse
// @Router /api/reports/reservations-per-customer [get]
func (h *ReportHandler) ReservationsPerCustomer(c *gin.Context) {
	counts, err := h.q.CountByCustomer(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationCounts(counts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
