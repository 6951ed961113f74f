//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"sport-rental/internal/handler/api"
	resdto "sport-rental/internal/handler/dto/response"
	"sport-rental/internal/pkg/errs"
	"sport-rental/internal/usecase/queries"
	"sport-rental/tests/common/httptest"
	queriesmock "sport-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_ReservationsPerCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	url := "/reports/reservations-per-customer"

	t.Run("success: counts per customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockReservationQueries(ctrl)
		q.EXPECT().CountByCustomer(gomock.Any()).Return([]*queries.CustomerReservationCount{
			{CustomerName: "Ana", Count: 1},
			{CustomerName: "Marko", Count: 3},
		}, nil)

		router := gin.New()
		router.GET(url, api.NewReportHandler(q).ReservationsPerCustomer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, url, nil)

		var body []resdto.ReservationCountResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, []resdto.ReservationCountResponse{
			{CustomerName: "Ana", Count: 1},
			{CustomerName: "Marko", Count: 3},
		}, body)
	})

	t.Run("error: store failure is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockReservationQueries(ctrl)
		q.EXPECT().CountByCustomer(gomock.Any()).Return(nil, errs.Mark(errors.New("down"), errs.ErrDatabaseOperationFailed))

		router := gin.New()
		router.GET(url, api.NewReportHandler(q).ReservationsPerCustomer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
