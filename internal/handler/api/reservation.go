package api

import (
	"net/http"

	reqdto "sport-rental/internal/handler/dto/request"
	resdto "sport-rental/internal/handler/dto/response"
	"sport-rental/internal/handler/httperr"
	"sport-rental/internal/usecase/commands"
	"sport-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Runs the reservation rules against current stock before inserting
// @Tags reservations
// @Accept json
// @Produce json
// @Param skip_validation query bool false "Store without the reservation rules"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var opts reqdto.CreateOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(opts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateReservation(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List reservations
// @Description Ordered by reservation date; q filters by customer or equipment name
// @Tags reservations
// @Produce json
// @Param q query string false "Case-insensitive search term"
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update reservation return date
// @Tags reservations
// @Accept json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReturnDateRequest true "New return date"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [patch]
func (h *ReservationHandler) UpdateReturnDate(c *gin.Context) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateReturnDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	returnDate, err := req.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateReturnDate(c.Request.Context(), id, returnDate); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete reservation
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteReservation(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
