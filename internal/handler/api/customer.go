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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create customer
// @Description Create a customer; email format and phone length are checked unless skip_validation is set
// @Tags customers
// @Accept json
// @Produce json
// @Param skip_validation query bool false "Store without validation"
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var opts reqdto.CreateOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateCustomer(c.Request.Context(), req.ToInput(opts))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Failure 500 {object} httperr.Response
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCustomerViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update customer phone
// @Tags customers
// @Accept json
// @Param email path string true "Customer email"
// @Param request body reqdto.UpdateCustomerPhoneRequest true "New phone"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/by-email/{email} [patch]
func (h *CustomerHandler) UpdatePhone(c *gin.Context) {
	var req reqdto.UpdateCustomerPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdatePhone(c.Request.Context(), c.Param("email"), req.Phone); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete customer
// @Tags customers
// @Param email path string true "Customer email"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/customers/by-email/{email} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteCustomer(c.Request.Context(), c.Param("email")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
