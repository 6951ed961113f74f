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

type EquipmentHandler struct {
	cmds commands.EquipmentCommands
	q    queries.EquipmentQueries
}

func NewEquipmentHandler(cmds commands.EquipmentCommands, q queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{cmds: cmds, q: q}
}

// @Summary Create equipment
// @Description Quantity must not be negative and price must be positive unless skip_validation is set
// @Tags equipment
// @Accept json
// @Produce json
// @Param skip_validation query bool false "Store without validation"
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var opts reqdto.CreateOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateEquipment(c.Request.Context(), req.ToInput(opts))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List equipment
// @Tags equipment
// @Produce json
// @Success 200 {array} resdto.EquipmentResponse
// @Router /api/equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromEquipmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromEquipmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update equipment price and quantity
// @Tags equipment
// @Accept json
// @Param id path int true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "New price and quantity"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id} [patch]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdatePriceQuantity(c.Request.Context(), id, *req.Price, *req.Quantity); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete equipment
// @Tags equipment
// @Param id path int true "Equipment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteEquipment(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
