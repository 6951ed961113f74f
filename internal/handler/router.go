package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sport-rental/internal/handler/api"
	"sport-rental/internal/handler/middleware"
	"sport-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Customer    *api.CustomerHandler
	Equipment   *api.EquipmentHandler
	Reservation *api.ReservationHandler
	Report      *api.ReportHandler
}

func NewHandlers(
	customer *api.CustomerHandler,
	equipment *api.EquipmentHandler,
	reservation *api.ReservationHandler,
	report *api.ReportHandler,
) Handlers {
	return Handlers{
		Customer:    customer,
		Equipment:   equipment,
		Reservation: reservation,
		Report:      report,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
			{Method: http.MethodPatch, Path: "/by-email/:email", Handler: h.Customer.UpdatePhone},
			{Method: http.MethodDelete, Path: "/by-email/:email", Handler: h.Customer.Delete},
		})

		addRoutes(apiGroup.Group("/equipment"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Equipment.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Equipment.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.Delete},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.UpdateReturnDate},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
		})

		addRoutes(apiGroup.Group("/reports"), []route{
			{Method: http.MethodGet, Path: "/reservations-per-customer", Handler: h.Report.ReservationsPerCustomer},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
