package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/api"
	reqdto "rental-booking/internal/handler/dto/request"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Property    *api.PropertyHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	SiteConfig  *api.SiteConfigHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRole(user.RoleAdmin)}
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup.Group("/property"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Property.List},
			{Method: http.MethodPost, Path: "/check-availability", Handler: h.Property.CheckAvailability},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Property.Get},
			{Method: http.MethodGet, Path: "/:id/unavailable-dates", Handler: h.Property.UnavailableDates},
			{Method: http.MethodPost, Path: "", Handler: h.Property.Create, Mw: requireAdmin},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Property.Update, Mw: requireAdmin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.Delete, Mw: requireAdmin},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodGet, Path: "/all", Handler: h.Reservation.All, Mw: requireAdmin},
			{Method: http.MethodGet, Path: "/me", Handler: h.Reservation.Me, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/guest", Handler: h.Reservation.GuestLookup},
			{Method: http.MethodGet, Path: "/confirmation/:code", Handler: h.Reservation.ByConfirmationCode},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetByID, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Reservation.UpdateStatus, Mw: requireAdmin},
		})

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "/create-session", Handler: h.Payment.CreateSession},
			{Method: http.MethodGet, Path: "/check/:sessionId", Handler: h.Payment.Check},
			{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook},
		})

		addRoutes(apiGroup.Group("/site-config"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.SiteConfig.Get},
			{Method: http.MethodPost, Path: "", Handler: h.SiteConfig.Set, Mw: requireAdmin},
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
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

// chainHandlers runs route-level middleware inline and stops at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
