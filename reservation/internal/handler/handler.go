package handler

import (
	"net/http"

	md "github.com/Astemirdum/restaurant-reservation/pkg/middleware"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	_ "github.com/Astemirdum/restaurant-reservation/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	reservationSvc ReservationService
	blacklistSvc   BlacklistService
	allowedOrigin  string
	log            *zap.Logger
}

type Option func(*Handler)

// WithAllowedOrigin sets the single origin allowed by CORS.
func WithAllowedOrigin(origin string) Option {
	return func(h *Handler) { h.allowedOrigin = origin }
}

func New(reservationSvc ReservationService, blacklistSvc BlacklistService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		reservationSvc: reservationSvc,
		blacklistSvc:   blacklistSvc,
		log:            log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(md.CORS(h.allowedOrigin))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/", h.Root)
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log.Named("echo"))),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	rsv := api.Group("/reservations")
	rsv.GET("/fetch/all", h.ListReservations)
	rsv.GET("/fetch", h.ListFilteredReservations)
	rsv.GET("/fetch/:id", h.GetReservation)
	rsv.POST("/create", h.CreateReservation)
	rsv.POST("/request", h.RequestReservation)
	rsv.PUT("/:id/:field", h.PatchReservationField)
	rsv.DELETE("/:id", h.DeleteReservation)

	bl := api.Group("/blacklist")
	bl.GET("/fetch/all", h.ListBlacklist)
	bl.GET("/fetch", h.ListFilteredBlacklist)
	bl.GET("/fetch/:id", h.GetBlacklistEntry)
	bl.POST("/create", h.CreateBlacklistEntry)
	bl.PUT("/:id/:field", h.PatchBlacklistField)
	bl.DELETE("/:id", h.DeleteBlacklistEntry)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"content": "The server is running!"})
}

type messageResponse struct {
	Message string `json:"message"`
}

var deletedResponse = messageResponse{Message: "deleted"}

// bindError keeps the binder's own HTTP error instead of nesting it.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// httpError maps service errors onto HTTP status codes.
func (h *Handler) httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrBlacklisted):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicate), errors.Is(err, errs.ErrLocked):
		code = http.StatusConflict
	default:
		h.log.Error("internal", zap.Error(err))
	}
	return echo.NewHTTPError(code, err.Error())
}
