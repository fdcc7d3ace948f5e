package api

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"SignalDesk/internal/domain/models"
	domrepo "SignalDesk/internal/domain/repository"
	"SignalDesk/internal/service/auth"
	"SignalDesk/internal/usecase"
	xhttp "SignalDesk/pkg/http"
	applogger "SignalDesk/pkg/logger"
	"SignalDesk/pkg/util"
)

// SignalsEchoHandler exposes the signal pipeline over HTTP.
type SignalsEchoHandler struct {
	logger       *applogger.Logger
	runner       *usecase.SignalRunner
	auth         *auth.Service
	history      domrepo.HistoryStore
	historyLimit int
	now          func() time.Time
}

func NewSignalsEchoHandler(
	logger *applogger.Logger,
	runner *usecase.SignalRunner,
	authSvc *auth.Service,
	history domrepo.HistoryStore,
	historyLimit int,
) *SignalsEchoHandler {
	if historyLimit <= 0 {
		historyLimit = 30
	}
	return &SignalsEchoHandler{
		logger:       logger,
		runner:       runner,
		auth:         authSvc,
		history:      history,
		historyLimit: historyLimit,
		now:          time.Now,
	}
}

func (h *SignalsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.POST("/auth/login", h.Login)
	g.GET("/exchanges", h.Exchanges)
	g.POST("/signals/fetch", h.Fetch)
	g.GET("/signals/history/:venue", h.History)
	g.POST("/signals/export", h.Export)
}

func (h *SignalsEchoHandler) Health(c echo.Context) error {
	if err := h.history.Health(c.Request().Context()); err != nil {
		h.logger.Error("health check failed", applogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("storage unavailable"))
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *SignalsEchoHandler) Login(c echo.Context) error {
	req := &models.LoginRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	token, err := h.auth.Authorize(req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrNotApproved) {
			return xhttp.AppErrorResponse(c, xhttp.UnauthorizedError("email not authorized"))
		}
		h.logger.Error("login error", applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, &models.LoginResponse{Token: token, Email: req.Email})
}

func (h *SignalsEchoHandler) Exchanges(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.ExchangeCatalog)
}

func (h *SignalsEchoHandler) Fetch(c echo.Context) error {
	req := &models.FetchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	venue, ok := models.ParseVenue(req.Venue)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("unknown venue %q", req.Venue))
	}
	from, to, err := util.ResolveWindow(req.FromDate, req.ToDate, req.DaysAgo, h.now())
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}

	report, err := h.runner.Run(c.Request().Context(), venue, from, to)
	if err != nil {
		h.logger.Error("pipeline run error",
			applogger.String("venue", string(venue)),
			applogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *SignalsEchoHandler) History(c echo.Context) error {
	venue, ok := models.ParseVenue(c.Param("venue"))
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("unknown venue %q", c.Param("venue")))
	}
	limit := xhttp.ParseIntDefault(c.QueryParam("limit"), h.historyLimit)

	entries, err := h.history.Recent(c.Request().Context(), venue, limit)
	if err != nil {
		h.logger.Error("history query error",
			applogger.String("venue", string(venue)),
			applogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, &models.HistoryResponse{History: entries})
}

func (h *SignalsEchoHandler) Export(c echo.Context) error {
	req := &models.ExportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	resp, err := usecase.ExportCSV(req.Signals, h.now())
	if err != nil {
		h.logger.Error("csv export error", applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, resp)
}
