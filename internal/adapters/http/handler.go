package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/tarot-reader/internal/app"
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
	"github.com/randomtoy/tarot-reader/internal/monitor"
)

const (
	maxQuestionLen = 500
	defaultSpread  = domain.SpreadThreeCard
	defaultLimit   = 20
	maxLimit       = 100
)

type Handler struct {
	svc     *app.TarotService
	monitor *monitor.Monitor
}

func NewHandler(svc *app.TarotService, mon *monitor.Monitor) *Handler {
	return &Handler{svc: svc, monitor: mon}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	v1 := e.Group("/v1")
	v1.GET("/spreads", h.ListSpreads)
	v1.GET("/cards", h.ListCards)
	v1.GET("/cards/:id", h.GetCard)
	v1.GET("/classify", h.Classify)
	v1.POST("/interpretations", h.CreateInterpretation)

	v1.POST("/readings", h.CreateReading)
	v1.GET("/readings", h.ListReadings)
	v1.GET("/readings/:id", h.GetReading)
	v1.DELETE("/readings/:id", h.DeleteReading)

	v1.POST("/sessions", h.StartSession)
	v1.GET("/sessions/:id", h.GetSession)
	v1.POST("/sessions/:id/spread", h.SelectSpread)
	v1.POST("/sessions/:id/question", h.AskQuestion)
	v1.POST("/sessions/:id/pick", h.Pick)
	v1.POST("/sessions/:id/reshuffle", h.Reshuffle)
	v1.POST("/sessions/:id/reset", h.ResetSession)

	v1.GET("/debug/errors", h.RecentErrors)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSpreads(c echo.Context) error {
	return c.JSON(http.StatusOK, SpreadListResponse{Spreads: h.svc.Spreads()})
}

func (h *Handler) ListCards(c echo.Context) error {
	cards, err := h.svc.Cards(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, CardListResponse{Cards: cards})
}

func (h *Handler) GetCard(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be an integer"})
	}
	card, err := h.svc.Card(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) Classify(c echo.Context) error {
	q := c.QueryParam("q")
	if len([]rune(q)) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q must be at most 500 characters"})
	}
	cat := h.svc.Classify(q)
	return c.JSON(http.StatusOK, ClassifyResponse{Question: q, Category: cat, Label: interpret.CategoryLabel(cat)})
}

func (h *Handler) CreateInterpretation(c echo.Context) error {
	req, err := bindInterpretation(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	resp, err := h.svc.Interpret(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, toInterpretationResponse(resp, requestID(c)))
}

func (h *Handler) CreateReading(c echo.Context) error {
	req, err := bindInterpretation(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	r, err := h.svc.CreateReading(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListReadings(c echo.Context) error {
	limit := defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxLimit {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer between 1 and 100"})
		}
		limit = parsed
	}

	list, err := h.svc.ListReadings(c.Request().Context(), c.QueryParam("session_id"), limit)
	if err != nil {
		return h.mapError(c, err)
	}
	if list == nil {
		list = []domain.Reading{}
	}
	return c.JSON(http.StatusOK, ReadingListResponse{Readings: list})
}

func (h *Handler) GetReading(c echo.Context) error {
	r, err := h.svc.GetReading(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteReading(c echo.Context) error {
	if err := h.svc.DeleteReading(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RecentErrors(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
		}
		limit = parsed
	}
	return c.JSON(http.StatusOK, ErrorsResponse{Total: h.monitor.Total(), Events: h.monitor.Recent(limit)})
}

func bindInterpretation(c echo.Context) (app.InterpretRequest, error) {
	var body InterpretationRequest
	if err := c.Bind(&body); err != nil {
		return app.InterpretRequest{}, errors.New("invalid request body")
	}
	if len([]rune(body.Question)) > maxQuestionLen {
		return app.InterpretRequest{}, errors.New("question must be at most 500 characters")
	}
	spread := domain.SpreadType(body.Spread)
	if spread == "" {
		spread = defaultSpread
	}
	return app.InterpretRequest{SessionID: body.SessionID, Spread: spread, Question: body.Question}, nil
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func (h *Handler) mapError(c echo.Context, err error) error {
	rid := requestID(c)

	switch {
	case errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrReadingNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSpreadNotFound),
		errors.Is(err, domain.ErrInvalidCount),
		errors.Is(err, domain.ErrInvalidPick),
		errors.Is(err, domain.ErrEmptyQuestion),
		errors.Is(err, domain.ErrQuestionTooLong):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSelectionIncomplete):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamLLM), errors.Is(err, domain.ErrInvalidLLMJSON):
		slog.Error("upstream LLM failure", "request_id", rid, "error", err)
		h.monitor.RecordError("http", rid, err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream LLM failure"})
	default:
		slog.Error("internal error", "request_id", rid, "error", err)
		h.monitor.RecordError("http", rid, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
