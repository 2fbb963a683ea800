package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

func (h *Handler) StartSession(c echo.Context) error {
	s, err := h.svc.StartSession(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toSessionResponse(s))
}

func (h *Handler) GetSession(c echo.Context) error {
	s, err := h.svc.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(s))
}

func (h *Handler) SelectSpread(c echo.Context) error {
	var req SpreadRequest
	if err := c.Bind(&req); err != nil || req.Spread == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "spread is required"})
	}
	s, err := h.svc.SelectSpread(c.Request().Context(), c.Param("id"), domain.SpreadType(req.Spread))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(s))
}

func (h *Handler) AskQuestion(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	s, err := h.svc.AskQuestion(c.Request().Context(), c.Param("id"), req.Question)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(s))
}

func (h *Handler) Pick(c echo.Context) error {
	var req PickRequest
	if err := c.Bind(&req); err != nil || req.Index == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "index is required"})
	}

	resp, err := h.svc.Pick(c.Request().Context(), c.Param("id"), *req.Index)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, PickResponse{
		Session: toSessionResponse(resp.Session),
		Card:    resp.Card,
		Reading: resp.Reading,
	})
}

func (h *Handler) Reshuffle(c echo.Context) error {
	s, err := h.svc.Reshuffle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(s))
}

func (h *Handler) ResetSession(c echo.Context) error {
	s, err := h.svc.ResetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(s))
}
