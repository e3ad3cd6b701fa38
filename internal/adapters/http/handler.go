package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moonpath/tarotd/internal/app"
	"github.com/moonpath/tarotd/internal/domain"
	"github.com/moonpath/tarotd/internal/ports"
)

type Handler struct {
	svc  *app.ReadingService
	repo ports.CardRepository
}

func NewHandler(svc *app.ReadingService, repo ports.CardRepository) *Handler {
	return &Handler{svc: svc, repo: repo}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/draw", h.Draw)
	api.POST("/interpret", h.Interpret)
	api.GET("/spreads", h.Spreads)
	api.GET("/health", h.Health)
}

func (h *Handler) Draw(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Spread == "" {
		req.Spread = "three_card"
	}

	spread, drawn, err := h.svc.Draw(c.Request().Context(), req.Spread)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, DrawResponse{
		Cards:  toCardDTOs(drawn),
		Spread: spread.ID,
	})
}

func (h *Handler) Interpret(c echo.Context) error {
	var req InterpretRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Spread == "" {
		req.Spread = "three_card"
	}

	depth, err := domain.ParseDepth(req.Depth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	cards, err := toClientCards(req.Cards)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()
	reading, err := h.svc.PrepareReading(ctx, app.InterpretRequest{
		Question: req.Question,
		SpreadID: req.Spread,
		Cards:    cards,
		Depth:    depth,
	})
	if err != nil {
		return mapError(c, err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	// Raw fragment stream, no SSE framing; each fragment is flushed as
	// soon as it is decoded.
	emit := func(fragment string) error {
		if _, err := io.WriteString(resp, fragment); err != nil {
			return err
		}
		resp.Flush()
		return nil
	}

	return h.svc.StreamInterpretation(ctx, reading, emit)
}

func (h *Handler) Spreads(c echo.Context) error {
	spreads := h.svc.Spreads()
	out := make([]SpreadDTO, len(spreads))
	for i, s := range spreads {
		out[i] = toSpreadDTO(s)
	}
	return c.JSON(http.StatusOK, SpreadsResponse{Spreads: out})
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.repo.Ping(c.Request().Context()); err != nil {
		slog.Error("health check failed", "request_id", c.Get("request_id"), "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: fmt.Sprintf("database connection failed: %v", err),
		})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrUnknownSpread):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid spread"})
	case errors.Is(err, domain.ErrNoBoundCards), errors.Is(err, domain.ErrCardCountMismatch):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cards for the spread"})
	case errors.Is(err, domain.ErrInvalidOrientation), errors.Is(err, domain.ErrInvalidDepth):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
