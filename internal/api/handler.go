package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/toppings/internal/input"
	"github.com/eugenenazirov/toppings/internal/metrics"
	"github.com/eugenenazirov/toppings/internal/order"
	"github.com/eugenenazirov/toppings/internal/storage"
	"github.com/eugenenazirov/toppings/internal/toppings"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires aggregator, storage and metrics dependencies into HTTP handlers.
type Handler struct {
	aggregator toppings.Aggregator
	storage    storage.Storage
	metrics    *metrics.Recorder

	clock        func() time.Time
	defaultLimit int

	mu              sync.RWMutex
	pizzasUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder *metrics.Recorder) HandlerOption {
	return func(h *Handler) {
		h.metrics = recorder
	}
}

// WithDefaultLimit sets how many groups the top endpoint reports when no limit is given.
func WithDefaultLimit(limit int) HandlerOption {
	return func(h *Handler) {
		if limit > 0 {
			h.defaultLimit = limit
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(agg toppings.Aggregator, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		aggregator:   agg,
		storage:      store,
		defaultLimit: toppings.MaxGroups,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.pizzasUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetPizzas(w http.ResponseWriter, _ *http.Request) {
	pizzas, err := h.storage.GetPizzas()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := pizzasResponse{
		Count:     len(pizzas),
		UpdatedAt: h.currentPizzasUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutPizzas(w http.ResponseWriter, r *http.Request) {
	var req pizzasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := h.storage.SetPizzas(req.Pizzas); err != nil {
		if errors.Is(err, storage.ErrInvalidPizzas) {
			writeError(w, http.StatusBadRequest, "Invalid pizzas", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markPizzasUpdated()

	resp := pizzasResponse{
		Count:     len(req.Pizzas),
		UpdatedAt: h.currentPizzasUpdatedAt(),
		Message:   "Pizzas updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request", "limit must be an integer")
			return
		}
		limit = parsed
	}

	pizzas, err := h.storage.GetPizzas()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	h.aggregate(w, pizzas, limit)
}

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req aggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	limit := h.defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	h.aggregate(w, req.Pizzas, limit)
}

func (h *Handler) aggregate(w http.ResponseWriter, pizzas []toppings.Pizza, limit int) {
	start := time.Now()
	groups, err := h.aggregator.Aggregate(pizzas, limit)
	elapsed := time.Since(start)

	if err != nil {
		switch {
		case errors.Is(err, toppings.ErrInvalidInput), errors.Is(err, toppings.ErrInvalidLimit):
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	h.metrics.ObserveAggregation(len(pizzas), len(groups))

	resp := aggregateResponse{
		Pizzas:            len(pizzas),
		Groups:            make([]groupResponse, 0, len(groups)),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, groupResponse{
			Toppings: g.Toppings,
			Count:    g.Count,
			Line:     toppings.FormatGroup(g),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleOrderTotal(w http.ResponseWriter, r *http.Request) {
	var req input.OrderDocument
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	o := req.Order()
	result, err := order.Process(o.Customer, o.Products)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidProduct):
			h.metrics.ObserveRejectedOrder("invalid_product")
			writeError(w, http.StatusUnprocessableEntity, "Invalid product", err.Error())
		case errors.Is(err, order.ErrUnknownPricingMethod):
			h.metrics.ObserveRejectedOrder("unknown_pricing_method")
			writeError(w, http.StatusUnprocessableEntity, "Unknown pricing method", err.Error(),
				"Use one of PerPound or PerItem")
		default:
			writeInternalError(w, err)
		}
		return
	}

	h.metrics.ObserveOrder()

	resp := orderResponse{
		Customer:     result.Customer,
		Lines:        make([]orderLineResponse, 0, len(result.Lines)),
		Total:        result.Total,
		TotalDisplay: order.FormatCurrency(result.Total),
		Summary:      result.Summary,
	}
	for _, line := range result.Lines {
		resp.Lines = append(resp.Lines, orderLineResponse{
			Product: line.Product,
			Price:   line.Price,
			Display: order.FormatCurrency(line.Price),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentPizzasUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pizzasUpdatedAt
}

func (h *Handler) markPizzasUpdated() {
	h.mu.Lock()
	h.pizzasUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type pizzasRequest struct {
	Pizzas []toppings.Pizza `json:"pizzas"`
}

type aggregateRequest struct {
	Pizzas []toppings.Pizza `json:"pizzas"`
	Limit  *int             `json:"limit,omitempty"`
}

type pizzasResponse struct {
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message,omitempty"`
}

type groupResponse struct {
	Toppings []string `json:"toppings"`
	Count    int      `json:"count"`
	Line     string   `json:"line"`
}

type aggregateResponse struct {
	Pizzas            int             `json:"pizzas"`
	Groups            []groupResponse `json:"groups"`
	CalculationTimeMs int64           `json:"calculationTimeMs"`
}

type orderLineResponse struct {
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
	Display string          `json:"display"`
}

type orderResponse struct {
	Customer     string              `json:"customer"`
	Lines        []orderLineResponse `json:"lines"`
	Total        decimal.Decimal     `json:"total"`
	TotalDisplay string              `json:"totalDisplay"`
	Summary      string              `json:"summary"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
