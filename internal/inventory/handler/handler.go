// Package handler provides the read-only HTTP endpoint for products and reports.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	inverrors "github.com/abgdnv/storekeeper/internal/inventory/errors"
	"github.com/abgdnv/storekeeper/internal/inventory/service"
	"github.com/abgdnv/storekeeper/pkg/web"
	"github.com/go-chi/chi/v5"
)

// Handler serves products and reports over HTTP.
type Handler struct {
	service service.InventoryService
	logger  *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service.
func NewHandler(service service.InventoryService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the report endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.FindAll)
		r.Get("/products/{name}", h.FindByName)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/inventory", h.InventoryReport)
			r.Get("/sales", h.SalesReport)
			r.Get("/purchases", h.PurchasesReport)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindAll lists every product ordered by name.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	list := h.service.FindAll(r.Context())
	h.logger.DebugContext(r.Context(), "Listed products", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// FindByName retrieves a product by its name.
func (h *Handler) FindByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	found, err := h.service.FindByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, inverrors.ErrProductNotFound) {
			h.logger.DebugContext(r.Context(), "Product not found", "name", name)
			web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product %s not found", name))
			return
		}
		h.logger.ErrorContext(r.Context(), "Error retrieving product", "name", name, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product %s", name))
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// InventoryReport writes the inventory report as plain text.
func (h *Handler) InventoryReport(w http.ResponseWriter, r *http.Request) {
	web.RespondText(w, h.logger, http.StatusOK, h.service.InventoryReport(r.Context()))
}

// SalesReport writes the sales report as plain text.
func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	web.RespondText(w, h.logger, http.StatusOK, h.service.SalesReport(r.Context()))
}

// PurchasesReport writes the purchases report as plain text.
func (h *Handler) PurchasesReport(w http.ResponseWriter, r *http.Request) {
	web.RespondText(w, h.logger, http.StatusOK, h.service.PurchasesReport(r.Context()))
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
