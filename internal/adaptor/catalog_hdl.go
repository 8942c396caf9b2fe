package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"

	"cinebook/internal/dto/request"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler covers the admin side of the catalog: theater chains and
// the pricing table. Movie admin lives in MovieHandler.
type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListChains handles GET /api/admin/chains
func (h *CatalogHandler) ListChains(w http.ResponseWriter, r *http.Request) {
	chains, err := h.service.ListChains(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list chains")
		return
	}

	if chains == nil {
		chains = []string{}
	}
	utils.ResponseSuccess(w, "success", chains)
}

// AddChain handles POST /api/admin/chains
func (h *CatalogHandler) AddChain(w http.ResponseWriter, r *http.Request) {
	var req request.ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddChain(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "add chain")
		return
	}

	utils.ResponseCreated(w, "Theater chain added", nil)
}

// DeleteChain handles DELETE /api/admin/chains/{name}
func (h *CatalogHandler) DeleteChain(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		utils.ResponseBadRequest(w, "Chain name is required", nil)
		return
	}

	if err := h.service.DeleteChain(r.Context(), name); err != nil {
		handleServiceError(w, h.log, err, "delete chain")
		return
	}

	utils.ResponseSuccess(w, "Theater chain deleted", nil)
}

// GetPricing handles GET /api/admin/pricing
func (h *CatalogHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	pricing, err := h.service.GetPricing(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get pricing")
		return
	}

	utils.ResponseSuccess(w, "success", pricing)
}

// UpdatePricing handles PUT /api/admin/pricing
func (h *CatalogHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var req request.PricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pricing, err := h.service.UpdatePricing(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update pricing")
		return
	}

	utils.ResponseSuccess(w, "Pricing updated", pricing)
}
