package handler

import (
	"github.com/gin-gonic/gin"

	pricingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/pricing"
)

// PricingHandler handles the price rule screens
type PricingHandler struct {
	BaseHandler
	pricing *pricingapp.Service
}

// NewPricingHandler creates a new price rule handler
func NewPricingHandler(pricing *pricingapp.Service) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// List godoc
// @Summary      List price rules
// @Tags         pricing
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        scope query string false "Filter by scope" Enums(all, product, category, partner)
// @Param        kind query string false "Filter by kind" Enums(percent_discount, fixed_price, tiered)
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} dto.Response{data=[]pricing.PriceRule,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /pricing/rules [get]
func (h *PricingHandler) List(c *gin.Context) {
	var req pricingapp.ListPriceRulesRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.pricing.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a price rule
// @Tags         pricing
// @Produce      json
// @Param        id path string true "Price rule ID"
// @Success      200 {object} dto.Response{data=pricing.PriceRule}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /pricing/rules/{id} [get]
func (h *PricingHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	rule, err := h.pricing.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rule)
}

// Create godoc
// @Summary      Create a price rule
// @Description  Percent rules need percent, fixed rules need fixed_price, tiered rules need at least one tier
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.CreatePriceRuleRequest true "Price rule"
// @Success      201 {object} dto.Response{data=pricing.PriceRule}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /pricing/rules [post]
func (h *PricingHandler) Create(c *gin.Context) {
	var req pricingapp.CreatePriceRuleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.pricing.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a price rule
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        id path string true "Price rule ID"
// @Param        request body pricingapp.UpdatePriceRuleRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=pricing.PriceRule}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /pricing/rules/{id} [put]
func (h *PricingHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req pricingapp.UpdatePriceRuleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.pricing.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a price rule
// @Tags         pricing
// @Param        id path string true "Price rule ID"
// @Success      204 "deleted"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /pricing/rules/{id} [delete]
func (h *PricingHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.pricing.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Simulate godoc
// @Summary      Simulate price rule application
// @Description  Runs the what-if form: fetches active rules and applies them locally to the given product, partner and quantity. Nothing is saved.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.SimulateRequest true "Simulation input"
// @Success      200 {object} dto.Response{data=pricing.SimulationResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /pricing/simulate [post]
func (h *PricingHandler) Simulate(c *gin.Context) {
	var req pricingapp.SimulateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.pricing.Simulate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
