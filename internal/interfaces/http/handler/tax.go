package handler

import (
	"github.com/gin-gonic/gin"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
)

// TaxHandler handles the tax rate master screens
type TaxHandler struct {
	BaseHandler
	taxes *mastersapp.TaxService
}

// NewTaxHandler creates a new tax rate handler
func NewTaxHandler(taxes *mastersapp.TaxService) *TaxHandler {
	return &TaxHandler{taxes: taxes}
}

// List godoc
// @Summary      List tax rates
// @Tags         taxes
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        scope query string false "Filter by scope" Enums(sales, purchase, both)
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} dto.Response{data=[]masters.TaxRate,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /taxes [get]
func (h *TaxHandler) List(c *gin.Context) {
	var req mastersapp.ListTaxRatesRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.taxes.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a tax rate
// @Tags         taxes
// @Produce      json
// @Param        id path string true "Tax rate ID"
// @Success      200 {object} dto.Response{data=masters.TaxRate}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /taxes/{id} [get]
func (h *TaxHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	rate, err := h.taxes.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// Create godoc
// @Summary      Create a tax rate
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Param        request body mastersapp.CreateTaxRateRequest true "Tax rate"
// @Success      201 {object} dto.Response{data=masters.TaxRate}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /taxes [post]
func (h *TaxHandler) Create(c *gin.Context) {
	var req mastersapp.CreateTaxRateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.taxes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a tax rate
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Tax rate ID"
// @Param        request body mastersapp.UpdateTaxRateRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=masters.TaxRate}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /taxes/{id} [put]
func (h *TaxHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req mastersapp.UpdateTaxRateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.taxes.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a tax rate
// @Description  Refused upstream once the rate is referenced by documents
// @Tags         taxes
// @Param        id path string true "Tax rate ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /taxes/{id} [delete]
func (h *TaxHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.taxes.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
