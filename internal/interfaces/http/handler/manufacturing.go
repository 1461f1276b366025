package handler

import (
	"github.com/gin-gonic/gin"

	productionapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/production"
)

// ManufacturingHandler handles manufacturing order and BOM screens
type ManufacturingHandler struct {
	BaseHandler
	production *productionapp.Service
}

// NewManufacturingHandler creates a new manufacturing handler
func NewManufacturingHandler(production *productionapp.Service) *ManufacturingHandler {
	return &ManufacturingHandler{production: production}
}

// ListOrders godoc
// @Summary      List manufacturing orders
// @Tags         manufacturing
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        status query string false "Filter by status" Enums(draft, confirmed, in_progress, done, cancelled)
// @Param        product_id query string false "Filter by product"
// @Success      200 {object} dto.Response{data=[]production.ManufacturingOrder,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /manufacturing/orders [get]
func (h *ManufacturingHandler) ListOrders(c *gin.Context) {
	var req productionapp.ListOrdersRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.production.ListOrders(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// GetOrder godoc
// @Summary      Get a manufacturing order
// @Tags         manufacturing
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=production.ManufacturingOrder}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /manufacturing/orders/{id} [get]
func (h *ManufacturingHandler) GetOrder(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	order, err := h.production.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// CreateOrder godoc
// @Summary      Create a manufacturing order
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        request body productionapp.CreateOrderRequest true "Order"
// @Success      201 {object} dto.Response{data=production.ManufacturingOrder}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /manufacturing/orders [post]
func (h *ManufacturingHandler) CreateOrder(c *gin.Context) {
	var req productionapp.CreateOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.production.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// UpdateOrder godoc
// @Summary      Update a manufacturing order
// @Description  Status transitions (confirm, start, complete, cancel) ride on the status field; the core API enforces the lifecycle
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body productionapp.UpdateOrderRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=production.ManufacturingOrder}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /manufacturing/orders/{id} [put]
func (h *ManufacturingHandler) UpdateOrder(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req productionapp.UpdateOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.production.UpdateOrder(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// DeleteOrder godoc
// @Summary      Delete a manufacturing order
// @Description  Only draft orders can be deleted; the core API refuses the rest
// @Tags         manufacturing
// @Param        id path string true "Order ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /manufacturing/orders/{id} [delete]
func (h *ManufacturingHandler) DeleteOrder(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.production.DeleteOrder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListBOMs godoc
// @Summary      List bills of materials
// @Description  BOMs are maintained in the core system; the dashboard browses them read-only
// @Tags         manufacturing
// @Produce      json
// @Param        page query int false "Page number"
// @Param        product_id query string false "Filter by product"
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} dto.Response{data=[]production.BOM,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /manufacturing/boms [get]
func (h *ManufacturingHandler) ListBOMs(c *gin.Context) {
	var req productionapp.ListBOMsRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.production.ListBOMs(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// GetBOM godoc
// @Summary      Get a bill of materials
// @Tags         manufacturing
// @Produce      json
// @Param        id path string true "BOM ID"
// @Success      200 {object} dto.Response{data=production.BOM}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /manufacturing/boms/{id} [get]
func (h *ManufacturingHandler) GetBOM(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	bom, err := h.production.GetBOM(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bom)
}
