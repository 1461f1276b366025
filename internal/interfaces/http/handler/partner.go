package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/partner"
)

// PartnerHandler handles the customer/vendor screens. Partners are never
// deleted (documents keep referring to them), so there is no delete route.
type PartnerHandler struct {
	BaseHandler
	partners *partnerapp.Service
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partners *partnerapp.Service) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

// List godoc
// @Summary      List partners
// @Tags         partners
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search by code, name or contact"
// @Param        kind query string false "Filter by kind" Enums(customer, vendor, both)
// @Success      200 {object} dto.Response{data=[]partner.Partner,meta=dto.Meta}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /partners [get]
func (h *PartnerHandler) List(c *gin.Context) {
	var req partnerapp.ListPartnersRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.partners.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a partner
// @Tags         partners
// @Produce      json
// @Param        id path string true "Partner ID"
// @Success      200 {object} dto.Response{data=partner.Partner}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /partners/{id} [get]
func (h *PartnerHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	p, err := h.partners.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Create godoc
// @Summary      Create a partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreatePartnerRequest true "Partner"
// @Success      201 {object} dto.Response{data=partner.Partner}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /partners [post]
func (h *PartnerHandler) Create(c *gin.Context) {
	var req partnerapp.CreatePartnerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.partners.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id path string true "Partner ID"
// @Param        request body partnerapp.UpdatePartnerRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=partner.Partner}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /partners/{id} [put]
func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req partnerapp.UpdatePartnerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.partners.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}
