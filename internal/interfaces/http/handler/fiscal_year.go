package handler

import (
	"github.com/gin-gonic/gin"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
)

// FiscalYearHandler handles the fiscal year master screens
type FiscalYearHandler struct {
	BaseHandler
	years *mastersapp.FiscalYearService
}

// NewFiscalYearHandler creates a new fiscal year handler
func NewFiscalYearHandler(years *mastersapp.FiscalYearService) *FiscalYearHandler {
	return &FiscalYearHandler{years: years}
}

// List godoc
// @Summary      List fiscal years
// @Tags         fiscal-years
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        closed query bool false "Filter by closed flag"
// @Success      200 {object} dto.Response{data=[]masters.FiscalYear,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /fiscal-years [get]
func (h *FiscalYearHandler) List(c *gin.Context) {
	var req mastersapp.ListFiscalYearsRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.years.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a fiscal year
// @Tags         fiscal-years
// @Produce      json
// @Param        id path string true "Fiscal year ID"
// @Success      200 {object} dto.Response{data=masters.FiscalYear}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /fiscal-years/{id} [get]
func (h *FiscalYearHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	year, err := h.years.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, year)
}

// Create godoc
// @Summary      Create a fiscal year
// @Description  Periods may not overlap an existing year; the core API enforces this
// @Tags         fiscal-years
// @Accept       json
// @Produce      json
// @Param        request body mastersapp.CreateFiscalYearRequest true "Fiscal year"
// @Success      201 {object} dto.Response{data=masters.FiscalYear}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /fiscal-years [post]
func (h *FiscalYearHandler) Create(c *gin.Context) {
	var req mastersapp.CreateFiscalYearRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.years.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a fiscal year
// @Description  Closing a year is a one-way flag flip once all periods are posted
// @Tags         fiscal-years
// @Accept       json
// @Produce      json
// @Param        id path string true "Fiscal year ID"
// @Param        request body mastersapp.UpdateFiscalYearRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=masters.FiscalYear}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /fiscal-years/{id} [put]
func (h *FiscalYearHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req mastersapp.UpdateFiscalYearRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.years.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a fiscal year
// @Description  Only years without postings can be deleted
// @Tags         fiscal-years
// @Param        id path string true "Fiscal year ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /fiscal-years/{id} [delete]
func (h *FiscalYearHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.years.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
