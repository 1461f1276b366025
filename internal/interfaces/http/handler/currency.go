package handler

import (
	"github.com/gin-gonic/gin"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
)

// CurrencyHandler handles the currency master screens
type CurrencyHandler struct {
	BaseHandler
	currencies *mastersapp.CurrencyService
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(currencies *mastersapp.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencies: currencies}
}

// List godoc
// @Summary      List currencies
// @Tags         currencies
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} dto.Response{data=[]masters.Currency,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /currencies [get]
func (h *CurrencyHandler) List(c *gin.Context) {
	var req mastersapp.ListCurrenciesRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.currencies.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a currency
// @Tags         currencies
// @Produce      json
// @Param        id path string true "Currency ID"
// @Success      200 {object} dto.Response{data=masters.Currency}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /currencies/{id} [get]
func (h *CurrencyHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	currency, err := h.currencies.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, currency)
}

// Create godoc
// @Summary      Create a currency
// @Description  Codes follow ISO 4217 and are stored uppercase
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        request body mastersapp.CreateCurrencyRequest true "Currency"
// @Success      201 {object} dto.Response{data=masters.Currency}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /currencies [post]
func (h *CurrencyHandler) Create(c *gin.Context) {
	var req mastersapp.CreateCurrencyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.currencies.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a currency
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        id path string true "Currency ID"
// @Param        request body mastersapp.UpdateCurrencyRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=masters.Currency}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /currencies/{id} [put]
func (h *CurrencyHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req mastersapp.UpdateCurrencyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.currencies.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a currency
// @Description  The base currency and any currency on documents cannot be deleted
// @Tags         currencies
// @Param        id path string true "Currency ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /currencies/{id} [delete]
func (h *CurrencyHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.currencies.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
