package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
)

// VoucherHandler handles receipt, payment and journal voucher screens
type VoucherHandler struct {
	BaseHandler
	billing *billingapp.Service
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(billing *billingapp.Service) *VoucherHandler {
	return &VoucherHandler{billing: billing}
}

// List godoc
// @Summary      List vouchers
// @Tags         vouchers
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        kind query string false "Filter by kind" Enums(receipt, payment, journal)
// @Param        status query string false "Filter by status" Enums(draft, posted, cancelled)
// @Param        partner_id query string false "Filter by partner"
// @Success      200 {object} dto.Response{data=[]billing.Voucher,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	var req billingapp.ListVouchersRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.billing.ListVouchers(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a voucher
// @Tags         vouchers
// @Produce      json
// @Param        id path string true "Voucher ID"
// @Success      200 {object} dto.Response{data=billing.Voucher}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /vouchers/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	voucher, err := h.billing.GetVoucher(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, voucher)
}

// Create godoc
// @Summary      Create a voucher
// @Description  Journal vouchers must balance; the core API rejects unbalanced lines
// @Tags         vouchers
// @Accept       json
// @Produce      json
// @Param        request body billingapp.CreateVoucherRequest true "Voucher"
// @Success      201 {object} dto.Response{data=billing.Voucher}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req billingapp.CreateVoucherRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.billing.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a voucher
// @Description  Only drafts are editable; posting rides on the status field
// @Tags         vouchers
// @Accept       json
// @Produce      json
// @Param        id path string true "Voucher ID"
// @Param        request body billingapp.UpdateVoucherRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=billing.Voucher}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /vouchers/{id} [put]
func (h *VoucherHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req billingapp.UpdateVoucherRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.billing.UpdateVoucher(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a voucher
// @Description  Only drafts can be deleted; posted vouchers are cancelled instead
// @Tags         vouchers
// @Param        id path string true "Voucher ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /vouchers/{id} [delete]
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.billing.DeleteVoucher(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Print godoc
// @Summary      Print a voucher
// @Description  Renders the voucher as a PDF. With document storage enabled the response carries a download link; otherwise the PDF streams inline.
// @Tags         vouchers
// @Produce      application/pdf
// @Produce      json
// @Param        id path string true "Voucher ID"
// @Success      200 {object} dto.Response{data=billingapp.StoredDocument}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      501 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /vouchers/{id}/print [post]
func (h *VoucherHandler) Print(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.billing.PrintVoucher(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	servePrintResult(&h.BaseHandler, c, result)
}
