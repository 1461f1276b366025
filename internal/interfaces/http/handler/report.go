package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	reportsapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/reports"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
)

// Report export formats
const (
	formatJSON = "json"
	formatXLSX = "xlsx"
)

// ReportHandler handles the financial report screens. Every report answers
// JSON by default and an Excel workbook when format=xlsx.
type ReportHandler struct {
	BaseHandler
	reports *reportsapp.Service
	logger  *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *reportsapp.Service, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// ProfitAndLoss godoc
// @Summary      Profit and loss report
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from query string false "Period start (YYYY-MM-DD)"
// @Param        to query string false "Period end (YYYY-MM-DD)"
// @Param        format query string false "Response format" Enums(json, xlsx)
// @Success      200 {object} dto.Response{data=reports.ProfitLoss}
// @Security     SessionCookie
// @Router       /reports/profit-loss [get]
func (h *ReportHandler) ProfitAndLoss(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}
	var req reportsapp.PeriodRequest
	if !h.bindQuery(c, &req) {
		return
	}

	report, err := h.reports.ProfitAndLoss(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if format == formatXLSX {
		f, err := reportsapp.ProfitAndLossWorkbook(report)
		h.serveWorkbook(c, f, err, exportFileName("profit-and-loss"))
		return
	}
	h.Success(c, report)
}

// BalanceSheet godoc
// @Summary      Balance sheet report
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        as_of query string false "Statement date (YYYY-MM-DD)"
// @Param        format query string false "Response format" Enums(json, xlsx)
// @Success      200 {object} dto.Response{data=reports.BalanceSheet}
// @Security     SessionCookie
// @Router       /reports/balance-sheet [get]
func (h *ReportHandler) BalanceSheet(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}
	var req reportsapp.AsOfRequest
	if !h.bindQuery(c, &req) {
		return
	}

	report, err := h.reports.BalanceSheet(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if format == formatXLSX {
		f, err := reportsapp.BalanceSheetWorkbook(report)
		h.serveWorkbook(c, f, err, exportFileName("balance-sheet"))
		return
	}
	h.Success(c, report)
}

// TrialBalance godoc
// @Summary      Trial balance report
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        as_of query string false "Statement date (YYYY-MM-DD)"
// @Param        format query string false "Response format" Enums(json, xlsx)
// @Success      200 {object} dto.Response{data=reports.TrialBalance}
// @Security     SessionCookie
// @Router       /reports/trial-balance [get]
func (h *ReportHandler) TrialBalance(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}
	var req reportsapp.AsOfRequest
	if !h.bindQuery(c, &req) {
		return
	}

	report, err := h.reports.TrialBalance(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if format == formatXLSX {
		f, err := reportsapp.TrialBalanceWorkbook(report)
		h.serveWorkbook(c, f, err, exportFileName("trial-balance"))
		return
	}
	h.Success(c, report)
}

// PartnerLedger godoc
// @Summary      Partner ledger statement
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        partner_id query string true "Partner ID"
// @Param        from query string false "Period start (YYYY-MM-DD)"
// @Param        to query string false "Period end (YYYY-MM-DD)"
// @Param        format query string false "Response format" Enums(json, xlsx)
// @Success      200 {object} dto.Response{data=reports.PartnerLedger}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /reports/partner-ledger [get]
func (h *ReportHandler) PartnerLedger(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}
	var req reportsapp.PartnerLedgerRequest
	if !h.bindQuery(c, &req) {
		return
	}

	report, err := h.reports.PartnerLedger(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if format == formatXLSX {
		f, err := reportsapp.PartnerLedgerWorkbook(report)
		h.serveWorkbook(c, f, err, exportFileName("partner-ledger"))
		return
	}
	h.Success(c, report)
}

// SalesRegister godoc
// @Summary      Sales register report
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from query string false "Period start (YYYY-MM-DD)"
// @Param        to query string false "Period end (YYYY-MM-DD)"
// @Param        format query string false "Response format" Enums(json, xlsx)
// @Success      200 {object} dto.Response{data=reports.SalesRegister}
// @Security     SessionCookie
// @Router       /reports/sales-register [get]
func (h *ReportHandler) SalesRegister(c *gin.Context) {
	format, ok := h.exportFormat(c)
	if !ok {
		return
	}
	var req reportsapp.PeriodRequest
	if !h.bindQuery(c, &req) {
		return
	}

	report, err := h.reports.SalesRegister(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if format == formatXLSX {
		f, err := reportsapp.SalesRegisterWorkbook(report)
		h.serveWorkbook(c, f, err, exportFileName("sales-register"))
		return
	}
	h.Success(c, report)
}

// exportFormat reads and validates the format query parameter
func (h *ReportHandler) exportFormat(c *gin.Context) (string, bool) {
	format := c.DefaultQuery("format", formatJSON)
	if format != formatJSON && format != formatXLSX {
		h.ErrorWithCode(c, dto.ErrCodeValidation, "format must be json or xlsx")
		return "", false
	}
	return format, true
}

// serveWorkbook streams an xlsx workbook as a download
func (h *ReportHandler) serveWorkbook(c *gin.Context, f *excelize.File, err error, fileName string) {
	if err != nil {
		h.logger.Error("Failed to build report workbook", zap.Error(err))
		h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Failed to build report workbook")
		return
	}
	defer f.Close()

	c.Header("Content-Type", reportsapp.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("Failed to stream report workbook", zap.Error(err))
	}
}

// exportFileName stamps a report download with the current date
func exportFileName(report string) string {
	return fmt.Sprintf("%s-%s.xlsx", report, time.Now().Format("2006-01-02"))
}
