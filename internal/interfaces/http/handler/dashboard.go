package handler

import (
	"github.com/gin-gonic/gin"

	dashboardapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/dashboard"
)

// DashboardHandler handles the dashboard landing screen
type DashboardHandler struct {
	BaseHandler
	dashboard *dashboardapp.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *dashboardapp.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Document counters, receivable/payable totals and the recent invoice feed, fetched from the core API in parallel.
// @Tags         dashboard
// @Produce      json
// @Param        limit query int false "Recent invoice feed size" default(5) maximum(50)
// @Success      200 {object} dto.Response{data=dashboardapp.SummaryResponse}
// @Security     SessionCookie
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	var req dashboardapp.SummaryRequest
	if !h.bindQuery(c, &req) {
		return
	}

	summary, err := h.dashboard.Summary(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
