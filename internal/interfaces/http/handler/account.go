package handler

import (
	"github.com/gin-gonic/gin"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
)

// AccountHandler handles the chart-of-accounts screens. Accounts are never
// deleted, only deactivated through an update.
type AccountHandler struct {
	BaseHandler
	accounts *mastersapp.AccountService
}

// NewAccountHandler creates a new chart-of-accounts handler
func NewAccountHandler(accounts *mastersapp.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List godoc
// @Summary      List ledger accounts
// @Description  Flat, code-ordered page of the chart of accounts
// @Tags         accounts
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        type query string false "Filter by account type" Enums(asset, liability, equity, revenue, expense)
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} dto.Response{data=[]masters.Account,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	var req mastersapp.ListAccountsRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.accounts.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Tree godoc
// @Summary      Get the chart of accounts as a tree
// @Description  Pulls the whole chart and links parent/child accounts. Orphans surface as extra roots rather than disappearing.
// @Tags         accounts
// @Produce      json
// @Success      200 {object} dto.Response{data=[]masters.AccountNode}
// @Security     SessionCookie
// @Router       /accounts/tree [get]
func (h *AccountHandler) Tree(c *gin.Context) {
	tree, err := h.accounts.Tree(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// Create godoc
// @Summary      Add a ledger account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body mastersapp.CreateAccountRequest true "Account"
// @Success      201 {object} dto.Response{data=masters.Account}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req mastersapp.CreateAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.accounts.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a ledger account
// @Description  Renames, reparents or deactivates an account. Account codes are immutable.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id path string true "Account ID"
// @Param        request body mastersapp.UpdateAccountRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=masters.Account}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req mastersapp.UpdateAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.accounts.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}
