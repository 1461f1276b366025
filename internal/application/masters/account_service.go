package masters

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// chartPageSize is the page size used when pulling the full chart of
// accounts for the tree screen.
const chartPageSize = 200

// maxChartPages caps the tree fetch loop in case the upstream total is
// inconsistent with the pages it returns.
const maxChartPages = 50

// AccountGateway is the slice of the core API client the chart-of-accounts
// screens use. Accounts are never deleted upstream, only deactivated.
type AccountGateway interface {
	ListAccounts(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.Account], error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*masters.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, req UpdateAccountRequest) (*masters.Account, error)
}

// AccountService handles the chart-of-accounts screens. The core API stores
// the chart flat; the tree the screen renders is linked locally.
type AccountService struct {
	gateway AccountGateway
	logger  *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(gw AccountGateway, logger *zap.Logger) *AccountService {
	return &AccountService{gateway: gw, logger: logger}
}

// List fetches a page of the flat chart of accounts
func (s *AccountService) List(ctx context.Context, req ListAccountsRequest) (*shared.Paginated[masters.Account], error) {
	f := shared.DefaultFilter()
	f.OrderBy = "code"
	f.OrderDir = "asc"
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		f.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		f.OrderDir = req.OrderDir
	}
	f.Search = req.Search
	if req.Type != "" {
		f = f.WithFilter("type", req.Type)
	}
	if req.Active != nil {
		f = f.WithFilter("active", boolString(*req.Active))
	}
	return s.gateway.ListAccounts(ctx, f)
}

// Tree fetches the whole chart of accounts and links it into a forest.
// Every account the core API returns stays visible: orphans and cycle
// participants are promoted to roots instead of being dropped.
func (s *AccountService) Tree(ctx context.Context) ([]*masters.AccountNode, error) {
	f := shared.DefaultFilter()
	f.PageSize = chartPageSize
	f.OrderBy = "code"
	f.OrderDir = "asc"

	accounts := make([]masters.Account, 0, chartPageSize)
	for {
		page, err := s.gateway.ListAccounts(ctx, f)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, page.Items...)
		if len(page.Items) == 0 || int64(len(accounts)) >= page.Total || f.Page >= maxChartPages {
			break
		}
		f.Page++
	}

	return masters.BuildAccountTree(accounts), nil
}

// Create normalizes the request and adds the ledger account upstream
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*masters.Account, error) {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)

	created, err := s.gateway.CreateAccount(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Account created",
		zap.String("account_id", created.ID.String()),
		zap.String("code", created.Code))
	return created, nil
}

// Update updates a ledger account upstream. The one local check is the
// trivial self-parent case; deeper cycles are the core API's to reject.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, req UpdateAccountRequest) (*masters.Account, error) {
	if req.ParentID != nil && *req.ParentID == id {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Account cannot be its own parent")
	}
	updated, err := s.gateway.UpdateAccount(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Account updated", zap.String("account_id", id.String()))
	return updated, nil
}
