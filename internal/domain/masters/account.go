package masters

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// AccountType classifies a ledger account
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// IsValid reports whether the account type is one the core API accepts
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents one row of the chart of accounts as the core API
// returns it: a flat record with an optional parent pointer.
type Account struct {
	ID          uuid.UUID   `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	ParentID    *uuid.UUID  `json:"parent_id,omitempty"`
	Description string      `json:"description,omitempty"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AccountNode is an account with its children resolved, ready for the
// chart-of-accounts tree screen.
type AccountNode struct {
	Account
	Depth    int            `json:"depth"`
	Children []*AccountNode `json:"children"`
}

// BuildAccountTree links a flat account list into a forest ordered by
// account code. Accounts whose parent is missing from the list, and
// accounts trapped in a parent cycle, are promoted to roots so that every
// account the core API returned stays visible.
func BuildAccountTree(accounts []Account) []*AccountNode {
	nodes := make(map[uuid.UUID]*AccountNode, len(accounts))
	for i := range accounts {
		a := accounts[i]
		nodes[a.ID] = &AccountNode{Account: a, Children: []*AccountNode{}}
	}

	roots := make([]*AccountNode, 0)
	for _, node := range nodes {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok || parent == node {
			// Orphaned subtree or self-reference
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	// Nodes caught in a cycle are reachable from no root; promote one
	// member of each cycle so the rest hang off it.
	reachable := make(map[uuid.UUID]bool, len(nodes))
	for _, root := range roots {
		markReachable(root, reachable)
	}
	if len(reachable) < len(nodes) {
		ids := make([]uuid.UUID, 0, len(nodes))
		for id := range nodes {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return nodes[ids[i]].Code < nodes[ids[j]].Code })
		for _, id := range ids {
			if reachable[id] {
				continue
			}
			node := nodes[id]
			detachChild(nodes[*node.ParentID], node)
			roots = append(roots, node)
			markReachable(node, reachable)
		}
	}

	sortNodes(roots)
	for _, root := range roots {
		finalize(root, 0)
	}
	return roots
}

func markReachable(node *AccountNode, seen map[uuid.UUID]bool) {
	if seen[node.ID] {
		return
	}
	seen[node.ID] = true
	for _, child := range node.Children {
		markReachable(child, seen)
	}
}

func detachChild(parent, child *AccountNode) {
	for i, c := range parent.Children {
		if c == child {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}

func sortNodes(nodes []*AccountNode) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Code < nodes[j].Code })
}

func finalize(node *AccountNode, depth int) {
	node.Depth = depth
	sortNodes(node.Children)
	for _, child := range node.Children {
		finalize(child, depth+1)
	}
}
