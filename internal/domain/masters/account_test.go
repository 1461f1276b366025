package masters

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAccount(code, name string, accType AccountType, parentID *uuid.UUID) Account {
	return Account{
		ID:       uuid.New(),
		Code:     code,
		Name:     name,
		Type:     accType,
		ParentID: parentID,
		Active:   true,
	}
}

func TestBuildAccountTree_NestsChildrenUnderParents(t *testing.T) {
	assets := makeAccount("1000", "Assets", AccountTypeAsset, nil)
	current := makeAccount("1100", "Current Assets", AccountTypeAsset, &assets.ID)
	cash := makeAccount("1110", "Cash", AccountTypeAsset, &current.ID)
	bank := makeAccount("1120", "Bank", AccountTypeAsset, &current.ID)
	revenue := makeAccount("4000", "Revenue", AccountTypeRevenue, nil)

	tree := BuildAccountTree([]Account{cash, revenue, assets, bank, current})

	require.Len(t, tree, 2)
	assert.Equal(t, "1000", tree[0].Code)
	assert.Equal(t, "4000", tree[1].Code)

	require.Len(t, tree[0].Children, 1)
	currentNode := tree[0].Children[0]
	assert.Equal(t, "1100", currentNode.Code)
	require.Len(t, currentNode.Children, 2)
	assert.Equal(t, "1110", currentNode.Children[0].Code)
	assert.Equal(t, "1120", currentNode.Children[1].Code)
}

func TestBuildAccountTree_DepthAssigned(t *testing.T) {
	root := makeAccount("1000", "Assets", AccountTypeAsset, nil)
	child := makeAccount("1100", "Current", AccountTypeAsset, &root.ID)
	grandchild := makeAccount("1110", "Cash", AccountTypeAsset, &child.ID)

	tree := BuildAccountTree([]Account{root, child, grandchild})

	require.Len(t, tree, 1)
	assert.Equal(t, 0, tree[0].Depth)
	assert.Equal(t, 1, tree[0].Children[0].Depth)
	assert.Equal(t, 2, tree[0].Children[0].Children[0].Depth)
}

func TestBuildAccountTree_OrphanPromotedToRoot(t *testing.T) {
	missingParent := uuid.New()
	orphan := makeAccount("2100", "Payables", AccountTypeLiability, &missingParent)
	root := makeAccount("1000", "Assets", AccountTypeAsset, nil)

	tree := BuildAccountTree([]Account{orphan, root})

	require.Len(t, tree, 2)
	assert.Equal(t, "1000", tree[0].Code)
	assert.Equal(t, "2100", tree[1].Code)
	assert.Equal(t, 0, tree[1].Depth)
}

func TestBuildAccountTree_SelfReferencePromotedToRoot(t *testing.T) {
	acc := makeAccount("3000", "Equity", AccountTypeEquity, nil)
	acc.ParentID = &acc.ID

	tree := BuildAccountTree([]Account{acc})

	require.Len(t, tree, 1)
	assert.Equal(t, "3000", tree[0].Code)
	assert.Empty(t, tree[0].Children)
}

func TestBuildAccountTree_CycleDoesNotLoseAccounts(t *testing.T) {
	a := makeAccount("5000", "Expense A", AccountTypeExpense, nil)
	b := makeAccount("5100", "Expense B", AccountTypeExpense, nil)
	a.ParentID = &b.ID
	b.ParentID = &a.ID

	tree := BuildAccountTree([]Account{a, b})

	total := 0
	var count func(nodes []*AccountNode)
	count = func(nodes []*AccountNode) {
		for _, n := range nodes {
			total++
			count(n.Children)
		}
	}
	count(tree)

	assert.Equal(t, 2, total)
	require.NotEmpty(t, tree)
	assert.Equal(t, "5000", tree[0].Code)
}

func TestBuildAccountTree_EmptyInput(t *testing.T) {
	tree := BuildAccountTree(nil)
	assert.Empty(t, tree)
}

func TestBuildAccountTree_ChildrenSortedByCode(t *testing.T) {
	root := makeAccount("1000", "Assets", AccountTypeAsset, nil)
	c3 := makeAccount("1300", "Inventory", AccountTypeAsset, &root.ID)
	c1 := makeAccount("1100", "Cash", AccountTypeAsset, &root.ID)
	c2 := makeAccount("1200", "Receivables", AccountTypeAsset, &root.ID)

	tree := BuildAccountTree([]Account{root, c3, c1, c2})

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 3)
	assert.Equal(t, "1100", tree[0].Children[0].Code)
	assert.Equal(t, "1200", tree[0].Children[1].Code)
	assert.Equal(t, "1300", tree[0].Children[2].Code)
}

func TestAccountType_IsValid(t *testing.T) {
	assert.True(t, AccountTypeAsset.IsValid())
	assert.True(t, AccountTypeExpense.IsValid())
	assert.False(t, AccountType("bank").IsValid())
}
