package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankByPriorityOrdersDescending(t *testing.T) {
	orders := []Order{
		{ID: "low", Deadline: deadlineIn(10)},
		{ID: "high", Deadline: deadlineIn(-1), Weight: "1000"},
		{ID: "mid", Deadline: deadlineIn(0)},
	}

	ranked := RankByPriority(orders, fixedNow)
	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Order.ID)
	assert.Equal(t, "mid", ranked[1].Order.ID)
	assert.Equal(t, "low", ranked[2].Order.ID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].PriorityScore, ranked[i].PriorityScore)
	}
}

func TestRankByPriorityStableOnTies(t *testing.T) {
	orders := []Order{
		{ID: "first", Deadline: deadlineIn(0)},
		{ID: "second", Deadline: deadlineIn(0)},
	}

	ranked := RankByPriority(orders, fixedNow)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].PriorityScore, ranked[1].PriorityScore)
	assert.Equal(t, "first", ranked[0].Order.ID)
	assert.Equal(t, "second", ranked[1].Order.ID)
}

func TestRankByPriorityDoesNotMutateInput(t *testing.T) {
	orders := []Order{
		{ID: "a", Deadline: deadlineIn(10)},
		{ID: "b", Deadline: deadlineIn(-1)},
	}

	_ = RankByPriority(orders, fixedNow)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)
}

func TestFilterDuplicatesNormalizesProductType(t *testing.T) {
	candidates := []Order{
		{TaskTypeID: "1", ProductType: "Hay", AddressID: "5", CompanyID: "2"},
		{TaskTypeID: "1", ProductType: "hay ", AddressID: "5", CompanyID: "2"},
	}

	kept := FilterDuplicates(candidates)
	require.Len(t, kept, 1)
	assert.Equal(t, "Hay", kept[0].ProductType)
}

func TestFilterDuplicatesKeepsDistinctIdentities(t *testing.T) {
	candidates := []Order{
		{TaskTypeID: "1", ProductType: "hay", AddressID: "5", CompanyID: "2"},
		{TaskTypeID: "2", ProductType: "hay", AddressID: "5", CompanyID: "2"},
		{TaskTypeID: "1", ProductType: "hay", AddressID: "6", CompanyID: "2"},
		{TaskTypeID: "1", ProductType: "hay", AddressID: "5", CompanyID: "3"},
		{TaskTypeID: "1", ProductType: "straw", AddressID: "5", CompanyID: "2"},
	}

	assert.Len(t, FilterDuplicates(candidates), 5)
}

func TestFilterDuplicatesPreservesOrderAndIsIdempotent(t *testing.T) {
	candidates := []Order{
		{ID: "o1", TaskTypeID: "1", ProductType: "hay", AddressID: "5", CompanyID: "2"},
		{ID: "o2", TaskTypeID: "2", ProductType: "hay", AddressID: "5", CompanyID: "2"},
		{ID: "o3", TaskTypeID: "1", ProductType: "HAY", AddressID: "5", CompanyID: "2"},
	}

	once := FilterDuplicates(candidates)
	require.Len(t, once, 2)
	assert.Equal(t, "o1", once[0].ID)
	assert.Equal(t, "o2", once[1].ID)

	twice := FilterDuplicates(once)
	assert.Equal(t, once, twice)
}

func TestFilterDuplicatesEmptyProductType(t *testing.T) {
	candidates := []Order{
		{TaskTypeID: "1", ProductType: "", AddressID: "5", CompanyID: "2"},
		{TaskTypeID: "1", ProductType: "   ", AddressID: "5", CompanyID: "2"},
	}

	assert.Len(t, FilterDuplicates(candidates), 1)
}
