package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func koshari() MenuItem {
	return MenuItem{ID: "koshari", Name: "Koshari", NameAr: "كشري", Price: NewPrice(45)}
}

func fattah() MenuItem {
	return MenuItem{ID: "fattah", Name: "Fattah", NameAr: "فتة", Price: NewPrice(80, 120)}
}

func TestCart_AddLocksUnitPriceAtFirstAdd(t *testing.T) {
	cart := NewCart(uuid.New())

	cart.Add(koshari(), 1)

	// Re-adding the same item with a changed catalog price must keep the
	// locked unit price and only bump the quantity.
	changed := koshari()
	changed.Price = NewPrice(99)
	cart.Add(changed, 2)

	line, ok := cart.Line("koshari")
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 45.0, line.UnitPrice)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_AddIsEquivalentToSingleSummedAdd(t *testing.T) {
	twice := NewCart(uuid.New())
	twice.Add(fattah(), 1)
	twice.Add(fattah(), 2)

	once := NewCart(uuid.New())
	once.Add(fattah(), 3)

	assert.Equal(t, once.TotalItems(), twice.TotalItems())
	assert.Equal(t, once.TotalPrice(), twice.TotalPrice())
}

func TestCart_AddRangePriceUsesMinimum(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(fattah(), 2)

	line, ok := cart.Line("fattah")
	require.True(t, ok)
	assert.Equal(t, 80.0, line.UnitPrice)
	assert.Equal(t, 160.0, line.LineTotal())
}

func TestCart_AddUnpricedItemChargesZero(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(MenuItem{ID: "special", Name: "Chef's Special"}, 1)

	line, ok := cart.Line("special")
	require.True(t, ok)
	assert.Equal(t, 0.0, line.UnitPrice)
	assert.Equal(t, 0.0, cart.TotalPrice())
	assert.Equal(t, 1, cart.TotalItems())
}

func TestCart_AddIgnoresNonPositiveQuantity(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(koshari(), 0)
	cart.Add(koshari(), -2)

	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantityZeroEqualsRemove(t *testing.T) {
	viaSet := NewCart(uuid.New())
	viaSet.Add(koshari(), 2)
	viaSet.Add(fattah(), 1)
	viaSet.SetQuantity("koshari", 0)

	viaRemove := NewCart(uuid.New())
	viaRemove.Add(koshari(), 2)
	viaRemove.Add(fattah(), 1)
	viaRemove.Remove("koshari")

	assert.Equal(t, viaRemove.Lines, viaSet.Lines)
}

func TestCart_SetQuantityIsAbsoluteNotIncremental(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(koshari(), 2)

	require.True(t, cart.SetQuantity("koshari", 5))

	line, _ := cart.Line("koshari")
	assert.Equal(t, 5, line.Quantity)
}

func TestCart_SetQuantityMissingLine(t *testing.T) {
	cart := NewCart(uuid.New())

	assert.False(t, cart.SetQuantity("ghost", 3))
	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveMissingLineIsNoop(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(koshari(), 1)

	assert.False(t, cart.Remove("ghost"))
	assert.Len(t, cart.Lines, 1)
}

func TestCart_RemovePreservesOrderOfRemainingLines(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(koshari(), 1)
	cart.Add(fattah(), 1)
	cart.Add(MenuItem{ID: "molokhia", Name: "Molokhia", Price: NewPrice(55)}, 1)

	cart.Remove("fattah")

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "koshari", cart.Lines[0].ItemID)
	assert.Equal(t, "molokhia", cart.Lines[1].ItemID)
}

func TestCart_ClearResetsLinesAndNotesTogether(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(koshari(), 2)
	cart.Notes = "extra crispy onions"

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Notes)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCart_TotalsHoldAcrossOperationSequences(t *testing.T) {
	cart := NewCart(uuid.New())

	checkInvariant := func() {
		t.Helper()
		sum := 0.0
		for _, line := range cart.Lines {
			require.Positive(t, line.Quantity)
			sum += float64(line.Quantity) * line.UnitPrice
		}
		assert.Equal(t, sum, cart.TotalPrice())
	}

	cart.Add(koshari(), 1)
	checkInvariant()
	cart.Add(fattah(), 2)
	checkInvariant()
	cart.SetQuantity("koshari", 4)
	checkInvariant()
	cart.SetQuantity("fattah", -1)
	checkInvariant()
	cart.Remove("koshari")
	checkInvariant()
	cart.Clear()
	checkInvariant()
}

func TestCart_ScenarioKoshariAndFattah(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(koshari(), 1)
	cart.Add(fattah(), 2)

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 205.0, cart.TotalPrice())
}

func TestCartLine_DisplayNameFallsBackToPrimary(t *testing.T) {
	withAr := CartLine{Name: "Koshari", NameAr: "كشري"}
	withoutAr := CartLine{Name: "Koshari"}

	assert.Equal(t, "كشري", withAr.DisplayName(LanguageArabic))
	assert.Equal(t, "Koshari", withAr.DisplayName(LanguageEnglish))
	assert.Equal(t, "Koshari", withoutAr.DisplayName(LanguageArabic))
}
