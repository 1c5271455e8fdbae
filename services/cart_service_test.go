package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesSameItem(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))
	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))

	view, err := svc.Get(uid)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 2, view.Cart.Items[0].Qty)
	assert.Equal(t, int64(200), view.Cart.Items[0].Total)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, int64(200), view.Subtotal)
}

func TestCartSnapshotsMenuItem(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.garlicNaan.ID}))

	// a later menu price change must not touch the line
	require.NoError(t, f.db.Model(&f.garlicNaan).Update("price", 999).Error)

	view, err := svc.Get(uid)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, "Garlic Naan", view.Cart.Items[0].ItemName)
	assert.Equal(t, int64(50), view.Cart.Items[0].UnitPrice)
	assert.Equal(t, "Spice Palace", view.Cart.Items[0].RestaurantName)
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()

	err := svc.Add(f.customer.ID, &AddToCartIn{MenuItemID: 9999})
	assert.Error(t, err)
}

// Totals stay Σ(price×qty) and Σ(qty) across any add/update/remove sequence.
func TestCartTotalsAcrossSequence(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))
	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.garlicNaan.ID}))
	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.masalaDosa.ID}))

	view, err := svc.Get(uid)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 3)

	var tikkaLine, naanLine uint
	for _, it := range view.Cart.Items {
		switch it.MenuItemID {
		case f.paneerTikka.ID:
			tikkaLine = it.ID
		case f.garlicNaan.ID:
			naanLine = it.ID
		}
	}

	require.NoError(t, svc.UpdateQty(uid, tikkaLine, 4)) // 400
	require.NoError(t, svc.RemoveItem(uid, naanLine))    // -50

	view, err = svc.Get(uid)
	require.NoError(t, err)
	assert.Equal(t, int64(450), view.Subtotal) // 4*100 + 1*50
	assert.Equal(t, 5, view.TotalItems)
}

func TestCartUpdateQtyZeroRemovesLine(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))
	view, err := svc.Get(uid)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 1)

	require.NoError(t, svc.UpdateQty(uid, view.Cart.Items[0].ID, 0))

	view, err = svc.Get(uid)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, int64(0), view.Subtotal)
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))
	require.NoError(t, svc.RemoveItem(uid, 4242))
	require.NoError(t, svc.UpdateQty(uid, 4242, 3))

	view, err := svc.Get(uid)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 1, view.Cart.Items[0].Qty)
}

func TestCartClear(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()
	uid := f.customer.ID

	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))
	require.NoError(t, svc.Add(uid, &AddToCartIn{MenuItemID: f.masalaDosa.ID}))
	require.NoError(t, svc.Clear(uid))

	view, err := svc.Get(uid)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)

	// clearing an absent cart is fine too
	require.NoError(t, svc.Clear(777))
}

func TestCartScopedToUser(t *testing.T) {
	f := newFixture(t)
	svc := f.cartService()

	other := f.customer
	other.ID = 0
	other.Email = "other@example.com"
	require.NoError(t, f.db.Create(&other).Error)

	require.NoError(t, svc.Add(f.customer.ID, &AddToCartIn{MenuItemID: f.paneerTikka.ID}))
	view, err := svc.Get(f.customer.ID)
	require.NoError(t, err)
	lineID := view.Cart.Items[0].ID

	// the other user cannot touch the line
	require.NoError(t, svc.UpdateQty(other.ID, lineID, 9))
	require.NoError(t, svc.RemoveItem(other.ID, lineID))

	view, err = svc.Get(f.customer.ID)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 1, view.Cart.Items[0].Qty)
}
