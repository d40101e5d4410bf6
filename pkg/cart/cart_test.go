package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

func shirt() laundry.ClothingItem {
	return laundry.ClothingItem{
		ID:       "shirt",
		Name:     laundry.LocalizedText{En: "Shirt", Bn: "শার্ট"},
		Category: laundry.CategoryMen,
	}
}

func addShirt(c *Cart, qty int, services ...laundry.ServiceType) LineItem {
	return c.AddItem(AddItemParams{
		ClothingItem: shirt(),
		Category:     laundry.CategoryMen,
		Services:     services,
		Quantity:     qty,
		UnitPrice:    30,
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("Merges Identical Selections", func(t *testing.T) {
		c := New()

		addShirt(c, 2, laundry.ServiceWashing)
		li := addShirt(c, 1, laundry.ServiceWashing)

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 3, li.Quantity)
		assert.Equal(t, 90, c.ItemsTotal())
		assert.Equal(t, 150, c.GrandTotal()) // 90 + default charge 60
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("Service Set Is Order Independent", func(t *testing.T) {
		c := New()

		addShirt(c, 1, laundry.ServiceWashing, laundry.ServiceIroning)
		addShirt(c, 1, laundry.ServiceIroning, laundry.ServiceWashing)

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 2, c.ItemCount())
	})

	t.Run("Different Service Set Appends", func(t *testing.T) {
		c := New()

		addShirt(c, 1, laundry.ServiceWashing)
		addShirt(c, 1, laundry.ServiceWashing, laundry.ServiceIroning)

		assert.Equal(t, 2, c.Len())
	})

	t.Run("Merge Keeps First Unit Price", func(t *testing.T) {
		c := New()

		c.AddItem(AddItemParams{
			ClothingItem: shirt(),
			Category:     laundry.CategoryMen,
			Services:     []laundry.ServiceType{laundry.ServiceWashing},
			Quantity:     1,
			UnitPrice:    30,
		})
		// Same identity key with a stale price must not overwrite.
		c.AddItem(AddItemParams{
			ClothingItem: shirt(),
			Category:     laundry.CategoryMen,
			Services:     []laundry.ServiceType{laundry.ServiceWashing},
			Quantity:     1,
			UnitPrice:    45,
		})

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 30, snap.Items[0].UnitPrice)
		assert.Equal(t, 60, snap.ItemsTotal)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("Empty Cart Resets Grand Total", func(t *testing.T) {
		c := New()
		li := addShirt(c, 2, laundry.ServiceWashing)

		c.RemoveItem(li.ID)

		assert.Equal(t, 0, c.ItemsTotal())
		assert.Equal(t, 0, c.GrandTotal())
		assert.Equal(t, 0, c.ItemCount())
	})

	t.Run("Unknown ID Is A NoOp", func(t *testing.T) {
		c := New()
		addShirt(c, 2, laundry.ServiceWashing)

		c.RemoveItem("missing")

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 60, c.ItemsTotal())
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New()
	li := addShirt(c, 2, laundry.ServiceWashing)

	t.Run("Updates Totals", func(t *testing.T) {
		c.UpdateQuantity(li.ID, 5)

		assert.Equal(t, 150, c.ItemsTotal())
		assert.Equal(t, 210, c.GrandTotal())
		assert.Equal(t, 5, c.ItemCount())
	})

	t.Run("Below One Is Silently Ignored", func(t *testing.T) {
		c.UpdateQuantity(li.ID, 0)
		c.UpdateQuantity(li.ID, -3)

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 5, snap.Items[0].Quantity)
	})
}

func TestCart_UpdateServices(t *testing.T) {
	c := New()
	li := addShirt(c, 2, laundry.ServiceWashing)

	c.UpdateServices(li.ID, []laundry.ServiceType{laundry.ServiceWashing, laundry.ServiceIroning})

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t,
		[]laundry.ServiceType{laundry.ServiceWashing, laundry.ServiceIroning},
		snap.Items[0].Services)
	// Unit price is deliberately left untouched by a service change.
	assert.Equal(t, 30, snap.Items[0].UnitPrice)
	assert.Equal(t, 60, snap.ItemsTotal)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	addShirt(c, 3, laundry.ServiceWashing)
	c.SetDeliveryCharge(100)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.GrandTotal())

	// Retained charge applies again once the cart refills.
	addShirt(c, 1, laundry.ServiceWashing)
	assert.Equal(t, 130, c.GrandTotal())
}

func TestCart_SetDeliveryCharge(t *testing.T) {
	t.Run("Applied When Non Empty", func(t *testing.T) {
		c := New()
		addShirt(c, 1, laundry.ServiceWashing)

		c.SetDeliveryCharge(80)

		assert.Equal(t, 110, c.GrandTotal())
	})

	t.Run("Not Charged On Empty Cart", func(t *testing.T) {
		c := New()
		c.SetDeliveryCharge(80)

		assert.Equal(t, 0, c.GrandTotal())
	})
}

func TestCart_TotalsInvariant(t *testing.T) {
	c := New()

	li1 := addShirt(c, 2, laundry.ServiceWashing)
	li2 := c.AddItem(AddItemParams{
		ClothingItem: laundry.ClothingItem{ID: "saree", Category: laundry.CategoryWomen},
		Category:     laundry.CategoryWomen,
		Services:     []laundry.ServiceType{laundry.ServiceIroning},
		Quantity:     4,
		UnitPrice:    50,
	})

	check := func() {
		snap := c.Snapshot()
		want := 0
		for _, li := range snap.Items {
			want += li.Quantity * li.UnitPrice
		}
		assert.Equal(t, want, snap.ItemsTotal)
		if len(snap.Items) > 0 {
			assert.Equal(t, want+snap.DeliveryCharge, snap.GrandTotal)
		} else {
			assert.Zero(t, snap.GrandTotal)
		}
	}

	check()
	c.UpdateQuantity(li2.ID, 1)
	check()
	c.RemoveItem(li1.ID)
	check()
	c.RemoveItem(li2.ID)
	check()
}

func TestStore(t *testing.T) {
	s := NewStore(60)

	a := s.Get("usr-1")
	b := s.Get("usr-1")
	assert.Same(t, a, b)

	other := s.Get("usr-2")
	assert.NotSame(t, a, other)

	a.AddItem(AddItemParams{
		ClothingItem: shirt(),
		Category:     laundry.CategoryMen,
		Services:     []laundry.ServiceType{laundry.ServiceWashing},
		Quantity:     1,
		UnitPrice:    30,
	})
	s.Drop("usr-1")
	assert.Equal(t, 0, s.Get("usr-1").Len())
}
