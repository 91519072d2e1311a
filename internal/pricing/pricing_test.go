package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/model"
)

func variation(price string) model.ProductVariation {
	return model.ProductVariation{
		ID:       "var-1",
		SKU:      "SKU-1",
		Name:     "widget",
		Price:    decimal.RequireFromString(price),
		Currency: "USD",
	}
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name string
		base string
		tier string
		want string
	}{
		{"gold takes ten percent", "100", "GOLD", "90.00"},
		{"silver rounds half up", "19.99", "SILVER", "18.99"},
		{"platinum", "200", "PLATINUM", "170.00"},
		{"bronze pays full price", "42.50", "BRONZE", "42.50"},
		{"unknown tier gets no discount", "42.50", "VIP", "42.50"},
		{"empty tier gets no discount", "10", "", "10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitPrice(decimal.RequireFromString(tt.base), tt.tier)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestQuoteCartSumsDiscountedItems(t *testing.T) {
	items := []*model.CartItem{
		{VariationID: "var-1", Quantity: 2, Variation: variation("100")},
	}

	quote := QuoteCart(items, "GOLD")

	assert.Len(t, quote.Items, 1)
	assert.Equal(t, "90.00", quote.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, int32(2), quote.Items[0].Quantity)
	assert.Equal(t, "180.00", quote.Total.StringFixed(2))
}

func TestQuoteCartTotalMatchesItemSum(t *testing.T) {
	items := []*model.CartItem{
		{VariationID: "a", Quantity: 3, Variation: variation("19.99")},
		{VariationID: "b", Quantity: 1, Variation: variation("5.25")},
		{VariationID: "c", Quantity: 2, Variation: variation("0.99")},
	}

	quote := QuoteCart(items, "SILVER")

	sum := decimal.Zero
	for _, item := range quote.Items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	assert.True(t, quote.Total.Equal(sum.Round(2)),
		"total %s != item sum %s", quote.Total, sum)
}

func TestQuoteCartEmpty(t *testing.T) {
	quote := QuoteCart(nil, "GOLD")

	assert.Empty(t, quote.Items)
	assert.True(t, quote.Total.IsZero())
}
