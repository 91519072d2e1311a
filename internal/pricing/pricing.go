package pricing

import (
	"github.com/shopspring/decimal"

	"storefront-backend/internal/model"
)

// tierDiscounts maps a buyer's discount tier to the fraction taken off every
// item. Unknown tiers get no discount.
var tierDiscounts = map[string]decimal.Decimal{
	"BRONZE":   decimal.Zero,
	"SILVER":   decimal.NewFromFloat(0.05),
	"GOLD":     decimal.NewFromFloat(0.10),
	"PLATINUM": decimal.NewFromFloat(0.15),
}

var one = decimal.NewFromInt(1)

// TierDiscount returns the discount fraction for a tier.
func TierDiscount(tier string) decimal.Decimal {
	if d, ok := tierDiscounts[tier]; ok {
		return d
	}
	return decimal.Zero
}

// UnitPrice applies the tier discount to a base price, rounded to 2 places.
func UnitPrice(base decimal.Decimal, tier string) decimal.Decimal {
	return base.Mul(one.Sub(TierDiscount(tier))).Round(2)
}

// Quote is the authoritative server-side price for a cart. It is recomputed
// from current variation prices at fulfillment time; amounts reported by the
// payment provider are never used for the persisted order.
type Quote struct {
	Items []model.OrderItem
	Total decimal.Decimal
}

// QuoteCart prices every cart item at the buyer's tier and sums the total.
func QuoteCart(items []*model.CartItem, tier string) Quote {
	quote := Quote{Total: decimal.Zero}
	for _, item := range items {
		unit := UnitPrice(item.Variation.Price, tier)
		quote.Items = append(quote.Items, model.OrderItem{
			VariationID: item.VariationID,
			SKU:         item.Variation.SKU,
			Name:        item.Variation.Name,
			Quantity:    item.Quantity,
			UnitPrice:   unit,
			Currency:    item.Variation.Currency,
		})
		quote.Total = quote.Total.Add(unit.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	quote.Total = quote.Total.Round(2)
	return quote
}
