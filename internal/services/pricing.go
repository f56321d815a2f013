package services

import (
	"potato/internal/models"

	"github.com/shopspring/decimal"
)

// TotalPrice sums unit price times quantity over the given cart products.
func TotalPrice(cartProducts []models.CartProduct) decimal.Decimal {
	total := decimal.Zero
	for _, cp := range cartProducts {
		total = total.Add(cp.Product.Price.Mul(decimal.NewFromInt(int64(cp.Quantity))))
	}
	return total
}

// selectCartProducts returns the cart products whose IDs are listed in ids,
// in cart order. ok is false if any ID is not one of the cart's products.
func selectCartProducts(cartProducts []models.CartProduct, ids []string) (selected []models.CartProduct, ok bool) {
	inCart := make(map[string]struct{}, len(cartProducts))
	for _, cp := range cartProducts {
		inCart[cp.ID] = struct{}{}
	}

	requested := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, exists := inCart[id]; !exists {
			return nil, false
		}
		requested[id] = struct{}{}
	}

	selected = make([]models.CartProduct, 0, len(requested))
	for _, cp := range cartProducts {
		if _, want := requested[cp.ID]; want {
			selected = append(selected, cp)
		}
	}
	return selected, true
}
