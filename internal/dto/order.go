package dto

// OrderCreateRequest selects the cart products to turn into an order.
type OrderCreateRequest struct {
	CartProductIDList []string `json:"cartProductIdList" validate:"dive,uuid"`
}
