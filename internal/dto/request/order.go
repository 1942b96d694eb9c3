package request

type CreateOrderRequest struct {
	OfferDetailID string `json:"offer_detail_id" validate:"required,uuid4"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed cancelled"`
}
