package dto

// CreateStripeURLRequest asks for either a checkout session (no existing
// subscription) or a billing-portal session (existing customer).
type CreateStripeURLRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r CreateStripeURLRequest) Validate() error {
	return GetValidator().Struct(r)
}

type StripeURLResponse struct {
	URL string `json:"url"`
}

type SubscriptionResponse struct {
	UserID               string `json:"user_id"`
	StripePriceID        string `json:"stripe_price_id,omitempty"`
	CurrentPeriodEnd     int64  `json:"current_period_end,omitempty"`
	IsActive             bool   `json:"is_active"`
	StripeCustomerID     string `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
}
