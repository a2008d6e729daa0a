package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/shared"
)

type SubscriptionHandler struct {
	subscriptionSvc SubscriptionServiceInterface
}

func NewSubscriptionHandler(subscriptionSvc SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionSvc: subscriptionSvc,
	}
}

// @Summary Get subscription
// @Description Get the caller's subscription status
// @Tags subscription
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.SubscriptionResponse}
// @Router /api/v1/subscription [get]
func (h *SubscriptionHandler) GetSubscription(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	subscription, err := h.subscriptionSvc.GetSubscription(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", subscription)
}

// @Summary Create Stripe URL
// @Description Create a checkout session for new subscribers or a billing portal session for existing customers
// @Tags subscription
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param createRequest body dto.CreateStripeURLRequest true "Billing email"
// @Success 200 {object} shared.Response{data=dto.StripeURLResponse}
// @Router /api/v1/subscription/stripe-url [post]
func (h *SubscriptionHandler) CreateStripeURL(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateStripeURLRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	url, err := h.subscriptionSvc.CreateStripeURL(userID, req.Email)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", url)
}
