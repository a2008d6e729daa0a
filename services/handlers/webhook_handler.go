package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/shared"
)

type WebhookHandler struct {
	subscriptionSvc SubscriptionServiceInterface
	clerkSvc        ClerkServiceInterface
	monitoringSvc   MonitoringInterface
}

func NewWebhookHandler(subscriptionSvc SubscriptionServiceInterface, clerkSvc ClerkServiceInterface, monitoringSvc MonitoringInterface) *WebhookHandler {
	return &WebhookHandler{
		subscriptionSvc: subscriptionSvc,
		clerkSvc:        clerkSvc,
		monitoringSvc:   monitoringSvc,
	}
}

// @Summary Stripe webhook
// @Description Receive checkout and invoice events from Stripe
// @Tags webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} shared.Response
// @Router /api/v1/webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get("Stripe-Signature")

	if err := h.subscriptionSvc.HandleWebhook(payload, signature); err != nil {
		h.monitoringSvc.RecordWebhookEvent("stripe", "error")
		return err
	}

	h.monitoringSvc.RecordWebhookEvent("stripe", "ok")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Clerk webhook
// @Description Receive user and organization events from Clerk
// @Tags webhook
// @Accept json
// @Produce json
// @Param svix-id header string true "Svix message ID"
// @Param svix-timestamp header string true "Svix timestamp"
// @Param svix-signature header string true "Svix signature"
// @Success 200 {object} shared.Response
// @Router /api/v1/webhooks/clerk [post]
func (h *WebhookHandler) HandleClerkWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	svixID := c.Get("svix-id")
	svixTimestamp := c.Get("svix-timestamp")
	svixSignature := c.Get("svix-signature")

	if err := h.clerkSvc.HandleWebhook(payload, svixID, svixTimestamp, svixSignature); err != nil {
		h.monitoringSvc.RecordWebhookEvent("clerk", "error")
		return err
	}

	h.monitoringSvc.RecordWebhookEvent("clerk", "ok")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
