package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
)

// signatureTolerance bounds how stale a signed webhook timestamp may be.
const signatureTolerance = 5 * time.Minute

// SubscriptionService talks to the Stripe REST API for checkout and billing
// portal sessions and consumes Stripe's webhook stream to keep the local
// subscription table current.
type SubscriptionService struct {
	context.DefaultService

	postgres *PostgresService
	client   *resty.Client
	clock    Clock

	webhookSecret string
	priceID       string
	appURL        string
}

const SUBSCRIPTION_SVC = "subscription_svc"

func (svc SubscriptionService) Id() string {
	return SUBSCRIPTION_SVC
}

func (svc *SubscriptionService) Configure(ctx *context.Context) error {
	svc.postgres = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.clock = systemClock{}

	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return errors.New("STRIPE_SECRET_KEY is required")
	}
	svc.webhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	svc.priceID = os.Getenv("STRIPE_PRICE_ID")
	svc.appURL = os.Getenv("APP_URL")
	if svc.appURL == "" {
		svc.appURL = "http://localhost:3000"
	}

	svc.client = resty.New().
		SetBaseURL("https://api.stripe.com/v1").
		SetBasicAuth(secretKey, "").
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetTimeout(15 * time.Second)

	return svc.DefaultService.Configure(ctx)
}

func (svc *SubscriptionService) Start() error {
	return nil
}

// GetSubscription reports the stored subscription with its liveness flag.
// Learners who never subscribed get an inactive zero response, not a 404.
func (svc *SubscriptionService) GetSubscription(userID string) (*dto.SubscriptionResponse, error) {
	sub, err := svc.postgres.GetSubscription(userID)
	if err != nil {
		if IsNotFoundError(err) {
			return &dto.SubscriptionResponse{UserID: userID, IsActive: false}, nil
		}
		return nil, shared.NewInternalError(err, "Failed to load subscription")
	}

	return &dto.SubscriptionResponse{
		UserID:               sub.UserID,
		StripePriceID:        sub.StripePriceID,
		CurrentPeriodEnd:     sub.CurrentPeriodEnd.Unix(),
		IsActive:             sub.IsActive(svc.clock.Now()),
		StripeCustomerID:     sub.StripeCustomerID,
		StripeSubscriptionID: sub.StripeSubscriptionID,
	}, nil
}

// CreateStripeURL returns a billing-portal session for existing customers
// and a checkout session for everyone else.
func (svc *SubscriptionService) CreateStripeURL(userID, email string) (*dto.StripeURLResponse, error) {
	sub, err := svc.postgres.GetSubscription(userID)
	if err != nil && !IsNotFoundError(err) {
		return nil, shared.NewInternalError(err, "Failed to load subscription")
	}

	if sub != nil && sub.StripeCustomerID != "" {
		return svc.createBillingPortalSession(sub.StripeCustomerID)
	}
	return svc.createCheckoutSession(userID, email)
}

func (svc *SubscriptionService) createBillingPortalSession(customerID string) (*dto.StripeURLResponse, error) {
	resp, err := svc.client.R().
		SetFormData(map[string]string{
			"customer":   customerID,
			"return_url": svc.appURL,
		}).
		Post("/billing_portal/sessions")
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to reach Stripe")
	}
	if resp.IsError() {
		log.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"body":   string(resp.Body()),
		}).Error("Stripe billing portal session failed")
		return nil, shared.NewInternalError(fmt.Errorf("stripe status %d", resp.StatusCode()), "Failed to create billing portal session")
	}

	var session dto.StripeBillingPortalSession
	if err := sonic.Unmarshal(resp.Body(), &session); err != nil {
		return nil, shared.NewInternalError(err, "Failed to parse Stripe response")
	}
	return &dto.StripeURLResponse{URL: session.URL}, nil
}

func (svc *SubscriptionService) createCheckoutSession(userID, email string) (*dto.StripeURLResponse, error) {
	if svc.priceID == "" {
		return nil, shared.NewInternalError(errors.New("STRIPE_PRICE_ID not configured"), "Billing is not configured")
	}

	resp, err := svc.client.R().
		SetFormData(map[string]string{
			"mode":                                "subscription",
			"payment_method_types[0]":             "card",
			"customer_email":                      email,
			"line_items[0][price]":                svc.priceID,
			"line_items[0][quantity]":             "1",
			"metadata[userId]":                    userID,
			"subscription_data[metadata][userId]": userID,
			"success_url":                         svc.appURL + "/shop",
			"cancel_url":                          svc.appURL + "/shop",
		}).
		Post("/checkout/sessions")
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to reach Stripe")
	}
	if resp.IsError() {
		log.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"body":   string(resp.Body()),
		}).Error("Stripe checkout session failed")
		return nil, shared.NewInternalError(fmt.Errorf("stripe status %d", resp.StatusCode()), "Failed to create checkout session")
	}

	var session dto.StripeCheckoutSession
	if err := sonic.Unmarshal(resp.Body(), &session); err != nil {
		return nil, shared.NewInternalError(err, "Failed to parse Stripe response")
	}
	return &dto.StripeURLResponse{URL: session.URL}, nil
}

func (svc *SubscriptionService) fetchSubscription(subscriptionID string) (*dto.StripeSubscription, error) {
	resp, err := svc.client.R().Get("/subscriptions/" + subscriptionID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to reach Stripe")
	}
	if resp.IsError() {
		return nil, shared.NewInternalError(fmt.Errorf("stripe status %d", resp.StatusCode()), "Failed to fetch subscription")
	}

	var sub dto.StripeSubscription
	if err := sonic.Unmarshal(resp.Body(), &sub); err != nil {
		return nil, shared.NewInternalError(err, "Failed to parse Stripe response")
	}
	return &sub, nil
}

// VerifyWebhookSignature checks Stripe's "t=...,v1=..." signature header
// against the raw payload.
func (svc *SubscriptionService) VerifyWebhookSignature(payload []byte, header string) error {
	if svc.webhookSecret == "" {
		return shared.NewInternalError(errors.New("STRIPE_WEBHOOK_SECRET not configured"), "Webhook verification unavailable")
	}
	if header == "" {
		return shared.NewUnauthorizedError(errors.New("missing signature header"), "Missing Stripe signature")
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return shared.NewUnauthorizedError(errors.New("malformed signature header"), "Invalid Stripe signature")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return shared.NewUnauthorizedError(err, "Invalid Stripe signature")
	}
	age := svc.clock.Now().Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return shared.NewUnauthorizedError(errors.New("signature timestamp outside tolerance"), "Stale Stripe signature")
	}

	mac := hmac.New(sha256.New, []byte(svc.webhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}
	return shared.NewUnauthorizedError(errors.New("no matching signature"), "Invalid Stripe signature")
}

// HandleWebhook verifies and applies one Stripe event.
func (svc *SubscriptionService) HandleWebhook(payload []byte, sigHeader string) error {
	if err := svc.VerifyWebhookSignature(payload, sigHeader); err != nil {
		return err
	}

	var event dto.StripeEvent
	if err := sonic.Unmarshal(payload, &event); err != nil {
		return shared.NewBadRequestError(err, "Invalid webhook payload")
	}

	log.WithFields(log.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	}).Info("Processing Stripe webhook")

	switch event.Type {
	case "checkout.session.completed":
		return svc.handleCheckoutCompleted(event)
	case "invoice.payment_succeeded":
		return svc.handleInvoicePaid(event)
	default:
		// Unhandled event types are acknowledged so Stripe stops retrying.
		return nil
	}
}

func (svc *SubscriptionService) handleCheckoutCompleted(event dto.StripeEvent) error {
	var session dto.StripeCheckoutSession
	if err := sonic.Unmarshal(event.Data.Object, &session); err != nil {
		return shared.NewBadRequestError(err, "Invalid checkout session payload")
	}

	userID := session.Metadata["userId"]
	if userID == "" {
		return shared.NewBadRequestError(errors.New("missing userId metadata"), "User ID is required")
	}

	sub, err := svc.fetchSubscription(session.Subscription)
	if err != nil {
		return err
	}
	if len(sub.Items.Data) == 0 {
		return shared.NewBadRequestError(errors.New("subscription has no items"), "Invalid subscription")
	}

	err = svc.postgres.CreateSubscription(&model.UserSubscription{
		UserID:               userID,
		StripeCustomerID:     sub.Customer,
		StripeSubscriptionID: sub.ID,
		StripePriceID:        sub.Items.Data[0].Price.ID,
		CurrentPeriodEnd:     time.Unix(sub.CurrentPeriodEnd, 0),
	})
	if err != nil {
		if IsConflictError(err) {
			// Replayed delivery; the row already exists.
			return nil
		}
		return shared.NewInternalError(err, "Failed to store subscription")
	}
	return nil
}

func (svc *SubscriptionService) handleInvoicePaid(event dto.StripeEvent) error {
	var invoice dto.StripeInvoice
	if err := sonic.Unmarshal(event.Data.Object, &invoice); err != nil {
		return shared.NewBadRequestError(err, "Invalid invoice payload")
	}
	if invoice.Subscription == "" {
		return nil
	}

	sub, err := svc.fetchSubscription(invoice.Subscription)
	if err != nil {
		return err
	}
	if len(sub.Items.Data) == 0 {
		return shared.NewBadRequestError(errors.New("subscription has no items"), "Invalid subscription")
	}

	err = svc.postgres.UpdateSubscriptionPeriod(sub.ID, sub.Items.Data[0].Price.ID, time.Unix(sub.CurrentPeriodEnd, 0))
	if err != nil {
		return shared.NewInternalError(err, "Failed to update subscription period")
	}
	return nil
}
