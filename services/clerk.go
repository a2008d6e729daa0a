package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
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

// ClerkService mirrors identity-provider state into the local database. It
// consumes the provider's webhook stream (svix-signed) and drives the staff
// invitation flow through the provider's REST API.
type ClerkService struct {
	context.DefaultService

	postgres *PostgresService
	redis    *RedisService
	email    *EmailService
	client   *resty.Client
	clock    Clock

	webhookSecret []byte
	appURL        string
}

const CLERK_SVC = "clerk_svc"

func (svc ClerkService) Id() string {
	return CLERK_SVC
}

func (svc *ClerkService) Configure(ctx *context.Context) error {
	svc.postgres = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.redis = ctx.Service(REDIS_SVC).(*RedisService)
	svc.email = ctx.Service(EMAIL_SVC).(*EmailService)
	svc.clock = systemClock{}

	secretKey := os.Getenv("CLERK_SECRET_KEY")
	if secretKey == "" {
		return errors.New("CLERK_SECRET_KEY is required")
	}

	// Signing secrets arrive as "whsec_<base64>".
	rawSecret := strings.TrimPrefix(os.Getenv("CLERK_WEBHOOK_SECRET"), "whsec_")
	if rawSecret != "" {
		decoded, err := base64.StdEncoding.DecodeString(rawSecret)
		if err != nil {
			return fmt.Errorf("invalid CLERK_WEBHOOK_SECRET: %w", err)
		}
		svc.webhookSecret = decoded
	}

	svc.appURL = os.Getenv("APP_URL")
	if svc.appURL == "" {
		svc.appURL = "http://localhost:3000"
	}

	svc.client = resty.New().
		SetBaseURL("https://api.clerk.com/v1").
		SetAuthToken(secretKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return svc.DefaultService.Configure(ctx)
}

func (svc *ClerkService) Start() error {
	return nil
}

// VerifyWebhookSignature checks the svix headers against the raw payload.
// The signed content is "<id>.<timestamp>.<payload>" and the signature
// header may carry several space-separated "v1,<base64>" candidates.
func (svc *ClerkService) VerifyWebhookSignature(payload []byte, svixID, svixTimestamp, svixSignature string) error {
	if len(svc.webhookSecret) == 0 {
		return shared.NewInternalError(errors.New("CLERK_WEBHOOK_SECRET not configured"), "Webhook verification unavailable")
	}
	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		return shared.NewUnauthorizedError(errors.New("missing svix headers"), "Missing webhook signature")
	}

	ts, err := strconv.ParseInt(svixTimestamp, 10, 64)
	if err != nil {
		return shared.NewUnauthorizedError(err, "Invalid webhook signature")
	}
	age := svc.clock.Now().Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return shared.NewUnauthorizedError(errors.New("signature timestamp outside tolerance"), "Stale webhook signature")
	}

	mac := hmac.New(sha256.New, svc.webhookSecret)
	fmt.Fprintf(mac, "%s.%s.", svixID, svixTimestamp)
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, candidate := range strings.Fields(svixSignature) {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(expected), []byte(parts[1])) {
			return nil
		}
	}
	return shared.NewUnauthorizedError(errors.New("no matching signature"), "Invalid webhook signature")
}

// HandleWebhook verifies, deduplicates and applies one identity event.
func (svc *ClerkService) HandleWebhook(payload []byte, svixID, svixTimestamp, svixSignature string) error {
	if err := svc.VerifyWebhookSignature(payload, svixID, svixTimestamp, svixSignature); err != nil {
		return err
	}

	if svc.redis != nil {
		fresh, err := svc.redis.MarkEventProcessed(svixID)
		if err != nil {
			log.WithError(err).Warn("Webhook dedupe check failed, processing anyway")
		} else if !fresh {
			log.WithField("svix_id", svixID).Info("Skipping replayed webhook delivery")
			return nil
		}
	}

	var event dto.ClerkEvent
	if err := sonic.Unmarshal(payload, &event); err != nil {
		return shared.NewBadRequestError(err, "Invalid webhook payload")
	}

	log.WithFields(log.Fields{
		"svix_id":    svixID,
		"event_type": event.Type,
	}).Info("Processing identity webhook")

	switch event.Type {
	case "user.created", "user.updated":
		return svc.syncUser(event.Data)
	case "user.deleted":
		return svc.removeUser(event.Data)
	case "organization.created":
		return svc.createOrganization(event.Data)
	case "organization.updated":
		return svc.updateOrganization(event.Data)
	case "organization.deleted":
		return svc.removeOrganization(event.Data)
	default:
		return nil
	}
}

func (svc *ClerkService) syncUser(data []byte) error {
	var user dto.ClerkUserData
	if err := sonic.Unmarshal(data, &user); err != nil {
		return shared.NewBadRequestError(err, "Invalid user payload")
	}
	if user.ID == "" {
		return shared.NewBadRequestError(errors.New("missing user id"), "User ID is required")
	}

	userName := user.Username
	if userName == "" {
		userName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}
	if userName == "" {
		userName = "User"
	}

	err := svc.postgres.UpsertUser(&model.User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserName:  userName,
		AvatarURL: user.ImageURL,
		Email:     user.PrimaryEmail(),
	})
	if err != nil {
		return shared.NewInternalError(err, "Failed to sync user")
	}

	// Signups arriving through an invitation close the loop on the local
	// invitation row.
	if user.PublicMetadata.IsInvited {
		email := user.PublicMetadata.InvitationEmail
		if email == "" {
			email = user.PrimaryEmail()
		}
		if err := svc.postgres.UpdateInvitationStatus(email, shared.InvitationAccepted); err != nil {
			log.WithError(err).WithField("email", email).Warn("Failed to mark invitation accepted")
		}
	}
	return nil
}

func (svc *ClerkService) removeUser(data []byte) error {
	var user dto.ClerkUserData
	if err := sonic.Unmarshal(data, &user); err != nil {
		return shared.NewBadRequestError(err, "Invalid user payload")
	}
	if user.ID == "" {
		return shared.NewBadRequestError(errors.New("missing user id"), "User ID is required")
	}

	if err := svc.postgres.DeleteUser(user.ID); err != nil {
		return shared.NewInternalError(err, "Failed to remove user")
	}
	return nil
}

func (svc *ClerkService) createOrganization(data []byte) error {
	var org dto.ClerkOrganizationData
	if err := sonic.Unmarshal(data, &org); err != nil {
		return shared.NewBadRequestError(err, "Invalid organization payload")
	}
	if org.ID == "" {
		return shared.NewBadRequestError(errors.New("missing organization id"), "Organization ID is required")
	}

	// The workspace holds a single organization row, first delivery wins.
	exists, err := svc.postgres.HasOrganization()
	if err != nil {
		return shared.NewInternalError(err, "Failed to check organization")
	}
	if !exists {
		if err := svc.postgres.CreateOrganization(&model.Organization{
			ID:      org.ID,
			Name:    org.Name,
			OwnerID: org.CreatedBy,
		}); err != nil && !IsConflictError(err) {
			return shared.NewInternalError(err, "Failed to create organization")
		}
	}

	if org.CreatedBy == "" {
		return nil
	}
	// Creator already on staff gets promoted, otherwise joins as staff.
	_, err = svc.postgres.GetStaff(org.CreatedBy)
	switch {
	case err == nil:
		if err := svc.postgres.UpdateStaffRole(org.CreatedBy, shared.RoleAdmin); err != nil {
			return shared.NewInternalError(err, "Failed to update staff role")
		}
	case IsNotFoundError(err):
		if _, err := svc.postgres.CreateStaff(&model.Staff{
			UserID: org.CreatedBy,
			Role:   shared.RoleStaff,
		}); err != nil {
			return shared.NewInternalError(err, "Failed to create staff")
		}
	default:
		return shared.NewInternalError(err, "Failed to load staff")
	}
	return nil
}

func (svc *ClerkService) updateOrganization(data []byte) error {
	var org dto.ClerkOrganizationData
	if err := sonic.Unmarshal(data, &org); err != nil {
		return shared.NewBadRequestError(err, "Invalid organization payload")
	}
	if org.ID == "" {
		return shared.NewBadRequestError(errors.New("missing organization id"), "Organization ID is required")
	}

	if err := svc.postgres.UpsertOrganization(&model.Organization{
		ID:      org.ID,
		Name:    org.Name,
		OwnerID: org.CreatedBy,
	}); err != nil {
		return shared.NewInternalError(err, "Failed to update organization")
	}

	if org.CreatedBy == "" {
		return nil
	}
	if _, err := svc.postgres.GetStaff(org.CreatedBy); err != nil {
		if !IsNotFoundError(err) {
			return shared.NewInternalError(err, "Failed to load staff")
		}
		if _, err := svc.postgres.CreateStaff(&model.Staff{
			UserID: org.CreatedBy,
			Role:   shared.RoleAdmin,
		}); err != nil {
			return shared.NewInternalError(err, "Failed to create staff")
		}
	}
	return nil
}

func (svc *ClerkService) removeOrganization(data []byte) error {
	var org dto.ClerkOrganizationData
	if err := sonic.Unmarshal(data, &org); err != nil {
		return shared.NewBadRequestError(err, "Invalid organization payload")
	}

	if _, err := svc.postgres.GetOrganization(org.ID); err != nil {
		if IsNotFoundError(err) {
			return nil
		}
		return shared.NewInternalError(err, "Failed to load organization")
	}
	if err := svc.postgres.DeleteOrganization(org.ID); err != nil {
		return shared.NewInternalError(err, "Failed to remove organization")
	}
	// Staff roles hang off the workspace, removing it clears the roster.
	if err := svc.postgres.DeleteAllStaff(); err != nil {
		return shared.NewInternalError(err, "Failed to clear staff")
	}
	return nil
}

// ==================== INVITATIONS ====================

// SendInvitation invites an email address through the identity provider and
// records the invitation locally. Re-inviting a pending address is a 409.
func (svc *ClerkService) SendInvitation(email string) (*dto.InvitationResponse, error) {
	existing, err := svc.postgres.GetInvitationByEmail(email)
	if err != nil && !IsNotFoundError(err) {
		return nil, shared.NewInternalError(err, "Failed to check existing invitations")
	}
	if existing != nil && existing.Status == shared.InvitationPending {
		return nil, shared.NewConflictError(errors.New("invitation already pending"), "An invitation for this email is already pending")
	}

	body := map[string]interface{}{
		"email_address": email,
		"public_metadata": map[string]interface{}{
			"is_invited":       true,
			"invitation_email": email,
		},
		"redirect_url": svc.appURL + "/sign-up",
	}

	resp, err := svc.client.R().SetBody(body).Post("/invitations")
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to reach identity provider")
	}
	if resp.IsError() {
		log.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"body":   string(resp.Body()),
		}).Error("Invitation request failed")
		return nil, shared.NewInternalError(fmt.Errorf("clerk status %d", resp.StatusCode()), "Failed to send invitation")
	}

	var remote dto.ClerkInvitationData
	if err := sonic.Unmarshal(resp.Body(), &remote); err != nil {
		return nil, shared.NewInternalError(err, "Failed to parse invitation response")
	}

	invitation, err := svc.postgres.CreateInvitation(&model.Invitation{
		ID:     remote.ID,
		Email:  email,
		Status: shared.InvitationPending,
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to store invitation")
	}

	if err := svc.email.SendInvitationEmail(email, svc.appURL+"/sign-up"); err != nil {
		log.WithError(err).WithField("email", email).Warn("Failed to send invitation email")
	}

	return &dto.InvitationResponse{
		ID:     invitation.ID,
		Email:  invitation.Email,
		Status: invitation.Status,
	}, nil
}

// RevokeInvitation cancels a pending invitation remotely and drops the local
// row. Revoking an accepted invitation is a 400.
func (svc *ClerkService) RevokeInvitation(id string) error {
	invitation, err := svc.postgres.GetInvitation(id)
	if err != nil {
		if IsNotFoundError(err) {
			return shared.NewNotFoundError(err, "Invitation not found")
		}
		return shared.NewInternalError(err, "Failed to load invitation")
	}
	if invitation.Status != shared.InvitationPending {
		return shared.NewBadRequestError(errors.New("invitation not pending"), "Only pending invitations can be revoked")
	}

	resp, err := svc.client.R().Post("/invitations/" + id + "/revoke")
	if err != nil {
		return shared.NewInternalError(err, "Failed to reach identity provider")
	}
	// 404 from the provider means it is already gone remotely, still drop ours.
	if resp.IsError() && resp.StatusCode() != 404 {
		log.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"body":   string(resp.Body()),
		}).Error("Invitation revoke failed")
		return shared.NewInternalError(fmt.Errorf("clerk status %d", resp.StatusCode()), "Failed to revoke invitation")
	}

	if err := svc.postgres.DeleteInvitation(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete invitation")
	}
	return nil
}

func (svc *ClerkService) GetInvitations() ([]dto.InvitationResponse, error) {
	invitations, err := svc.postgres.GetInvitations()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load invitations")
	}

	out := make([]dto.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, dto.InvitationResponse{
			ID:     inv.ID,
			Email:  inv.Email,
			Status: inv.Status,
		})
	}
	return out, nil
}
