package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	docs "github.com/linguify/linguify_api/docs"
	"github.com/linguify/linguify_api/services/handlers"
	"github.com/linguify/linguify_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc         *AuthService
	contentSvc      *ContentService
	progressSvc     *ProgressService
	subscriptionSvc *SubscriptionService
	clerkSvc        *ClerkService
	mediaSvc        *MediaService
	monitoringSvc   *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.authSvc = ctx.Service(AUTH_SVC).(*AuthService)
	svc.contentSvc = ctx.Service(CONTENT_SVC).(*ContentService)
	svc.progressSvc = ctx.Service(PROGRESS_SVC).(*ProgressService)
	svc.subscriptionSvc = ctx.Service(SUBSCRIPTION_SVC).(*SubscriptionService)
	svc.clerkSvc = ctx.Service(CLERK_SVC).(*ClerkService)
	svc.mediaSvc = ctx.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	docs.SwaggerInfo.BasePath = ""

	svc.app = fiber.New(fiber.Config{
		AppName:      "Linguify API",
		BodyLimit:    32 * 1024 * 1024,
		ErrorHandler: svc.handleError,
	})

	svc.app.Use(recover.New())
	svc.app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	svc.app.Use(MonitoringMiddleware(svc.monitoringSvc))

	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes()

	logrus.WithField("port", svc.port).Info("HTTP server starting")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes() {
	userHandler := handlers.NewUserHandler(svc.progressSvc, svc.monitoringSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)
	adminHandler := handlers.NewAdminHandler(svc.contentSvc, svc.clerkSvc)
	subscriptionHandler := handlers.NewSubscriptionHandler(svc.subscriptionSvc)
	webhookHandler := handlers.NewWebhookHandler(svc.subscriptionSvc, svc.clerkSvc, svc.monitoringSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	v1 := svc.app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	// Webhooks carry their own signatures, no session auth.
	v1.Post("/webhooks/stripe", webhookHandler.HandleStripeWebhook)
	v1.Post("/webhooks/clerk", webhookHandler.HandleClerkWebhook)

	v1.Get("/courses", contentHandler.GetCourses)
	v1.Get("/courses/:courseId", contentHandler.GetCourse)

	authed := v1.Group("", svc.authSvc.RequiredAuth())

	authed.Get("/user/progress", userHandler.GetUserProgress)
	authed.Post("/user/courses", userHandler.SelectCourse)
	authed.Get("/user/units", userHandler.GetUnits)
	authed.Get("/user/course-progress", userHandler.GetCourseProgress)
	authed.Get("/user/lesson-percentage", userHandler.GetLessonPercentage)
	authed.Post("/user/hearts/reduce", userHandler.ReduceHeart)
	authed.Post("/user/hearts/refill", userHandler.RefillHearts)
	authed.Get("/user/is-admin", adminHandler.IsAdmin)
	authed.Get("/user/is-staff", adminHandler.IsStaff)
	authed.Get("/user/permissions/:courseId", adminHandler.HasPermission)

	authed.Get("/lessons/current", userHandler.GetCurrentLesson)
	authed.Get("/lessons/:lessonId", userHandler.GetLesson)

	authed.Post("/challenges/:challengeId/attempt", userHandler.CompleteChallenge)
	authed.Get("/challenges/:challengeId/progress", userHandler.GetChallengeProgress)

	authed.Get("/leaderboard", userHandler.GetLeaderboard)

	authed.Get("/subscription", subscriptionHandler.GetSubscription)
	authed.Post("/subscription/stripe-url", subscriptionHandler.CreateStripeURL)

	admin := authed.Group("/admin", svc.requireStaff())

	admin.Post("/courses", adminHandler.CreateCourse)
	admin.Put("/courses/:courseId", adminHandler.UpdateCourse)
	admin.Delete("/courses/:courseId", adminHandler.DeleteCourse)

	admin.Get("/units", adminHandler.GetUnits)
	admin.Post("/units", adminHandler.CreateUnit)
	admin.Get("/units/:unitId", adminHandler.GetUnit)
	admin.Put("/units/:unitId", adminHandler.UpdateUnit)
	admin.Delete("/units/:unitId", adminHandler.DeleteUnit)

	admin.Get("/lessons", adminHandler.GetLessons)
	admin.Post("/lessons", adminHandler.CreateLesson)
	admin.Get("/lessons/:lessonId", adminHandler.GetLesson)
	admin.Put("/lessons/:lessonId", adminHandler.UpdateLesson)
	admin.Delete("/lessons/:lessonId", adminHandler.DeleteLesson)

	admin.Get("/challenges", adminHandler.GetChallenges)
	admin.Post("/challenges", adminHandler.CreateChallenge)
	admin.Get("/challenges/:challengeId", adminHandler.GetChallenge)
	admin.Put("/challenges/:challengeId", adminHandler.UpdateChallenge)
	admin.Delete("/challenges/:challengeId", adminHandler.DeleteChallenge)

	admin.Get("/challenge-options", adminHandler.GetChallengeOptions)
	admin.Post("/challenge-options", adminHandler.CreateChallengeOption)
	admin.Get("/challenge-options/:optionId", adminHandler.GetChallengeOption)
	admin.Put("/challenge-options/:optionId", adminHandler.UpdateChallengeOption)
	admin.Delete("/challenge-options/:optionId", adminHandler.DeleteChallengeOption)

	admin.Get("/team", adminHandler.GetTeam)
	admin.Post("/staff", adminHandler.CreateStaff)
	admin.Put("/staff/:userId/permissions", adminHandler.UpdateStaffPermissions)

	admin.Post("/invitations", adminHandler.SendInvitation)
	admin.Get("/invitations", adminHandler.GetInvitations)
	admin.Delete("/invitations/:invitationId", adminHandler.RevokeInvitation)

	admin.Post("/media", mediaHandler.UploadMedia)
	admin.Get("/media", mediaHandler.ListMedia)
	admin.Get("/media/:mediaId/url", mediaHandler.GetMediaURL)
	admin.Delete("/media/:mediaId", mediaHandler.DeleteMedia)
}

// requireStaff keeps non-staff users out of the admin surface. Finer grained
// checks (admin role, per-course permissions) happen inside the services.
func (svc *HttpService) requireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals(shared.UserID).(string)
		if !svc.contentSvc.IsStaff(userID) {
			return shared.NewForbiddenError(nil, "Forbidden")
		}
		return c.Next()
	}
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logrus.WithError(appErr.Err).WithField("path", c.Path()).Error(appErr.Message)
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	logrus.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseInternalError(c, err)
}

func (svc *HttpService) ping(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}
