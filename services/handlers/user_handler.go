package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/shared"
)

type UserHandler struct {
	progressSvc   ProgressServiceInterface
	monitoringSvc MonitoringInterface
}

func NewUserHandler(progressSvc ProgressServiceInterface, monitoringSvc MonitoringInterface) *UserHandler {
	return &UserHandler{
		progressSvc:   progressSvc,
		monitoringSvc: monitoringSvc,
	}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, shared.NewBadRequestError(err, "Invalid "+name)
	}
	return uint(id), nil
}

// @Summary Get user progress
// @Description Get the caller's hearts, points and active course
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserProgressResponse}
// @Router /api/v1/user/progress [get]
func (h *UserHandler) GetUserProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	progress, err := h.progressSvc.GetUserProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Select active course
// @Description Set the caller's active course, creating progress on first use
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param selectRequest body dto.SelectCourseRequest true "Course to activate"
// @Success 200 {object} shared.Response{data=dto.UserProgressResponse}
// @Router /api/v1/user/courses [post]
func (h *UserHandler) SelectCourse(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SelectCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	progress, err := h.progressSvc.SelectCourse(userID, req.ActiveCourseID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Get units
// @Description Get the active course's units with per-lesson completion state
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.UnitStatus}
// @Router /api/v1/user/units [get]
func (h *UserHandler) GetUnits(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	units, err := h.progressSvc.GetUnits(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", units)
}

// @Summary Get course progress
// @Description Get the first uncompleted lesson of the active course
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.CourseProgressResponse}
// @Router /api/v1/user/course-progress [get]
func (h *UserHandler) GetCourseProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	progress, err := h.progressSvc.GetCourseProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Get lesson percentage
// @Description Get the completion percentage of the caller's current lesson
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.LessonPercentageResponse}
// @Router /api/v1/user/lesson-percentage [get]
func (h *UserHandler) GetLessonPercentage(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	percentage, err := h.progressSvc.GetLessonPercentage(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", percentage)
}

// @Summary Get current lesson
// @Description Get the caller's current lesson with challenge state
// @Tags lesson
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.LessonStatus}
// @Router /api/v1/lessons/current [get]
func (h *UserHandler) GetCurrentLesson(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	lesson, err := h.progressSvc.GetLesson(userID, 0)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Get lesson
// @Description Get a lesson with challenge state for the caller
// @Tags lesson
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} shared.Response{data=dto.LessonStatus}
// @Router /api/v1/lessons/{lessonId} [get]
func (h *UserHandler) GetLesson(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	lessonID, err := parseUintParam(c, "lessonId")
	if err != nil {
		return err
	}

	lesson, err := h.progressSvc.GetLesson(userID, lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Complete challenge
// @Description Record a correct challenge answer, awarding points or a practice heart
// @Tags challenge
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param challengeId path int true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.ReduceHeartResponse}
// @Router /api/v1/challenges/{challengeId}/attempt [post]
func (h *UserHandler) CompleteChallenge(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	challengeID, err := parseUintParam(c, "challengeId")
	if err != nil {
		return err
	}

	result, err := h.progressSvc.RecordChallengeAttempt(userID, challengeID)
	if err != nil {
		return err
	}

	h.monitoringSvc.RecordChallengeAttempt("completed")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Get challenge progress
// @Description Get the caller's attempt record for a challenge
// @Tags challenge
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param challengeId path int true "Challenge ID"
// @Success 200 {object} shared.Response{data=model.ChallengeProgress}
// @Router /api/v1/challenges/{challengeId}/progress [get]
func (h *UserHandler) GetChallengeProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	challengeID, err := parseUintParam(c, "challengeId")
	if err != nil {
		return err
	}

	progress, err := h.progressSvc.GetChallengeProgress(userID, challengeID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Reduce heart
// @Description Spend a heart on a wrong answer, unless subscribed
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ReduceHeartResponse}
// @Router /api/v1/user/hearts/reduce [post]
func (h *UserHandler) ReduceHeart(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	result, err := h.progressSvc.ReduceHeart(userID)
	if err != nil {
		return err
	}

	if result.Blocked == "" {
		h.monitoringSvc.RecordHeartSpent()
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Refill hearts
// @Description Trade points for a full heart refill
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.HeartsResponse}
// @Router /api/v1/user/hearts/refill [post]
func (h *UserHandler) RefillHearts(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	hearts, err := h.progressSvc.RefillHeart(userID)
	if err != nil {
		return err
	}

	h.monitoringSvc.RecordHeartRefill()

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", hearts)
}

// @Summary Get leaderboard
// @Description Get the top ten learners by points
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.LeaderboardEntry}
// @Router /api/v1/leaderboard [get]
func (h *UserHandler) GetLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.progressSvc.GetTopTenUsers()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}
