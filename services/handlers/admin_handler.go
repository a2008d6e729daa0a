package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/shared"
)

type AdminHandler struct {
	contentSvc ContentServiceInterface
	clerkSvc   ClerkServiceInterface
}

func NewAdminHandler(contentSvc ContentServiceInterface, clerkSvc ClerkServiceInterface) *AdminHandler {
	return &AdminHandler{
		contentSvc: contentSvc,
		clerkSvc:   clerkSvc,
	}
}

// @Summary Create course (Staff)
// @Description Create a new course
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateCourseRequest true "Course"
// @Success 201 {object} shared.Response{data=model.Course}
// @Router /api/v1/admin/courses [post]
func (h *AdminHandler) CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	course, err := h.contentSvc.CreateCourse(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", course)
}

// @Summary Update course (Staff)
// @Description Update a course's title or image
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param courseId path int true "Course ID"
// @Param updateRequest body dto.UpdateCourseRequest true "Course fields"
// @Success 200 {object} shared.Response{data=model.Course}
// @Router /api/v1/admin/courses/{courseId} [put]
func (h *AdminHandler) UpdateCourse(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	course, err := h.contentSvc.UpdateCourse(userID, courseID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", course)
}

// @Summary Delete course (Admin)
// @Description Delete a course and its content
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param courseId path int true "Course ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/courses/{courseId} [delete]
func (h *AdminHandler) DeleteCourse(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return err
	}

	if err := h.contentSvc.DeleteCourse(userID, courseID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary List units (Staff)
// @Description List all units with course context
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.UnitListItem}
// @Router /api/v1/admin/units [get]
func (h *AdminHandler) GetUnits(c *fiber.Ctx) error {
	units, err := h.contentSvc.GetUnitList()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", units)
}

// @Summary Get unit (Staff)
// @Description Get a unit by ID
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param unitId path int true "Unit ID"
// @Success 200 {object} shared.Response{data=model.Unit}
// @Router /api/v1/admin/units/{unitId} [get]
func (h *AdminHandler) GetUnit(c *fiber.Ctx) error {
	unitID, err := parseUintParam(c, "unitId")
	if err != nil {
		return err
	}

	unit, err := h.contentSvc.GetUnit(unitID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", unit)
}

// @Summary Create unit (Staff)
// @Description Create a unit inside a course
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateUnitRequest true "Unit"
// @Success 201 {object} shared.Response{data=model.Unit}
// @Router /api/v1/admin/units [post]
func (h *AdminHandler) CreateUnit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	unit, err := h.contentSvc.CreateUnit(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", unit)
}

// @Summary Update unit (Staff)
// @Description Update a unit's fields
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param unitId path int true "Unit ID"
// @Param updateRequest body dto.UpdateUnitRequest true "Unit fields"
// @Success 200 {object} shared.Response{data=model.Unit}
// @Router /api/v1/admin/units/{unitId} [put]
func (h *AdminHandler) UpdateUnit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	unitID, err := parseUintParam(c, "unitId")
	if err != nil {
		return err
	}

	var req dto.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	unit, err := h.contentSvc.UpdateUnit(userID, unitID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", unit)
}

// @Summary Delete unit (Staff)
// @Description Delete a unit
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param unitId path int true "Unit ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/units/{unitId} [delete]
func (h *AdminHandler) DeleteUnit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	unitID, err := parseUintParam(c, "unitId")
	if err != nil {
		return err
	}

	if err := h.contentSvc.DeleteUnit(userID, unitID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary List lessons (Staff)
// @Description List all lessons with unit and course context
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.LessonListItem}
// @Router /api/v1/admin/lessons [get]
func (h *AdminHandler) GetLessons(c *fiber.Ctx) error {
	lessons, err := h.contentSvc.GetLessonList()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lessons)
}

// @Summary Get lesson (Staff)
// @Description Get a lesson by ID
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} shared.Response{data=model.Lesson}
// @Router /api/v1/admin/lessons/{lessonId} [get]
func (h *AdminHandler) GetLesson(c *fiber.Ctx) error {
	lessonID, err := parseUintParam(c, "lessonId")
	if err != nil {
		return err
	}

	lesson, err := h.contentSvc.GetLesson(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Create lesson (Staff)
// @Description Create a lesson inside a unit
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateLessonRequest true "Lesson"
// @Success 201 {object} shared.Response{data=model.Lesson}
// @Router /api/v1/admin/lessons [post]
func (h *AdminHandler) CreateLesson(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	lesson, err := h.contentSvc.CreateLesson(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", lesson)
}

// @Summary Update lesson (Staff)
// @Description Update a lesson's fields
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param lessonId path int true "Lesson ID"
// @Param updateRequest body dto.UpdateLessonRequest true "Lesson fields"
// @Success 200 {object} shared.Response{data=model.Lesson}
// @Router /api/v1/admin/lessons/{lessonId} [put]
func (h *AdminHandler) UpdateLesson(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	lessonID, err := parseUintParam(c, "lessonId")
	if err != nil {
		return err
	}

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	lesson, err := h.contentSvc.UpdateLesson(userID, lessonID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Delete lesson (Staff)
// @Description Delete a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/lessons/{lessonId} [delete]
func (h *AdminHandler) DeleteLesson(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	lessonID, err := parseUintParam(c, "lessonId")
	if err != nil {
		return err
	}

	if err := h.contentSvc.DeleteLesson(userID, lessonID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary List challenges (Staff)
// @Description List all challenges with lesson and course context
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.ChallengeListItem}
// @Router /api/v1/admin/challenges [get]
func (h *AdminHandler) GetChallenges(c *fiber.Ctx) error {
	challenges, err := h.contentSvc.GetChallengeList()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", challenges)
}

// @Summary Get challenge (Staff)
// @Description Get a challenge by ID
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param challengeId path int true "Challenge ID"
// @Success 200 {object} shared.Response{data=model.Challenge}
// @Router /api/v1/admin/challenges/{challengeId} [get]
func (h *AdminHandler) GetChallenge(c *fiber.Ctx) error {
	challengeID, err := parseUintParam(c, "challengeId")
	if err != nil {
		return err
	}

	challenge, err := h.contentSvc.GetChallenge(challengeID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", challenge)
}

// @Summary Create challenge (Staff)
// @Description Create a challenge inside a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateChallengeRequest true "Challenge"
// @Success 201 {object} shared.Response{data=model.Challenge}
// @Router /api/v1/admin/challenges [post]
func (h *AdminHandler) CreateChallenge(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	challenge, err := h.contentSvc.CreateChallenge(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", challenge)
}

// @Summary Update challenge (Staff)
// @Description Update a challenge's fields
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param challengeId path int true "Challenge ID"
// @Param updateRequest body dto.UpdateChallengeRequest true "Challenge fields"
// @Success 200 {object} shared.Response{data=model.Challenge}
// @Router /api/v1/admin/challenges/{challengeId} [put]
func (h *AdminHandler) UpdateChallenge(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	challengeID, err := parseUintParam(c, "challengeId")
	if err != nil {
		return err
	}

	var req dto.UpdateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	challenge, err := h.contentSvc.UpdateChallenge(userID, challengeID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", challenge)
}

// @Summary Delete challenge (Staff)
// @Description Delete a challenge
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param challengeId path int true "Challenge ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/challenges/{challengeId} [delete]
func (h *AdminHandler) DeleteChallenge(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	challengeID, err := parseUintParam(c, "challengeId")
	if err != nil {
		return err
	}

	if err := h.contentSvc.DeleteChallenge(userID, challengeID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary List challenge options (Staff)
// @Description List all challenge options with challenge context
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.ChallengeOptionListItem}
// @Router /api/v1/admin/challenge-options [get]
func (h *AdminHandler) GetChallengeOptions(c *fiber.Ctx) error {
	options, err := h.contentSvc.GetChallengeOptionList()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", options)
}

// @Summary Get challenge option (Staff)
// @Description Get a challenge option by ID
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param optionId path int true "Challenge Option ID"
// @Success 200 {object} shared.Response{data=model.ChallengeOption}
// @Router /api/v1/admin/challenge-options/{optionId} [get]
func (h *AdminHandler) GetChallengeOption(c *fiber.Ctx) error {
	optionID, err := parseUintParam(c, "optionId")
	if err != nil {
		return err
	}

	option, err := h.contentSvc.GetChallengeOption(optionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", option)
}

// @Summary Create challenge option (Staff)
// @Description Create an answer option for a challenge
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateChallengeOptionRequest true "Challenge option"
// @Success 201 {object} shared.Response{data=model.ChallengeOption}
// @Router /api/v1/admin/challenge-options [post]
func (h *AdminHandler) CreateChallengeOption(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateChallengeOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	option, err := h.contentSvc.CreateChallengeOption(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", option)
}

// @Summary Update challenge option (Staff)
// @Description Update a challenge option's fields
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param optionId path int true "Challenge Option ID"
// @Param updateRequest body dto.UpdateChallengeOptionRequest true "Challenge option fields"
// @Success 200 {object} shared.Response{data=model.ChallengeOption}
// @Router /api/v1/admin/challenge-options/{optionId} [put]
func (h *AdminHandler) UpdateChallengeOption(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	optionID, err := parseUintParam(c, "optionId")
	if err != nil {
		return err
	}

	var req dto.UpdateChallengeOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	option, err := h.contentSvc.UpdateChallengeOption(userID, optionID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", option)
}

// @Summary Delete challenge option (Staff)
// @Description Delete a challenge option
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param optionId path int true "Challenge Option ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/challenge-options/{optionId} [delete]
func (h *AdminHandler) DeleteChallengeOption(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	optionID, err := parseUintParam(c, "optionId")
	if err != nil {
		return err
	}

	if err := h.contentSvc.DeleteChallengeOption(userID, optionID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Check admin role
// @Description Report whether the caller holds the admin role
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=bool}
// @Router /api/v1/user/is-admin [get]
func (h *AdminHandler) IsAdmin(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.IsAdmin(userID))
}

// @Summary Check staff role
// @Description Report whether the caller holds any staff role
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=bool}
// @Router /api/v1/user/is-staff [get]
func (h *AdminHandler) IsStaff(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.IsStaff(userID))
}

// @Summary Check course permission
// @Description Report whether the caller may edit the given course
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param courseId path int true "Course ID"
// @Success 200 {object} shared.Response{data=bool}
// @Router /api/v1/user/permissions/{courseId} [get]
func (h *AdminHandler) HasPermission(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.HasPermission(userID, courseID))
}

// @Summary Get team (Staff)
// @Description List staff members with their roles and course grants
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]model.Staff}
// @Router /api/v1/admin/team [get]
func (h *AdminHandler) GetTeam(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	team, err := h.contentSvc.GetTeam(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", team)
}

// @Summary Create staff member (Admin)
// @Description Grant a user the staff or admin role
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateStaffRequest true "Staff member"
// @Success 201 {object} shared.Response{data=model.Staff}
// @Router /api/v1/admin/staff [post]
func (h *AdminHandler) CreateStaff(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	staff, err := h.contentSvc.CreateStaff(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", staff)
}

// @Summary Update staff permissions (Admin)
// @Description Replace the set of courses a staff member may edit
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param userId path string true "Staff user ID"
// @Param updateRequest body dto.UpdateStaffPermissionsRequest true "Course IDs"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/staff/{userId}/permissions [put]
func (h *AdminHandler) UpdateStaffPermissions(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	staffUserID := c.Params("userId")

	var req dto.UpdateStaffPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := h.contentSvc.UpdateStaffPermissions(userID, staffUserID, req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Send invitation (Admin)
// @Description Invite a new user by email through Clerk
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateInvitationRequest true "Invitation"
// @Success 201 {object} shared.Response{data=dto.InvitationResponse}
// @Router /api/v1/admin/invitations [post]
func (h *AdminHandler) SendInvitation(c *fiber.Ctx) error {
	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	invitation, err := h.clerkSvc.SendInvitation(req.Email)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", invitation)
}

// @Summary Revoke invitation (Admin)
// @Description Revoke a pending invitation
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/invitations/{invitationId} [delete]
func (h *AdminHandler) RevokeInvitation(c *fiber.Ctx) error {
	if err := h.clerkSvc.RevokeInvitation(c.Params("invitationId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary List invitations (Admin)
// @Description List sent invitations and their status
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=[]dto.InvitationResponse}
// @Router /api/v1/admin/invitations [get]
func (h *AdminHandler) GetInvitations(c *fiber.Ctx) error {
	invitations, err := h.clerkSvc.GetInvitations()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", invitations)
}
