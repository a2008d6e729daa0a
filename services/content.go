package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
)

// ContentService owns the authoring surface: course, unit, lesson, challenge
// and option CRUD, guarded by the staff permission table.
type ContentService struct {
	context.DefaultService

	postgres *PostgresService
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	svc.postgres = ctx.Service(POSTGRES_SVC).(*PostgresService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	return nil
}

// ==================== PERMISSIONS ====================

// IsStaff reports whether the user has any staff row at all.
func (svc *ContentService) IsStaff(userID string) bool {
	_, err := svc.postgres.GetStaff(userID)
	return err == nil
}

// IsAdmin reports whether the user holds the admin role.
func (svc *ContentService) IsAdmin(userID string) bool {
	staff, err := svc.postgres.GetStaff(userID)
	return err == nil && staff.Role == shared.RoleAdmin
}

// checkIfPermitted allows admins everywhere and staff on courses they hold a
// grant for.
func (svc *ContentService) checkIfPermitted(userID string, courseID uint) error {
	staff, err := svc.postgres.GetStaff(userID)
	if err != nil {
		if IsNotFoundError(err) {
			return shared.NewForbiddenError(err, "Staff access required")
		}
		return shared.NewInternalError(err, "Failed to check permissions")
	}

	if staff.Role == shared.RoleAdmin {
		return nil
	}
	for _, perm := range staff.Permissions {
		if perm.CourseID == courseID {
			return nil
		}
	}

	log.WithFields(log.Fields{
		"user_id":   userID,
		"course_id": courseID,
	}).Warn("Staff member denied course access")
	return shared.NewForbiddenError(errors.New("no permission for course"), "You do not have permission for this course")
}

// HasPermission reports whether the user may edit the given course.
func (svc *ContentService) HasPermission(userID string, courseID uint) bool {
	return svc.checkIfPermitted(userID, courseID) == nil
}

func (svc *ContentService) requireAdmin(userID string) error {
	if !svc.IsAdmin(userID) {
		return shared.NewForbiddenError(errors.New("admin role required"), "Admin access required")
	}
	return nil
}

// ==================== STAFF ====================

func (svc *ContentService) CreateStaff(actorID string, req dto.CreateStaffRequest) (*model.Staff, error) {
	if err := svc.requireAdmin(actorID); err != nil {
		return nil, err
	}

	if _, err := svc.postgres.GetUser(req.UserID); err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load user")
	}

	staff, err := svc.postgres.CreateStaff(&model.Staff{
		UserID: req.UserID,
		Role:   req.Role,
	})
	if err != nil {
		if IsConflictError(err) {
			return nil, shared.NewConflictError(err, "User is already staff")
		}
		return nil, shared.NewInternalError(err, "Failed to create staff")
	}

	if len(req.Permissions) > 0 {
		if err := svc.postgres.ReplaceStaffPermissions(staff.ID, req.Permissions); err != nil {
			return nil, shared.NewInternalError(err, "Failed to set staff permissions")
		}
	}
	return staff, nil
}

// GetTeam lists every staff member with their user record and course grants.
func (svc *ContentService) GetTeam(actorID string) ([]model.Staff, error) {
	if !svc.IsStaff(actorID) {
		return nil, shared.NewForbiddenError(errors.New("staff role required"), "Staff access required")
	}

	team, err := svc.postgres.GetStaffList()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load team")
	}
	return team, nil
}

func (svc *ContentService) UpdateStaffPermissions(actorID, staffUserID string, req dto.UpdateStaffPermissionsRequest) error {
	if err := svc.requireAdmin(actorID); err != nil {
		return err
	}

	staff, err := svc.postgres.GetStaff(staffUserID)
	if err != nil {
		if IsNotFoundError(err) {
			return shared.NewNotFoundError(err, "Staff member not found")
		}
		return shared.NewInternalError(err, "Failed to load staff")
	}

	if err := svc.postgres.ReplaceStaffPermissions(staff.ID, req.Permissions); err != nil {
		return shared.NewInternalError(err, "Failed to update staff permissions")
	}
	return nil
}

// ==================== COURSES ====================

func (svc *ContentService) GetCourses() ([]model.Course, error) {
	courses, err := svc.postgres.GetCourses()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load courses")
	}
	return courses, nil
}

func (svc *ContentService) GetCourse(id uint) (*model.Course, error) {
	course, err := svc.postgres.GetCourseWithStructure(id)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Course not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load course")
	}
	return course, nil
}

func (svc *ContentService) CreateCourse(actorID string, req dto.CreateCourseRequest) (*model.Course, error) {
	if err := svc.requireAdmin(actorID); err != nil {
		return nil, err
	}

	course, err := svc.postgres.CreateCourse(&model.Course{
		Title:    req.Title,
		ImageSrc: req.ImageSrc,
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create course")
	}
	return course, nil
}

func (svc *ContentService) UpdateCourse(actorID string, id uint, req dto.UpdateCourseRequest) (*model.Course, error) {
	if err := svc.checkIfPermitted(actorID, id); err != nil {
		return nil, err
	}

	course, err := svc.postgres.GetCourse(id)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Course not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load course")
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.ImageSrc != "" {
		course.ImageSrc = req.ImageSrc
	}
	if err := svc.postgres.UpdateCourse(course); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update course")
	}
	return course, nil
}

func (svc *ContentService) DeleteCourse(actorID string, id uint) error {
	if err := svc.requireAdmin(actorID); err != nil {
		return err
	}

	if _, err := svc.postgres.GetCourse(id); err != nil {
		if IsNotFoundError(err) {
			return shared.NewNotFoundError(err, "Course not found")
		}
		return shared.NewInternalError(err, "Failed to load course")
	}
	if err := svc.postgres.DeleteCourse(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete course")
	}
	return nil
}

// ==================== UNITS ====================

func (svc *ContentService) GetUnitList() ([]dto.UnitListItem, error) {
	units, err := svc.postgres.GetUnits()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load units")
	}

	items := make([]dto.UnitListItem, 0, len(units))
	for _, unit := range units {
		item := dto.UnitListItem{
			ID:          unit.ID,
			CourseID:    unit.CourseID,
			Title:       unit.Title,
			Description: unit.Description,
			Order:       unit.Order,
			Lessons:     len(unit.Lessons),
		}
		if unit.Course != nil {
			item.CourseTitle = unit.Course.Title
		}
		items = append(items, item)
	}
	return items, nil
}

func (svc *ContentService) GetUnit(id uint) (*model.Unit, error) {
	unit, err := svc.postgres.GetUnit(id)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Unit not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load unit")
	}
	return unit, nil
}

func (svc *ContentService) CreateUnit(actorID string, req dto.CreateUnitRequest) (*model.Unit, error) {
	if err := svc.checkIfPermitted(actorID, req.CourseID); err != nil {
		return nil, err
	}
	if _, err := svc.postgres.GetCourse(req.CourseID); err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Course not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load course")
	}

	unit, err := svc.postgres.CreateUnit(&model.Unit{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create unit")
	}
	return unit, nil
}

func (svc *ContentService) UpdateUnit(actorID string, id uint, req dto.UpdateUnitRequest) (*model.Unit, error) {
	unit, err := svc.GetUnit(id)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, unit.CourseID); err != nil {
		return nil, err
	}

	if req.CourseID != nil {
		if err := svc.checkIfPermitted(actorID, *req.CourseID); err != nil {
			return nil, err
		}
		unit.CourseID = *req.CourseID
	}
	if req.Title != nil {
		unit.Title = *req.Title
	}
	if req.Description != nil {
		unit.Description = *req.Description
	}
	if req.Order != nil {
		unit.Order = *req.Order
	}

	unit.Course = nil
	if err := svc.postgres.UpdateUnit(unit); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update unit")
	}
	return unit, nil
}

func (svc *ContentService) DeleteUnit(actorID string, id uint) error {
	unit, err := svc.GetUnit(id)
	if err != nil {
		return err
	}
	if err := svc.checkIfPermitted(actorID, unit.CourseID); err != nil {
		return err
	}
	if err := svc.postgres.DeleteUnit(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete unit")
	}
	return nil
}

// ==================== LESSONS ====================

func (svc *ContentService) GetLessonList() ([]dto.LessonListItem, error) {
	lessons, err := svc.postgres.GetLessons()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load lessons")
	}

	items := make([]dto.LessonListItem, 0, len(lessons))
	for _, lesson := range lessons {
		item := dto.LessonListItem{
			ID:         lesson.ID,
			UnitID:     lesson.UnitID,
			Title:      lesson.Title,
			Order:      lesson.Order,
			Challenges: len(lesson.Challenges),
		}
		if lesson.Unit != nil {
			item.CourseID = lesson.Unit.CourseID
			item.UnitTitle = lesson.Unit.Title
		}
		items = append(items, item)
	}
	return items, nil
}

func (svc *ContentService) GetLesson(id uint) (*model.Lesson, error) {
	lesson, err := svc.postgres.GetLesson(id)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Lesson not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load lesson")
	}
	return lesson, nil
}

// lessonCourseID walks lesson → unit to find the owning course.
func (svc *ContentService) lessonCourseID(lesson *model.Lesson) (uint, error) {
	if lesson.Unit != nil {
		return lesson.Unit.CourseID, nil
	}
	unit, err := svc.GetUnit(lesson.UnitID)
	if err != nil {
		return 0, err
	}
	return unit.CourseID, nil
}

func (svc *ContentService) CreateLesson(actorID string, req dto.CreateLessonRequest) (*model.Lesson, error) {
	unit, err := svc.GetUnit(req.UnitID)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, unit.CourseID); err != nil {
		return nil, err
	}

	lesson, err := svc.postgres.CreateLesson(&model.Lesson{
		UnitID: req.UnitID,
		Title:  req.Title,
		Order:  req.Order,
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create lesson")
	}
	return lesson, nil
}

func (svc *ContentService) UpdateLesson(actorID string, id uint, req dto.UpdateLessonRequest) (*model.Lesson, error) {
	lesson, err := svc.GetLesson(id)
	if err != nil {
		return nil, err
	}
	courseID, err := svc.lessonCourseID(lesson)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return nil, err
	}

	if req.UnitID != nil {
		unit, err := svc.GetUnit(*req.UnitID)
		if err != nil {
			return nil, err
		}
		if err := svc.checkIfPermitted(actorID, unit.CourseID); err != nil {
			return nil, err
		}
		lesson.UnitID = *req.UnitID
	}
	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}

	lesson.Unit = nil
	if err := svc.postgres.UpdateLesson(lesson); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update lesson")
	}
	return lesson, nil
}

func (svc *ContentService) DeleteLesson(actorID string, id uint) error {
	lesson, err := svc.GetLesson(id)
	if err != nil {
		return err
	}
	courseID, err := svc.lessonCourseID(lesson)
	if err != nil {
		return err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return err
	}
	if err := svc.postgres.DeleteLesson(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete lesson")
	}
	return nil
}

// ==================== CHALLENGES ====================

func (svc *ContentService) GetChallengeList() ([]dto.ChallengeListItem, error) {
	challenges, err := svc.postgres.GetChallenges()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load challenges")
	}

	items := make([]dto.ChallengeListItem, 0, len(challenges))
	for _, challenge := range challenges {
		item := dto.ChallengeListItem{
			ID:               challenge.ID,
			LessonID:         challenge.LessonID,
			Type:             challenge.Type,
			Question:         challenge.Question,
			Order:            challenge.Order,
			ChallengeOptions: len(challenge.ChallengeOptions),
		}
		if challenge.Lesson != nil {
			item.LessonTitle = challenge.Lesson.Title
			if courseID, err := svc.lessonCourseID(challenge.Lesson); err == nil {
				item.CourseID = courseID
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (svc *ContentService) GetChallenge(id uint) (*model.Challenge, error) {
	challenge, err := svc.postgres.GetChallenge(id)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Challenge not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load challenge")
	}
	return challenge, nil
}

func (svc *ContentService) challengeCourseID(challenge *model.Challenge) (uint, error) {
	lesson := challenge.Lesson
	if lesson == nil {
		var err error
		lesson, err = svc.GetLesson(challenge.LessonID)
		if err != nil {
			return 0, err
		}
	}
	return svc.lessonCourseID(lesson)
}

func (svc *ContentService) CreateChallenge(actorID string, req dto.CreateChallengeRequest) (*model.Challenge, error) {
	lesson, err := svc.GetLesson(req.LessonID)
	if err != nil {
		return nil, err
	}
	courseID, err := svc.lessonCourseID(lesson)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return nil, err
	}

	challenge, err := svc.postgres.CreateChallenge(&model.Challenge{
		LessonID: req.LessonID,
		Type:     req.Type,
		Question: req.Question,
		Order:    req.Order,
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create challenge")
	}
	return challenge, nil
}

func (svc *ContentService) UpdateChallenge(actorID string, id uint, req dto.UpdateChallengeRequest) (*model.Challenge, error) {
	challenge, err := svc.GetChallenge(id)
	if err != nil {
		return nil, err
	}
	courseID, err := svc.challengeCourseID(challenge)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return nil, err
	}

	if req.LessonID != nil {
		challenge.LessonID = *req.LessonID
	}
	if req.Type != nil {
		challenge.Type = *req.Type
	}
	if req.Question != nil {
		challenge.Question = *req.Question
	}
	if req.Order != nil {
		challenge.Order = *req.Order
	}

	challenge.Lesson = nil
	challenge.ChallengeOptions = nil
	if err := svc.postgres.UpdateChallenge(challenge); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update challenge")
	}
	return challenge, nil
}

func (svc *ContentService) DeleteChallenge(actorID string, id uint) error {
	challenge, err := svc.GetChallenge(id)
	if err != nil {
		return err
	}
	courseID, err := svc.challengeCourseID(challenge)
	if err != nil {
		return err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return err
	}
	if err := svc.postgres.DeleteChallenge(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete challenge")
	}
	return nil
}

// ==================== CHALLENGE OPTIONS ====================

func (svc *ContentService) GetChallengeOptionList() ([]dto.ChallengeOptionListItem, error) {
	options, err := svc.postgres.GetChallengeOptions()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load challenge options")
	}

	items := make([]dto.ChallengeOptionListItem, 0, len(options))
	for _, option := range options {
		item := dto.ChallengeOptionListItem{
			ID:          option.ID,
			ChallengeID: option.ChallengeID,
			Text:        option.Text,
			Correct:     option.Correct,
			ImageSrc:    option.ImageSrc,
			AudioSrc:    option.AudioSrc,
		}
		if option.Challenge != nil {
			item.Question = option.Challenge.Question
			if courseID, err := svc.challengeCourseID(option.Challenge); err == nil {
				item.CourseID = courseID
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (svc *ContentService) GetChallengeOption(id uint) (*model.ChallengeOption, error) {
	option, err := svc.postgres.GetChallengeOption(id)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Challenge option not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load challenge option")
	}
	return option, nil
}

func (svc *ContentService) optionCourseID(option *model.ChallengeOption) (uint, error) {
	challenge := option.Challenge
	if challenge == nil {
		var err error
		challenge, err = svc.GetChallenge(option.ChallengeID)
		if err != nil {
			return 0, err
		}
	}
	return svc.challengeCourseID(challenge)
}

func (svc *ContentService) CreateChallengeOption(actorID string, req dto.CreateChallengeOptionRequest) (*model.ChallengeOption, error) {
	challenge, err := svc.GetChallenge(req.ChallengeID)
	if err != nil {
		return nil, err
	}
	courseID, err := svc.challengeCourseID(challenge)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return nil, err
	}

	option, err := svc.postgres.CreateChallengeOption(&model.ChallengeOption{
		ChallengeID: req.ChallengeID,
		Text:        req.Text,
		Correct:     req.Correct != nil && *req.Correct,
		ImageSrc:    req.ImageSrc,
		AudioSrc:    req.AudioSrc,
	})
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create challenge option")
	}
	return option, nil
}

func (svc *ContentService) UpdateChallengeOption(actorID string, id uint, req dto.UpdateChallengeOptionRequest) (*model.ChallengeOption, error) {
	option, err := svc.GetChallengeOption(id)
	if err != nil {
		return nil, err
	}
	courseID, err := svc.optionCourseID(option)
	if err != nil {
		return nil, err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return nil, err
	}

	if req.ChallengeID != nil {
		option.ChallengeID = *req.ChallengeID
	}
	if req.Text != nil {
		option.Text = *req.Text
	}
	if req.Correct != nil {
		option.Correct = *req.Correct
	}
	if req.ImageSrc != nil {
		option.ImageSrc = *req.ImageSrc
	}
	if req.AudioSrc != nil {
		option.AudioSrc = *req.AudioSrc
	}

	option.Challenge = nil
	if err := svc.postgres.UpdateChallengeOption(option); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update challenge option")
	}
	return option, nil
}

func (svc *ContentService) DeleteChallengeOption(actorID string, id uint) error {
	option, err := svc.GetChallengeOption(id)
	if err != nil {
		return err
	}
	courseID, err := svc.optionCourseID(option)
	if err != nil {
		return err
	}
	if err := svc.checkIfPermitted(actorID, courseID); err != nil {
		return err
	}
	if err := svc.postgres.DeleteChallengeOption(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete challenge option")
	}
	return nil
}
