package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// @Summary List courses
// @Description List all courses available for learning
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Course}
// @Router /api/v1/courses [get]
func (h *ContentHandler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.contentSvc.GetCourses()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", courses)
}

// @Summary Get course
// @Description Get a course with its units and lessons
// @Tags content
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} shared.Response{data=model.Course}
// @Router /api/v1/courses/{courseId} [get]
func (h *ContentHandler) GetCourse(c *fiber.Ctx) error {
	courseID, err := parseUintParam(c, "courseId")
	if err != nil {
		return err
	}

	course, err := h.contentSvc.GetCourse(courseID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", course)
}
