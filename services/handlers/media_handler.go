package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload media (Staff)
// @Description Upload an image or audio file for course content
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param file formData file true "Image or audio file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/media [post]
func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No file provided")
	}

	src, err := file.Open()
	if err != nil {
		return shared.NewBadRequestError(err, "Unable to read file")
	}
	defer src.Close()

	media, err := h.mediaSvc.Upload(userID, file.Filename, file.Header.Get(fiber.HeaderContentType), src, file.Size)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", media)
}

// @Summary List media (Staff)
// @Description List uploaded media, optionally filtered by type
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param type query string false "Media type filter" Enums(IMAGE, AUDIO)
// @Success 200 {object} shared.Response{data=[]model.Media}
// @Router /api/v1/admin/media [get]
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	media, err := h.mediaSvc.List(c.Query("type"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", media)
}

// @Summary Get media URL (Staff)
// @Description Get a presigned download URL for a media file
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param mediaId path int true "Media ID"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/media/{mediaId}/url [get]
func (h *MediaHandler) GetMediaURL(c *fiber.Ctx) error {
	mediaID, err := parseUintParam(c, "mediaId")
	if err != nil {
		return err
	}

	url, err := h.mediaSvc.GetDownloadURL(mediaID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", url)
}

// @Summary Delete media (Staff)
// @Description Delete a media file and its record
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param mediaId path int true "Media ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/media/{mediaId} [delete]
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	mediaID, err := parseUintParam(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.mediaSvc.Delete(userID, mediaID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
