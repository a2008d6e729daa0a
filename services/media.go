package services

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
)

// mediaURLExpiry is how long download links stay valid.
const mediaURLExpiry = 24 * time.Hour

// MediaService stores challenge assets (option images, audio clips) in
// object storage and tracks them in the media table.
type MediaService struct {
	context.DefaultService

	postgres *PostgresService
	storage  *MinIOService
	content  *ContentService
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.postgres = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.storage = ctx.Service(MINIO_SVC).(*MinIOService)
	svc.content = ctx.Service(CONTENT_SVC).(*ContentService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	return nil
}

func mediaTypeFor(contentType string) (string, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return shared.MediaTypeImage, nil
	case strings.HasPrefix(contentType, "audio/"):
		return shared.MediaTypeAudio, nil
	default:
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
}

// Upload stores one asset and returns its record. Only staff may upload.
func (svc *MediaService) Upload(actorID, fileName, contentType string, reader io.Reader, size int64) (*dto.MediaUploadResponse, error) {
	if !svc.content.IsStaff(actorID) {
		return nil, shared.NewForbiddenError(errors.New("staff role required"), "Staff access required")
	}

	mediaType, err := mediaTypeFor(contentType)
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Only image and audio uploads are supported")
	}

	id, _ := uuid.NewV7()
	objectName := fmt.Sprintf("%s/%s%s", strings.ToLower(mediaType), id.String(), path.Ext(fileName))

	if _, err := svc.storage.UploadFile(objectName, reader, size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to store media file")
	}

	media, err := svc.postgres.CreateMedia(&model.Media{
		Name: fileName,
		Src:  objectName,
		Type: mediaType,
	})
	if err != nil {
		// Roll the orphaned object back; the record is the source of truth.
		if delErr := svc.storage.DeleteFile(objectName); delErr != nil {
			log.WithError(delErr).WithField("object", objectName).Warn("Failed to remove orphaned media object")
		}
		return nil, shared.NewInternalError(err, "Failed to store media record")
	}

	return &dto.MediaUploadResponse{
		ID:   media.ID,
		Name: media.Name,
		Src:  media.Src,
		Type: media.Type,
	}, nil
}

// GetDownloadURL resolves a media id to a time-limited download link.
func (svc *MediaService) GetDownloadURL(id uint) (string, error) {
	media, err := svc.postgres.GetMedia(id)
	if err != nil {
		if IsNotFoundError(err) {
			return "", shared.NewNotFoundError(err, "Media not found")
		}
		return "", shared.NewInternalError(err, "Failed to load media")
	}

	url, err := svc.storage.GetFileURL(media.Src, mediaURLExpiry)
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to generate download link")
	}
	return url, nil
}

func (svc *MediaService) List(mediaType string) ([]model.Media, error) {
	media, err := svc.postgres.GetMediaByType(mediaType)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load media")
	}
	return media, nil
}

func (svc *MediaService) Delete(actorID string, id uint) error {
	if !svc.content.IsStaff(actorID) {
		return shared.NewForbiddenError(errors.New("staff role required"), "Staff access required")
	}

	media, err := svc.postgres.GetMedia(id)
	if err != nil {
		if IsNotFoundError(err) {
			return shared.NewNotFoundError(err, "Media not found")
		}
		return shared.NewInternalError(err, "Failed to load media")
	}

	if err := svc.storage.DeleteFile(media.Src); err != nil {
		log.WithError(err).WithField("object", media.Src).Warn("Failed to delete media object")
	}
	if err := svc.postgres.DeleteMedia(id); err != nil {
		return shared.NewInternalError(err, "Failed to delete media record")
	}
	return nil
}
