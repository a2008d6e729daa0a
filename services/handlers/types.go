package handlers

import (
	"io"

	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/model"
)

type ProgressServiceInterface interface {
	GetUserProgress(userID string) (*dto.UserProgressResponse, error)
	SelectCourse(userID string, courseID uint) (*dto.UserProgressResponse, error)
	GetTopTenUsers() ([]dto.LeaderboardEntry, error)
	GetUnits(userID string) ([]dto.UnitStatus, error)
	GetCourseProgress(userID string) (*dto.CourseProgressResponse, error)
	GetLesson(userID string, lessonID uint) (*dto.LessonStatus, error)
	GetLessonPercentage(userID string) (*dto.LessonPercentageResponse, error)
	RecordChallengeAttempt(userID string, challengeID uint) (*dto.ReduceHeartResponse, error)
	GetChallengeProgress(userID string, challengeID uint) (*model.ChallengeProgress, error)
	ReduceHeart(userID string) (*dto.ReduceHeartResponse, error)
	RefillHeart(userID string) (*dto.HeartsResponse, error)
}

type ContentServiceInterface interface {
	IsStaff(userID string) bool
	IsAdmin(userID string) bool
	HasPermission(userID string, courseID uint) bool

	CreateStaff(actorID string, req dto.CreateStaffRequest) (*model.Staff, error)
	UpdateStaffPermissions(actorID, staffUserID string, req dto.UpdateStaffPermissionsRequest) error
	GetTeam(actorID string) ([]model.Staff, error)

	GetCourses() ([]model.Course, error)
	GetCourse(id uint) (*model.Course, error)
	CreateCourse(actorID string, req dto.CreateCourseRequest) (*model.Course, error)
	UpdateCourse(actorID string, id uint, req dto.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(actorID string, id uint) error

	GetUnitList() ([]dto.UnitListItem, error)
	GetUnit(id uint) (*model.Unit, error)
	CreateUnit(actorID string, req dto.CreateUnitRequest) (*model.Unit, error)
	UpdateUnit(actorID string, id uint, req dto.UpdateUnitRequest) (*model.Unit, error)
	DeleteUnit(actorID string, id uint) error

	GetLessonList() ([]dto.LessonListItem, error)
	GetLesson(id uint) (*model.Lesson, error)
	CreateLesson(actorID string, req dto.CreateLessonRequest) (*model.Lesson, error)
	UpdateLesson(actorID string, id uint, req dto.UpdateLessonRequest) (*model.Lesson, error)
	DeleteLesson(actorID string, id uint) error

	GetChallengeList() ([]dto.ChallengeListItem, error)
	GetChallenge(id uint) (*model.Challenge, error)
	CreateChallenge(actorID string, req dto.CreateChallengeRequest) (*model.Challenge, error)
	UpdateChallenge(actorID string, id uint, req dto.UpdateChallengeRequest) (*model.Challenge, error)
	DeleteChallenge(actorID string, id uint) error

	GetChallengeOptionList() ([]dto.ChallengeOptionListItem, error)
	GetChallengeOption(id uint) (*model.ChallengeOption, error)
	CreateChallengeOption(actorID string, req dto.CreateChallengeOptionRequest) (*model.ChallengeOption, error)
	UpdateChallengeOption(actorID string, id uint, req dto.UpdateChallengeOptionRequest) (*model.ChallengeOption, error)
	DeleteChallengeOption(actorID string, id uint) error
}

type SubscriptionServiceInterface interface {
	GetSubscription(userID string) (*dto.SubscriptionResponse, error)
	CreateStripeURL(userID, email string) (*dto.StripeURLResponse, error)
	HandleWebhook(payload []byte, sigHeader string) error
}

type ClerkServiceInterface interface {
	HandleWebhook(payload []byte, svixID, svixTimestamp, svixSignature string) error
	SendInvitation(email string) (*dto.InvitationResponse, error)
	GetInvitations() ([]dto.InvitationResponse, error)
	RevokeInvitation(id string) error
}

type MonitoringInterface interface {
	RecordChallengeAttempt(outcome string)
	RecordHeartSpent()
	RecordHeartRefill()
	RecordWebhookEvent(provider, result string)
}

type MediaServiceInterface interface {
	Upload(actorID, fileName, contentType string, reader io.Reader, size int64) (*dto.MediaUploadResponse, error)
	GetDownloadURL(id uint) (string, error)
	List(mediaType string) ([]model.Media, error)
	Delete(actorID string, id uint) error
}
