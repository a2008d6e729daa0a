package dto

// ==================== PROGRESS DTOs ====================

type SelectCourseRequest struct {
	ActiveCourseID uint `json:"active_course_id" validate:"required"`
}

func (r SelectCourseRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ChallengeStatus is a challenge enriched with the requesting user's
// completion state and its answer options.
type ChallengeStatus struct {
	ID               uint                    `json:"id"`
	LessonID         uint                    `json:"lesson_id"`
	Type             string                  `json:"type"`
	Question         string                  `json:"question"`
	Order            int                     `json:"order"`
	Completed        bool                    `json:"completed"`
	ChallengeOptions []ChallengeOptionStatus `json:"challenge_options"`
}

type ChallengeOptionStatus struct {
	ID          uint   `json:"id"`
	ChallengeID uint   `json:"challenge_id"`
	Text        string `json:"text"`
	Correct     bool   `json:"correct"`
	ImageSrc    string `json:"image_src,omitempty"`
	AudioSrc    string `json:"audio_src,omitempty"`
}

type LessonStatus struct {
	ID         uint              `json:"id"`
	UnitID     uint              `json:"unit_id"`
	Title      string            `json:"title"`
	Order      int               `json:"order"`
	Completed  bool              `json:"completed"`
	Challenges []ChallengeStatus `json:"challenges,omitempty"`
}

type UnitStatus struct {
	ID          uint           `json:"id"`
	CourseID    uint           `json:"course_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Order       int            `json:"order"`
	Lessons     []LessonStatus `json:"lessons"`
}

// CourseProgressResponse points at the first lesson in the active course the
// user has not finished yet. Both fields are null when every lesson is done.
type CourseProgressResponse struct {
	ActiveLesson   *LessonStatus `json:"active_lesson"`
	ActiveLessonID *uint         `json:"active_lesson_id"`
}

type LessonPercentageResponse struct {
	Percentage int `json:"percentage"`
}

// ReduceHeartResponse carries the refusal reason when a heart could not be
// deducted. Blocked is "subscription" or "hearts"; empty on success.
type ReduceHeartResponse struct {
	Blocked string `json:"error,omitempty"`
	Hearts  int    `json:"hearts"`
}

type HeartsResponse struct {
	Hearts int `json:"hearts"`
	Points int `json:"points"`
}

type UserProgressResponse struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	ActiveCourseID *uint  `json:"active_course_id"`
	Hearts         int    `json:"hearts"`
	Points         int    `json:"points"`
}

type LeaderboardEntry struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Points    int    `json:"points"`
}

// ==================== INVITATION DTOs ====================

type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r CreateInvitationRequest) Validate() error {
	return GetValidator().Struct(r)
}

type InvitationResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ==================== STAFF DTOs ====================

type CreateStaffRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=ADMIN STAFF"`
	Permissions []uint `json:"permissions,omitempty"`
}

func (r CreateStaffRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateStaffPermissionsRequest struct {
	Permissions []uint `json:"permissions" validate:"required"`
}

func (r UpdateStaffPermissionsRequest) Validate() error {
	return GetValidator().Struct(r)
}
