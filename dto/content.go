package dto

// ==================== COURSE DTOs ====================

type CreateCourseRequest struct {
	Title    string `json:"title" validate:"required" example:"Spanish"`
	ImageSrc string `json:"image_src" validate:"required" example:"/flags/es.svg"`
}

func (r CreateCourseRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateCourseRequest struct {
	Title    string `json:"title,omitempty"`
	ImageSrc string `json:"image_src,omitempty"`
}

// ==================== UNIT DTOs ====================

type CreateUnitRequest struct {
	CourseID    uint   `json:"course_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Order       int    `json:"order" validate:"required"`
}

func (r CreateUnitRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateUnitRequest struct {
	CourseID    *uint   `json:"course_id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// UnitListItem is the authoring list row: the unit plus its course title and
// how many lessons hang off it.
type UnitListItem struct {
	ID          uint   `json:"id"`
	CourseID    uint   `json:"course_id"`
	CourseTitle string `json:"course_title"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Lessons     int    `json:"lessons"`
}

// ==================== LESSON DTOs ====================

type CreateLessonRequest struct {
	UnitID uint   `json:"unit_id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Order  int    `json:"order" validate:"required"`
}

func (r CreateLessonRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateLessonRequest struct {
	UnitID *uint   `json:"unit_id,omitempty"`
	Title  *string `json:"title,omitempty"`
	Order  *int    `json:"order,omitempty"`
}

type LessonListItem struct {
	ID         uint   `json:"id"`
	CourseID   uint   `json:"course_id"`
	UnitID     uint   `json:"unit_id"`
	UnitTitle  string `json:"unit_title"`
	Title      string `json:"title"`
	Order      int    `json:"order"`
	Challenges int    `json:"challenges"`
}

// ==================== CHALLENGE DTOs ====================

type CreateChallengeRequest struct {
	LessonID uint   `json:"lesson_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=SELECT ASSIST"`
	Question string `json:"question" validate:"required"`
	Order    int    `json:"order" validate:"required"`
}

func (r CreateChallengeRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateChallengeRequest struct {
	LessonID *uint   `json:"lesson_id,omitempty"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=SELECT ASSIST"`
	Question *string `json:"question,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

func (r UpdateChallengeRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ChallengeListItem struct {
	ID               uint   `json:"id"`
	CourseID         uint   `json:"course_id"`
	LessonID         uint   `json:"lesson_id"`
	LessonTitle      string `json:"lesson_title"`
	Type             string `json:"type"`
	Question         string `json:"question"`
	Order            int    `json:"order"`
	ChallengeOptions int    `json:"challenge_options"`
}

// ==================== CHALLENGE OPTION DTOs ====================

type CreateChallengeOptionRequest struct {
	ChallengeID uint   `json:"challenge_id" validate:"required"`
	Text        string `json:"text" validate:"required"`
	Correct     *bool  `json:"correct" validate:"required"`
	ImageSrc    string `json:"image_src,omitempty"`
	AudioSrc    string `json:"audio_src,omitempty"`
}

func (r CreateChallengeOptionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateChallengeOptionRequest struct {
	ChallengeID *uint   `json:"challenge_id,omitempty"`
	Text        *string `json:"text,omitempty"`
	Correct     *bool   `json:"correct,omitempty"`
	ImageSrc    *string `json:"image_src,omitempty"`
	AudioSrc    *string `json:"audio_src,omitempty"`
}

type ChallengeOptionListItem struct {
	ID          uint   `json:"id"`
	CourseID    uint   `json:"course_id"`
	ChallengeID uint   `json:"challenge_id"`
	Question    string `json:"question"`
	Text        string `json:"text"`
	Correct     bool   `json:"correct"`
	ImageSrc    string `json:"image_src,omitempty"`
	AudioSrc    string `json:"audio_src,omitempty"`
}
