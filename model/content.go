package model

import "time"

// Course is the top of the content tree: Course -> Unit -> Lesson -> Challenge -> ChallengeOption
type Course struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	ImageSrc  string    `json:"image_src" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Units []Unit `json:"units,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type Unit struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Order       int       `json:"order" gorm:"not null"` // position within the course
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
}

type Lesson struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UnitID    uint      `json:"unit_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Order     int       `json:"order" gorm:"not null"` // position within the unit
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Unit       *Unit       `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Challenges []Challenge `json:"challenges,omitempty" gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}

// Challenge type is SELECT (pick the matching option) or ASSIST (pick the translation).
type Challenge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LessonID  uint      `json:"lesson_id" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"`
	Question  string    `json:"question" gorm:"not null"`
	Order     int       `json:"order" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Lesson            *Lesson             `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
	ChallengeOptions  []ChallengeOption   `json:"challenge_options,omitempty" gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
	ChallengeProgress []ChallengeProgress `json:"challenge_progress,omitempty" gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
}

type ChallengeOption struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChallengeID uint      `json:"challenge_id" gorm:"not null;index"`
	Text        string    `json:"text" gorm:"not null"`
	Correct     bool      `json:"correct" gorm:"not null"`
	ImageSrc    string    `json:"image_src"`
	AudioSrc    string    `json:"audio_src"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Challenge *Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
}

// ChallengeProgress records a user's attempts on one challenge. At most one
// row per (user, challenge) pair; absence means never attempted.
type ChallengeProgress struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_challenge"`
	ChallengeID uint      `json:"challenge_id" gorm:"not null;uniqueIndex:idx_user_challenge"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Media struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Src       string    `json:"src" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"` // AUDIO or IMAGE
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
