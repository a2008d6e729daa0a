package model

import "time"

// User rows mirror the identity provider; they are created and updated by
// webhook sync, never by this API directly.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"` // identity provider id
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UserName  string    `json:"user_name" gorm:"not null;default:User"`
	AvatarURL string    `json:"avatar_url"`
	Email     string    `json:"email" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProgress is the hearts/points ledger, one row per user. Hearts live in
// [0,5]; points only grow except for heart refills.
type UserProgress struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"not null;uniqueIndex"`
	ActiveCourseID *uint     `json:"active_course_id"`
	Hearts         int       `json:"hearts" gorm:"not null;default:5"`
	Points         int       `json:"points" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ActiveCourse *Course `json:"active_course,omitempty" gorm:"foreignKey:ActiveCourseID"`
	User         *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type UserSubscription struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	UserID               string    `json:"user_id" gorm:"not null;uniqueIndex"`
	StripeCustomerID     string    `json:"stripe_customer_id" gorm:"not null;uniqueIndex"`
	StripeSubscriptionID string    `json:"stripe_subscription_id" gorm:"not null;uniqueIndex"`
	StripePriceID        string    `json:"stripe_price_id" gorm:"not null"`
	CurrentPeriodEnd     time.Time `json:"current_period_end" gorm:"not null"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SubscriptionGracePeriod absorbs billing-cycle clock skew between the
// provider's renewal webhook and the stored period end.
const SubscriptionGracePeriod = 24 * time.Hour

// IsActive reports whether the paid plan still gates the hearts economy at
// the given instant.
func (s *UserSubscription) IsActive(now time.Time) bool {
	if s == nil {
		return false
	}
	return s.StripePriceID != "" && s.CurrentPeriodEnd.Add(SubscriptionGracePeriod).After(now)
}

type Organization struct {
	ID        string    `json:"id" gorm:"primaryKey"` // identity provider id
	Name      string    `json:"name" gorm:"unique;not null"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Staff struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex"`
	Role      string    `json:"role" gorm:"not null;default:STAFF"` // ADMIN or STAFF
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

// Permission grants a non-admin staff member authoring rights on one course.
type Permission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StaffID   uint      `json:"staff_id" gorm:"not null;index"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Invitation struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"not null;default:PENDING"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
