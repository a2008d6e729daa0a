package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linguify/linguify_api/model"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		// Fallback to individual environment variables
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "linguify_api"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := os.Getenv("DB_TIMEZONE")
		if timezone == "" {
			timezone = "UTC"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	// Retry connection with exponential backoff
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Error),
			TranslateError: true,
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	models := []interface{}{
		// Content models
		&model.Course{},
		&model.Unit{},
		&model.Lesson{},
		&model.Challenge{},
		&model.ChallengeOption{},
		&model.Media{},

		// User and progress models
		&model.User{},
		&model.UserProgress{},
		&model.ChallengeProgress{},
		&model.UserSubscription{},

		// Staff and invitation models
		&model.Organization{},
		&model.Staff{},
		&model.Permission{},
		&model.Invitation{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound // 404
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict // 409
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest // 400
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError // 500
		errorType = "TRANSACTION_ERROR"
	default:
		// Check for PostgreSQL-specific errors
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			statusCode = http.StatusConflict // 409
			errorType = "UNIQUE_CONSTRAINT"
		} else if strings.Contains(err.Error(), "relation") && strings.Contains(err.Error(), "does not exist") {
			statusCode = http.StatusInternalServerError // 500
			errorType = "SCHEMA_ERROR"
		} else if strings.Contains(err.Error(), "connection refused") {
			statusCode = http.StatusServiceUnavailable // 503
			errorType = "DATABASE_CONNECTION_ERROR"
		} else {
			statusCode = http.StatusInternalServerError // 500
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}

// IsNotFoundError reports whether err came out of HandleError as a 404.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConflictError reports whether err came out of HandleError as a 409.
func IsConflictError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

// Transact runs fn against a store bound to a single database transaction.
// Any error rolls the transaction back.
func (ds *PostgresService) Transact(fn func(store ProgressStore) error) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresService{db: tx})
	})
}

// ==================== COURSE METHODS ====================

func (ds *PostgresService) CreateCourse(course *model.Course) (*model.Course, error) {
	if err := ds.db.Create(course).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return course, nil
}

func (ds *PostgresService) GetCourse(id uint) (*model.Course, error) {
	var course model.Course
	if err := ds.db.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &course, nil
}

func (ds *PostgresService) GetCourseWithStructure(id uint) (*model.Course, error) {
	var course model.Course
	if err := ds.db.
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.\"order\" ASC")
		}).
		Preload("Units.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.\"order\" ASC")
		}).
		Where("id = ?", id).First(&course).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &course, nil
}

func (ds *PostgresService) GetCourses() ([]model.Course, error) {
	var courses []model.Course
	if err := ds.db.Order("id ASC").Find(&courses).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return courses, nil
}

func (ds *PostgresService) UpdateCourse(course *model.Course) error {
	if err := ds.db.Save(course).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteCourse(id uint) error {
	if err := ds.db.Delete(&model.Course{}, id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== UNIT METHODS ====================

func (ds *PostgresService) CreateUnit(unit *model.Unit) (*model.Unit, error) {
	if err := ds.db.Create(unit).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return unit, nil
}

func (ds *PostgresService) GetUnit(id uint) (*model.Unit, error) {
	var unit model.Unit
	if err := ds.db.Preload("Course").Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &unit, nil
}

func (ds *PostgresService) GetUnits() ([]model.Unit, error) {
	var units []model.Unit
	if err := ds.db.Preload("Course").Preload("Lessons").
		Order("course_id ASC, \"order\" ASC").Find(&units).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return units, nil
}

func (ds *PostgresService) GetUnitsByCourse(courseID uint) ([]model.Unit, error) {
	var units []model.Unit
	if err := ds.db.Where("course_id = ?", courseID).
		Order("\"order\" ASC").Find(&units).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return units, nil
}

func (ds *PostgresService) UpdateUnit(unit *model.Unit) error {
	if err := ds.db.Save(unit).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteUnit(id uint) error {
	if err := ds.db.Delete(&model.Unit{}, id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== LESSON METHODS ====================

func (ds *PostgresService) CreateLesson(lesson *model.Lesson) (*model.Lesson, error) {
	if err := ds.db.Create(lesson).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return lesson, nil
}

func (ds *PostgresService) GetLesson(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := ds.db.Preload("Unit").Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &lesson, nil
}

// GetLessonForUser loads one lesson with its ordered challenges, every
// challenge's options, and the given user's completion rows.
func (ds *PostgresService) GetLessonForUser(id uint, userID string) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := ds.db.
		Preload("Challenges", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenges.\"order\" ASC")
		}).
		Preload("Challenges.ChallengeOptions").
		Preload("Challenges.ChallengeProgress", "user_id = ?", userID).
		Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &lesson, nil
}

func (ds *PostgresService) GetLessons() ([]model.Lesson, error) {
	var lessons []model.Lesson
	if err := ds.db.Preload("Unit").Preload("Challenges").
		Order("unit_id ASC, \"order\" ASC").Find(&lessons).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return lessons, nil
}

func (ds *PostgresService) UpdateLesson(lesson *model.Lesson) error {
	if err := ds.db.Save(lesson).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteLesson(id uint) error {
	if err := ds.db.Delete(&model.Lesson{}, id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== CHALLENGE METHODS ====================

func (ds *PostgresService) CreateChallenge(challenge *model.Challenge) (*model.Challenge, error) {
	if err := ds.db.Create(challenge).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return challenge, nil
}

func (ds *PostgresService) GetChallenge(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := ds.db.Preload("Lesson").Preload("ChallengeOptions").
		Where("id = ?", id).First(&challenge).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &challenge, nil
}

func (ds *PostgresService) GetChallenges() ([]model.Challenge, error) {
	var challenges []model.Challenge
	if err := ds.db.Preload("Lesson").Preload("ChallengeOptions").
		Order("lesson_id ASC, \"order\" ASC").Find(&challenges).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return challenges, nil
}

func (ds *PostgresService) UpdateChallenge(challenge *model.Challenge) error {
	if err := ds.db.Save(challenge).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteChallenge(id uint) error {
	if err := ds.db.Delete(&model.Challenge{}, id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== CHALLENGE OPTION METHODS ====================

func (ds *PostgresService) CreateChallengeOption(option *model.ChallengeOption) (*model.ChallengeOption, error) {
	if err := ds.db.Create(option).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return option, nil
}

func (ds *PostgresService) GetChallengeOption(id uint) (*model.ChallengeOption, error) {
	var option model.ChallengeOption
	if err := ds.db.Preload("Challenge").Where("id = ?", id).First(&option).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &option, nil
}

func (ds *PostgresService) GetChallengeOptions() ([]model.ChallengeOption, error) {
	var options []model.ChallengeOption
	if err := ds.db.Preload("Challenge").
		Order("challenge_id ASC, id ASC").Find(&options).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return options, nil
}

func (ds *PostgresService) UpdateChallengeOption(option *model.ChallengeOption) error {
	if err := ds.db.Save(option).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteChallengeOption(id uint) error {
	if err := ds.db.Delete(&model.ChallengeOption{}, id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== USER PROGRESS METHODS ====================

func (ds *PostgresService) CreateUserProgress(progress *model.UserProgress) (*model.UserProgress, error) {
	if err := ds.db.Create(progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return progress, nil
}

func (ds *PostgresService) GetUserProgress(userID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	if err := ds.db.Preload("ActiveCourse").Preload("User").Where("user_id = ?", userID).
		First(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &progress, nil
}

func (ds *PostgresService) UpdateUserProgress(progress *model.UserProgress) error {
	if err := ds.db.Save(progress).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// SetHeartsAndPoints writes both gauges in one statement.
func (ds *PostgresService) SetHeartsAndPoints(userID string, hearts, points int) error {
	err := ds.db.Model(&model.UserProgress{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"hearts": hearts,
			"points": points,
		}).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// GetTopUsersByPoints returns the leaderboard rows, highest points first.
// Ties break on user_id so the ordering is stable between requests.
func (ds *PostgresService) GetTopUsersByPoints(limit int) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	if err := ds.db.Preload("User").
		Order("points DESC, user_id ASC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return rows, nil
}

// GetCourseUnitsForUser loads the full unit tree of a course with the given
// user's challenge completion rows attached, everything in display order.
func (ds *PostgresService) GetCourseUnitsForUser(courseID uint, userID string) ([]model.Unit, error) {
	var units []model.Unit
	if err := ds.db.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.\"order\" ASC")
		}).
		Preload("Lessons.Challenges", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenges.\"order\" ASC")
		}).
		Preload("Lessons.Challenges.ChallengeOptions").
		Preload("Lessons.Challenges.ChallengeProgress", "user_id = ?", userID).
		Where("course_id = ?", courseID).
		Order("\"order\" ASC").Find(&units).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return units, nil
}

// ==================== CHALLENGE PROGRESS METHODS ====================

func (ds *PostgresService) GetChallengeProgress(userID string, challengeID uint) (*model.ChallengeProgress, error) {
	var progress model.ChallengeProgress
	if err := ds.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &progress, nil
}

func (ds *PostgresService) CreateChallengeProgress(progress *model.ChallengeProgress) error {
	if err := ds.db.Create(progress).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) UpdateChallengeProgress(progress *model.ChallengeProgress) error {
	if err := ds.db.Save(progress).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== SUBSCRIPTION METHODS ====================

func (ds *PostgresService) GetSubscription(userID string) (*model.UserSubscription, error) {
	var sub model.UserSubscription
	if err := ds.db.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &sub, nil
}

func (ds *PostgresService) GetSubscriptionByStripeID(stripeSubscriptionID string) (*model.UserSubscription, error) {
	var sub model.UserSubscription
	if err := ds.db.Where("stripe_subscription_id = ?", stripeSubscriptionID).
		First(&sub).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &sub, nil
}

func (ds *PostgresService) CreateSubscription(sub *model.UserSubscription) error {
	if err := ds.db.Create(sub).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// UpdateSubscriptionPeriod refreshes the billing fields after a renewal.
func (ds *PostgresService) UpdateSubscriptionPeriod(stripeSubscriptionID, priceID string, periodEnd time.Time) error {
	err := ds.db.Model(&model.UserSubscription{}).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		Updates(map[string]interface{}{
			"stripe_price_id":    priceID,
			"current_period_end": periodEnd,
		}).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== USER METHODS ====================

func (ds *PostgresService) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *PostgresService) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

// UpsertUser keeps the local mirror of an identity-provider user current.
func (ds *PostgresService) UpsertUser(user *model.User) error {
	var existing model.User
	err := ds.db.Where("id = ?", user.ID).First(&existing).Error
	if err == nil {
		return ds.HandleError(ds.db.Model(&existing).Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"user_name":  user.UserName,
			"avatar_url": user.AvatarURL,
			"email":      user.Email,
		}).Error)
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.HandleError(ds.db.Create(user).Error)
	}
	return ds.HandleError(err)
}

func (ds *PostgresService) DeleteUser(userID string) error {
	if err := ds.db.Where("user_id = ?", userID).Delete(&model.ChallengeProgress{}).Error; err != nil {
		return ds.HandleError(err)
	}
	if err := ds.db.Where("user_id = ?", userID).Delete(&model.UserProgress{}).Error; err != nil {
		return ds.HandleError(err)
	}
	if err := ds.db.Where("id = ?", userID).Delete(&model.User{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== ORGANIZATION METHODS ====================

func (ds *PostgresService) CreateOrganization(org *model.Organization) error {
	if err := ds.db.Create(org).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetOrganization(orgID string) (*model.Organization, error) {
	var org model.Organization
	if err := ds.db.Where("id = ?", orgID).First(&org).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &org, nil
}

func (ds *PostgresService) HasOrganization() (bool, error) {
	var count int64
	if err := ds.db.Model(&model.Organization{}).Count(&count).Error; err != nil {
		return false, ds.HandleError(err)
	}
	return count > 0, nil
}

func (ds *PostgresService) UpsertOrganization(org *model.Organization) error {
	var existing model.Organization
	err := ds.db.Where("id = ?", org.ID).First(&existing).Error
	if err == nil {
		return ds.HandleError(ds.db.Model(&existing).Updates(map[string]interface{}{
			"name": org.Name,
		}).Error)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.CreateOrganization(org)
	}
	return ds.HandleError(err)
}

func (ds *PostgresService) DeleteOrganization(orgID string) error {
	if err := ds.db.Where("id = ?", orgID).Delete(&model.Organization{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== STAFF METHODS ====================

func (ds *PostgresService) GetStaff(userID string) (*model.Staff, error) {
	var staff model.Staff
	if err := ds.db.Preload("Permissions").Where("user_id = ?", userID).
		First(&staff).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &staff, nil
}

func (ds *PostgresService) CreateStaff(staff *model.Staff) (*model.Staff, error) {
	if err := ds.db.Create(staff).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return staff, nil
}

func (ds *PostgresService) GetStaffList() ([]model.Staff, error) {
	var staff []model.Staff
	if err := ds.db.Preload("User").Preload("Permissions").
		Order("created_at ASC").Find(&staff).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return staff, nil
}

func (ds *PostgresService) UpdateStaffRole(userID, role string) error {
	if err := ds.db.Model(&model.Staff{}).Where("user_id = ?", userID).
		Update("role", role).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteAllStaff() error {
	if err := ds.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Staff{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ReplaceStaffPermissions swaps the course grants of a staff member.
func (ds *PostgresService) ReplaceStaffPermissions(staffID uint, courseIDs []uint) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).
			Delete(&model.Permission{}).Error; err != nil {
			return ds.HandleError(err)
		}
		for _, courseID := range courseIDs {
			perm := model.Permission{StaffID: staffID, CourseID: courseID}
			if err := tx.Create(&perm).Error; err != nil {
				return ds.HandleError(err)
			}
		}
		return nil
	})
}

// ==================== INVITATION METHODS ====================

func (ds *PostgresService) CreateInvitation(invitation *model.Invitation) (*model.Invitation, error) {
	if invitation.ID == "" {
		id, _ := uuid.NewV7()
		invitation.ID = id.String()
	}
	if err := ds.db.Create(invitation).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return invitation, nil
}

func (ds *PostgresService) GetInvitationByEmail(email string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := ds.db.Where("email = ?", email).First(&invitation).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &invitation, nil
}

func (ds *PostgresService) GetInvitations() ([]model.Invitation, error) {
	var invitations []model.Invitation
	if err := ds.db.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return invitations, nil
}

func (ds *PostgresService) GetInvitation(id string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := ds.db.Where("id = ?", id).First(&invitation).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &invitation, nil
}

func (ds *PostgresService) DeleteInvitation(id string) error {
	if err := ds.db.Where("id = ?", id).Delete(&model.Invitation{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) UpdateInvitationStatus(email, status string) error {
	err := ds.db.Model(&model.Invitation{}).Where("email = ?", email).
		Update("status", status).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== MEDIA METHODS ====================

func (ds *PostgresService) CreateMedia(media *model.Media) (*model.Media, error) {
	if err := ds.db.Create(media).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return media, nil
}

func (ds *PostgresService) GetMedia(id uint) (*model.Media, error) {
	var media model.Media
	if err := ds.db.Where("id = ?", id).First(&media).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &media, nil
}

func (ds *PostgresService) GetMediaByType(mediaType string) ([]model.Media, error) {
	var media []model.Media
	query := ds.db.Model(&model.Media{})
	if mediaType != "" {
		query = query.Where("type = ?", mediaType)
	}
	if err := query.Order("id DESC").Find(&media).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return media, nil
}

func (ds *PostgresService) DeleteMedia(id uint) error {
	if err := ds.db.Delete(&model.Media{}, id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}
