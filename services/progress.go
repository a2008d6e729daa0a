package services

import (
	"errors"
	"math"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/linguify/linguify_api/dto"
	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
)

const (
	// HeartsMax is the heart ceiling; fresh learners start here.
	HeartsMax = 5

	// PointsPerChallenge is awarded for every completed attempt,
	// first try and practice alike.
	PointsPerChallenge = 10

	// PointsToRefill is the price of topping hearts back up to the ceiling.
	PointsToRefill = 50

	// LeaderboardSize caps the public points ranking.
	LeaderboardSize = 10
)

// Refusal reasons surfaced in the response body when the hearts economy
// blocks an attempt.
const (
	BlockedHearts       = "hearts"
	BlockedSubscription = "subscription"
)

// ProgressStore is the persistence surface the learning engine runs on.
// PostgresService satisfies it in production.
type ProgressStore interface {
	GetUserProgress(userID string) (*model.UserProgress, error)
	CreateUserProgress(progress *model.UserProgress) (*model.UserProgress, error)
	UpdateUserProgress(progress *model.UserProgress) error
	SetHeartsAndPoints(userID string, hearts, points int) error
	GetTopUsersByPoints(limit int) ([]model.UserProgress, error)

	GetChallenge(id uint) (*model.Challenge, error)
	GetChallengeProgress(userID string, challengeID uint) (*model.ChallengeProgress, error)
	CreateChallengeProgress(progress *model.ChallengeProgress) error
	UpdateChallengeProgress(progress *model.ChallengeProgress) error

	GetSubscription(userID string) (*model.UserSubscription, error)

	GetCourseWithStructure(id uint) (*model.Course, error)
	GetCourseUnitsForUser(courseID uint, userID string) ([]model.Unit, error)
	GetLessonForUser(id uint, userID string) (*model.Lesson, error)

	Transact(fn func(store ProgressStore) error) error
}

type ProgressService struct {
	context.DefaultService

	store ProgressStore
	redis *RedisService
	clock Clock
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	svc.store = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.redis = ctx.Service(REDIS_SVC).(*RedisService)
	svc.clock = systemClock{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	return nil
}

// ==================== USER PROGRESS ====================

func (svc *ProgressService) GetUserProgress(userID string) (*dto.UserProgressResponse, error) {
	progress, err := svc.store.GetUserProgress(userID)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "User progress not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load user progress")
	}
	return toUserProgressResponse(progress), nil
}

// SelectCourse points the learner at a course, creating their progress row on
// first use. A course with no units, or whose first unit has no lessons,
// cannot be started.
func (svc *ProgressService) SelectCourse(userID string, courseID uint) (*dto.UserProgressResponse, error) {
	course, err := svc.store.GetCourseWithStructure(courseID)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Course not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load course")
	}

	if len(course.Units) == 0 || len(course.Units[0].Lessons) == 0 {
		return nil, shared.NewBadRequestError(errors.New("course has no lessons"), "Course is empty")
	}

	progress, err := svc.store.GetUserProgress(userID)
	if err != nil {
		if !IsNotFoundError(err) {
			return nil, shared.NewInternalError(err, "Failed to load user progress")
		}
		created, createErr := svc.store.CreateUserProgress(&model.UserProgress{
			UserID:         userID,
			ActiveCourseID: &courseID,
			Hearts:         HeartsMax,
			Points:         0,
		})
		if createErr != nil {
			return nil, shared.NewInternalError(createErr, "Failed to create user progress")
		}
		return toUserProgressResponse(created), nil
	}

	progress.ActiveCourseID = &courseID
	if err := svc.store.UpdateUserProgress(progress); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update user progress")
	}
	return toUserProgressResponse(progress), nil
}

func (svc *ProgressService) GetTopTenUsers() ([]dto.LeaderboardEntry, error) {
	if cached, ok := svc.cachedLeaderboard(); ok {
		return cached, nil
	}

	rows, err := svc.store.GetTopUsersByPoints(LeaderboardSize)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load leaderboard")
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entry := dto.LeaderboardEntry{
			UserID: row.UserID,
			Points: row.Points,
		}
		if row.User != nil {
			entry.UserName = row.User.UserName
			entry.AvatarURL = row.User.AvatarURL
		}
		entries = append(entries, entry)
	}

	svc.cacheLeaderboard(entries)
	return entries, nil
}

func (svc *ProgressService) cachedLeaderboard() ([]dto.LeaderboardEntry, bool) {
	if svc.redis == nil {
		return nil, false
	}
	var entries []dto.LeaderboardEntry
	found, err := svc.redis.GetJSON(leaderboardCacheKey, &entries)
	if err != nil || !found {
		return nil, false
	}
	return entries, true
}

func (svc *ProgressService) cacheLeaderboard(entries []dto.LeaderboardEntry) {
	if svc.redis == nil {
		return
	}
	if err := svc.redis.SetJSON(leaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache leaderboard")
	}
}

// invalidateLeaderboard drops the cached ranking after a point-changing
// write. A cache failure never fails the write itself.
func (svc *ProgressService) invalidateLeaderboard() {
	if svc.redis == nil {
		return
	}
	if err := svc.redis.InvalidateLeaderboard(); err != nil {
		log.WithError(err).Warn("Failed to invalidate leaderboard cache")
	}
}

// ==================== COURSE STRUCTURE ====================

// GetUnits returns the active course's unit tree with per-lesson completion
// for the given user. Learners with no active course see an empty list.
func (svc *ProgressService) GetUnits(userID string) ([]dto.UnitStatus, error) {
	progress, err := svc.store.GetUserProgress(userID)
	if err != nil {
		if IsNotFoundError(err) {
			return []dto.UnitStatus{}, nil
		}
		return nil, shared.NewInternalError(err, "Failed to load user progress")
	}
	if progress.ActiveCourseID == nil {
		return []dto.UnitStatus{}, nil
	}

	units, err := svc.store.GetCourseUnitsForUser(*progress.ActiveCourseID, userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load course units")
	}

	result := make([]dto.UnitStatus, 0, len(units))
	for _, unit := range units {
		lessons := make([]dto.LessonStatus, 0, len(unit.Lessons))
		for _, lesson := range unit.Lessons {
			lessons = append(lessons, dto.LessonStatus{
				ID:        lesson.ID,
				UnitID:    lesson.UnitID,
				Title:     lesson.Title,
				Order:     lesson.Order,
				Completed: lessonCompleted(&lesson),
			})
		}
		result = append(result, dto.UnitStatus{
			ID:          unit.ID,
			CourseID:    unit.CourseID,
			Title:       unit.Title,
			Description: unit.Description,
			Order:       unit.Order,
			Lessons:     lessons,
		})
	}
	return result, nil
}

// GetCourseProgress finds the first lesson, walking units then lessons in
// display order, that still has an unfinished challenge. Both fields come
// back null when the whole course is done.
func (svc *ProgressService) GetCourseProgress(userID string) (*dto.CourseProgressResponse, error) {
	progress, err := svc.store.GetUserProgress(userID)
	if err != nil {
		if IsNotFoundError(err) {
			return &dto.CourseProgressResponse{}, nil
		}
		return nil, shared.NewInternalError(err, "Failed to load user progress")
	}
	if progress.ActiveCourseID == nil {
		return &dto.CourseProgressResponse{}, nil
	}

	units, err := svc.store.GetCourseUnitsForUser(*progress.ActiveCourseID, userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load course units")
	}

	for _, unit := range units {
		for _, lesson := range unit.Lessons {
			if lessonHasUnfinishedChallenge(&lesson) {
				active := dto.LessonStatus{
					ID:        lesson.ID,
					UnitID:    lesson.UnitID,
					Title:     lesson.Title,
					Order:     lesson.Order,
					Completed: false,
				}
				id := lesson.ID
				return &dto.CourseProgressResponse{
					ActiveLesson:   &active,
					ActiveLessonID: &id,
				}, nil
			}
		}
	}
	return &dto.CourseProgressResponse{}, nil
}

// GetLesson resolves a lesson with challenges, options and the user's
// completion state. lessonID 0 means "the lesson the learner is on"; a
// learner with nothing left to do gets a nil lesson, not an error.
func (svc *ProgressService) GetLesson(userID string, lessonID uint) (*dto.LessonStatus, error) {
	if lessonID == 0 {
		courseProgress, err := svc.GetCourseProgress(userID)
		if err != nil {
			return nil, err
		}
		if courseProgress.ActiveLessonID == nil {
			return nil, nil
		}
		lessonID = *courseProgress.ActiveLessonID
	}

	lesson, err := svc.store.GetLessonForUser(lessonID, userID)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Lesson not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load lesson")
	}

	challenges := make([]dto.ChallengeStatus, 0, len(lesson.Challenges))
	for _, challenge := range lesson.Challenges {
		options := make([]dto.ChallengeOptionStatus, 0, len(challenge.ChallengeOptions))
		for _, option := range challenge.ChallengeOptions {
			options = append(options, dto.ChallengeOptionStatus{
				ID:          option.ID,
				ChallengeID: option.ChallengeID,
				Text:        option.Text,
				Correct:     option.Correct,
				ImageSrc:    option.ImageSrc,
				AudioSrc:    option.AudioSrc,
			})
		}
		challenges = append(challenges, dto.ChallengeStatus{
			ID:               challenge.ID,
			LessonID:         challenge.LessonID,
			Type:             challenge.Type,
			Question:         challenge.Question,
			Order:            challenge.Order,
			Completed:        challengeCompleted(&challenge),
			ChallengeOptions: options,
		})
	}

	return &dto.LessonStatus{
		ID:         lesson.ID,
		UnitID:     lesson.UnitID,
		Title:      lesson.Title,
		Order:      lesson.Order,
		Completed:  lessonCompleted(lesson),
		Challenges: challenges,
	}, nil
}

// GetLessonPercentage reports how much of the learner's current lesson is
// done, rounded to the nearest whole percent.
func (svc *ProgressService) GetLessonPercentage(userID string) (*dto.LessonPercentageResponse, error) {
	courseProgress, err := svc.GetCourseProgress(userID)
	if err != nil {
		return nil, err
	}
	if courseProgress.ActiveLessonID == nil {
		return &dto.LessonPercentageResponse{Percentage: 0}, nil
	}

	lesson, err := svc.store.GetLessonForUser(*courseProgress.ActiveLessonID, userID)
	if err != nil {
		if IsNotFoundError(err) {
			return &dto.LessonPercentageResponse{Percentage: 0}, nil
		}
		return nil, shared.NewInternalError(err, "Failed to load lesson")
	}

	return &dto.LessonPercentageResponse{Percentage: lessonPercentage(lesson)}, nil
}

// ==================== HEARTS ECONOMY ====================

// RecordChallengeAttempt marks a challenge completed. The first attempt
// awards points only; a repeat (practice) attempt also restores a heart.
// Heart-gating happens on the preceding ReduceHeart, never here: an attempt
// is always recordable.
func (svc *ProgressService) RecordChallengeAttempt(userID string, challengeID uint) (*dto.ReduceHeartResponse, error) {
	var result *dto.ReduceHeartResponse
	err := svc.store.Transact(func(store ProgressStore) error {
		res, err := svc.recordAttempt(store, userID, challengeID, true)
		result = res
		return err
	})
	if err != nil {
		return nil, err
	}

	svc.invalidateLeaderboard()
	return result, nil
}

func (svc *ProgressService) recordAttempt(store ProgressStore, userID string, challengeID uint, allowRetry bool) (*dto.ReduceHeartResponse, error) {
	if _, err := store.GetChallenge(challengeID); err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Challenge not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load challenge")
	}

	progress, err := store.GetUserProgress(userID)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "User progress not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load user progress")
	}

	existing, err := store.GetChallengeProgress(userID, challengeID)
	if err != nil && !IsNotFoundError(err) {
		return nil, shared.NewInternalError(err, "Failed to load challenge progress")
	}

	if existing != nil {
		// Practice run: completing an already-seen challenge restores a
		// heart on top of the point award.
		existing.Completed = true
		if err := store.UpdateChallengeProgress(existing); err != nil {
			return nil, shared.NewInternalError(err, "Failed to update challenge progress")
		}

		hearts := progress.Hearts + 1
		if hearts > HeartsMax {
			hearts = HeartsMax
		}
		if err := store.SetHeartsAndPoints(userID, hearts, progress.Points+PointsPerChallenge); err != nil {
			return nil, shared.NewInternalError(err, "Failed to update user progress")
		}
		return &dto.ReduceHeartResponse{Hearts: hearts}, nil
	}

	// The insert runs under its own savepoint so a duplicate key from a
	// concurrent first attempt does not abort the enclosing transaction.
	err = store.Transact(func(tx ProgressStore) error {
		return tx.CreateChallengeProgress(&model.ChallengeProgress{
			UserID:      userID,
			ChallengeID: challengeID,
			Completed:   true,
		})
	})
	if err != nil {
		// A concurrent first attempt can land the row before us. Re-run
		// once; the second pass takes the practice path.
		if IsConflictError(err) && allowRetry {
			return svc.recordAttempt(store, userID, challengeID, false)
		}
		return nil, shared.NewInternalError(err, "Failed to record challenge progress")
	}

	if err := store.SetHeartsAndPoints(userID, progress.Hearts, progress.Points+PointsPerChallenge); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update user progress")
	}
	return &dto.ReduceHeartResponse{Hearts: progress.Hearts}, nil
}

// GetChallengeProgress returns the caller's attempt record for one challenge.
// No record means the challenge was never attempted.
func (svc *ProgressService) GetChallengeProgress(userID string, challengeID uint) (*model.ChallengeProgress, error) {
	progress, err := svc.store.GetChallengeProgress(userID, challengeID)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Challenge progress not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load challenge progress")
	}
	return progress, nil
}

// ReduceHeart charges one heart for a wrong answer. Subscribers are exempt,
// and an empty gauge refuses rather than going negative.
func (svc *ProgressService) ReduceHeart(userID string) (*dto.ReduceHeartResponse, error) {
	var (
		progress *model.UserProgress
		sub      *model.UserSubscription
	)

	var g errgroup.Group
	g.Go(func() error {
		p, err := svc.store.GetUserProgress(userID)
		if err != nil {
			if IsNotFoundError(err) {
				return shared.NewNotFoundError(err, "User progress not found")
			}
			return shared.NewInternalError(err, "Failed to load user progress")
		}
		progress = p
		return nil
	})
	g.Go(func() error {
		s, err := svc.store.GetSubscription(userID)
		if err != nil && !IsNotFoundError(err) {
			return shared.NewInternalError(err, "Failed to load subscription")
		}
		sub = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if sub.IsActive(svc.clock.Now()) {
		return &dto.ReduceHeartResponse{Blocked: BlockedSubscription, Hearts: progress.Hearts}, nil
	}
	if progress.Hearts == 0 {
		return &dto.ReduceHeartResponse{Blocked: BlockedHearts, Hearts: 0}, nil
	}

	hearts := progress.Hearts - 1
	if err := svc.store.SetHeartsAndPoints(userID, hearts, progress.Points); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update user progress")
	}
	return &dto.ReduceHeartResponse{Hearts: hearts}, nil
}

// RefillHeart trades accumulated points for a full heart gauge.
func (svc *ProgressService) RefillHeart(userID string) (*dto.HeartsResponse, error) {
	var result *dto.HeartsResponse
	err := svc.store.Transact(func(store ProgressStore) error {
		progress, err := store.GetUserProgress(userID)
		if err != nil {
			if IsNotFoundError(err) {
				return shared.NewNotFoundError(err, "User progress not found")
			}
			return shared.NewInternalError(err, "Failed to load user progress")
		}

		if progress.Points < PointsToRefill {
			return shared.NewBadRequestError(errors.New("insufficient points"), "Not enough points to refill hearts")
		}

		points := progress.Points - PointsToRefill
		if err := store.SetHeartsAndPoints(userID, HeartsMax, points); err != nil {
			return shared.NewInternalError(err, "Failed to update user progress")
		}
		result = &dto.HeartsResponse{Hearts: HeartsMax, Points: points}
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.invalidateLeaderboard()
	return result, nil
}

// ==================== HELPERS ====================

// challengeCompleted expects ChallengeProgress pre-filtered to one user.
func challengeCompleted(challenge *model.Challenge) bool {
	if len(challenge.ChallengeProgress) == 0 {
		return false
	}
	for _, cp := range challenge.ChallengeProgress {
		if !cp.Completed {
			return false
		}
	}
	return true
}

// lessonCompleted requires at least one challenge: an empty lesson is never
// considered done.
func lessonCompleted(lesson *model.Lesson) bool {
	if len(lesson.Challenges) == 0 {
		return false
	}
	for _, challenge := range lesson.Challenges {
		if !challengeCompleted(&challenge) {
			return false
		}
	}
	return true
}

func lessonHasUnfinishedChallenge(lesson *model.Lesson) bool {
	for _, challenge := range lesson.Challenges {
		if !challengeCompleted(&challenge) {
			return true
		}
	}
	return false
}

func lessonPercentage(lesson *model.Lesson) int {
	total := len(lesson.Challenges)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, challenge := range lesson.Challenges {
		if challengeCompleted(&challenge) {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func toUserProgressResponse(progress *model.UserProgress) *dto.UserProgressResponse {
	resp := &dto.UserProgressResponse{
		UserID:         progress.UserID,
		ActiveCourseID: progress.ActiveCourseID,
		Hearts:         progress.Hearts,
		Points:         progress.Points,
	}
	if progress.User != nil {
		resp.UserName = progress.User.UserName
		resp.AvatarURL = progress.User.AvatarURL
	}
	return resp
}
