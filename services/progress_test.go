package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// memStore is an in-memory ProgressStore used to exercise the engine
// without a database.
type memStore struct {
	progress          map[string]*model.UserProgress
	challenges        map[uint]*model.Challenge
	challengeProgress map[string]*model.ChallengeProgress
	subscriptions     map[string]*model.UserSubscription
	courses           map[uint]*model.Course
	units             map[uint][]model.Unit
}

func newMemStore() *memStore {
	return &memStore{
		progress:          map[string]*model.UserProgress{},
		challenges:        map[uint]*model.Challenge{},
		challengeProgress: map[string]*model.ChallengeProgress{},
		subscriptions:     map[string]*model.UserSubscription{},
		courses:           map[uint]*model.Course{},
		units:             map[uint][]model.Unit{},
	}
}

func cpKey(userID string, challengeID uint) string {
	return fmt.Sprintf("%s:%d", userID, challengeID)
}

func (s *memStore) GetUserProgress(userID string) (*model.UserProgress, error) {
	p, ok := s.progress[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) CreateUserProgress(progress *model.UserProgress) (*model.UserProgress, error) {
	s.progress[progress.UserID] = progress
	return progress, nil
}

func (s *memStore) UpdateUserProgress(progress *model.UserProgress) error {
	s.progress[progress.UserID] = progress
	return nil
}

func (s *memStore) SetHeartsAndPoints(userID string, hearts, points int) error {
	p, ok := s.progress[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Hearts = hearts
	p.Points = points
	return nil
}

func (s *memStore) GetTopUsersByPoints(limit int) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	for _, p := range s.progress {
		rows = append(rows, *p)
	}
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[j].Points > rows[i].Points {
				rows[i], rows[j] = rows[j], rows[i]
			}
		}
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *memStore) GetChallenge(id uint) (*model.Challenge, error) {
	c, ok := s.challenges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *memStore) GetChallengeProgress(userID string, challengeID uint) (*model.ChallengeProgress, error) {
	cp, ok := s.challengeProgress[cpKey(userID, challengeID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *cp
	return &out, nil
}

func (s *memStore) CreateChallengeProgress(progress *model.ChallengeProgress) error {
	key := cpKey(progress.UserID, progress.ChallengeID)
	if _, exists := s.challengeProgress[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	s.challengeProgress[key] = progress
	return nil
}

func (s *memStore) UpdateChallengeProgress(progress *model.ChallengeProgress) error {
	s.challengeProgress[cpKey(progress.UserID, progress.ChallengeID)] = progress
	return nil
}

func (s *memStore) GetSubscription(userID string) (*model.UserSubscription, error) {
	sub, ok := s.subscriptions[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (s *memStore) GetCourseWithStructure(id uint) (*model.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *course
	out.Units = s.units[id]
	return &out, nil
}

func (s *memStore) GetCourseUnitsForUser(courseID uint, userID string) ([]model.Unit, error) {
	src := s.units[courseID]
	units := make([]model.Unit, len(src))
	for i, unit := range src {
		units[i] = unit
		units[i].Lessons = make([]model.Lesson, len(unit.Lessons))
		for j, lesson := range unit.Lessons {
			units[i].Lessons[j] = s.lessonForUser(lesson, userID)
		}
	}
	return units, nil
}

func (s *memStore) GetLessonForUser(id uint, userID string) (*model.Lesson, error) {
	for _, units := range s.units {
		for _, unit := range units {
			for _, lesson := range unit.Lessons {
				if lesson.ID == id {
					out := s.lessonForUser(lesson, userID)
					return &out, nil
				}
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memStore) lessonForUser(lesson model.Lesson, userID string) model.Lesson {
	out := lesson
	out.Challenges = make([]model.Challenge, len(lesson.Challenges))
	for i, challenge := range lesson.Challenges {
		out.Challenges[i] = challenge
		out.Challenges[i].ChallengeProgress = nil
		if cp, ok := s.challengeProgress[cpKey(userID, challenge.ID)]; ok {
			out.Challenges[i].ChallengeProgress = []model.ChallengeProgress{*cp}
		}
	}
	return out
}

func (s *memStore) Transact(fn func(store ProgressStore) error) error {
	return fn(s)
}

// abortingStore reproduces the database's transaction abort semantics: after
// a failed statement every later statement fails too, unless the failure was
// contained by a nested savepoint transaction. Its first challenge-progress
// lookup misses, mimicking a concurrent attempt landing the row between the
// existence check and the insert.
type abortingStore struct {
	*memStore
	aborted  bool
	raceSeen bool
}

func (s *abortingStore) Transact(fn func(store ProgressStore) error) error {
	if err := fn(s); err != nil {
		s.aborted = false
		return err
	}
	return nil
}

func (s *abortingStore) GetChallenge(id uint) (*model.Challenge, error) {
	if s.aborted {
		return nil, errAbortedTx
	}
	return s.memStore.GetChallenge(id)
}

func (s *abortingStore) GetChallengeProgress(userID string, challengeID uint) (*model.ChallengeProgress, error) {
	if s.aborted {
		return nil, errAbortedTx
	}
	if !s.raceSeen {
		s.raceSeen = true
		return nil, gorm.ErrRecordNotFound
	}
	return s.memStore.GetChallengeProgress(userID, challengeID)
}

func (s *abortingStore) CreateChallengeProgress(progress *model.ChallengeProgress) error {
	err := s.memStore.CreateChallengeProgress(progress)
	if err != nil {
		s.aborted = true
	}
	return err
}

var errAbortedTx = errors.New("current transaction is aborted, commands ignored until end of transaction block")

// seedCourse installs one course: unit 1 holds lesson 10 (challenges 100,
// 101) and lesson 11 (challenge 102); unit 2 holds lesson 12 (challenges
// 103, 104).
func seedCourse(s *memStore) {
	s.courses[1] = &model.Course{ID: 1, Title: "Spanish", ImageSrc: "/flags/es.svg"}

	mkChallenge := func(id, lessonID uint, order int) model.Challenge {
		c := model.Challenge{
			ID:       id,
			LessonID: lessonID,
			Type:     shared.ChallengeTypeSelect,
			Question: fmt.Sprintf("question %d", id),
			Order:    order,
		}
		s.challenges[id] = &c
		return c
	}

	s.units[1] = []model.Unit{
		{
			ID: 1, CourseID: 1, Title: "Unit 1", Order: 1,
			Lessons: []model.Lesson{
				{ID: 10, UnitID: 1, Title: "Nouns", Order: 1, Challenges: []model.Challenge{
					mkChallenge(100, 10, 1),
					mkChallenge(101, 10, 2),
				}},
				{ID: 11, UnitID: 1, Title: "Verbs", Order: 2, Challenges: []model.Challenge{
					mkChallenge(102, 11, 1),
				}},
			},
		},
		{
			ID: 2, CourseID: 1, Title: "Unit 2", Order: 2,
			Lessons: []model.Lesson{
				{ID: 12, UnitID: 2, Title: "Phrases", Order: 1, Challenges: []model.Challenge{
					mkChallenge(103, 12, 1),
					mkChallenge(104, 12, 2),
				}},
			},
		},
	}
}

func newTestService(s ProgressStore) *ProgressService {
	return &ProgressService{
		store: s,
		clock: fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func seedLearner(s *memStore, hearts, points int) {
	courseID := uint(1)
	s.progress["user_1"] = &model.UserProgress{
		ID:             1,
		UserID:         "user_1",
		ActiveCourseID: &courseID,
		Hearts:         hearts,
		Points:         points,
	}
}

func activeSubscription(now time.Time) *model.UserSubscription {
	return &model.UserSubscription{
		UserID:               "user_1",
		StripeCustomerID:     "cus_123",
		StripeSubscriptionID: "sub_123",
		StripePriceID:        "price_123",
		CurrentPeriodEnd:     now.Add(20 * 24 * time.Hour),
	}
}

func TestSelectCourse(t *testing.T) {
	t.Run("creates progress on first selection", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		svc := newTestService(store)

		resp, err := svc.SelectCourse("user_1", 1)
		require.NoError(t, err)
		require.NotNil(t, resp.ActiveCourseID)
		assert.Equal(t, uint(1), *resp.ActiveCourseID)
		assert.Equal(t, HeartsMax, resp.Hearts)
		assert.Equal(t, 0, resp.Points)
	})

	t.Run("updates active course and keeps gauges", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 3, 120)
		store.courses[2] = &model.Course{ID: 2, Title: "French"}
		store.units[2] = []model.Unit{{
			ID: 3, CourseID: 2, Title: "Unit 1", Order: 1,
			Lessons: []model.Lesson{{ID: 30, UnitID: 3, Title: "Basics", Order: 1}},
		}}
		svc := newTestService(store)

		resp, err := svc.SelectCourse("user_1", 2)
		require.NoError(t, err)
		assert.Equal(t, uint(2), *resp.ActiveCourseID)
		assert.Equal(t, 3, resp.Hearts)
		assert.Equal(t, 120, resp.Points)
	})

	t.Run("rejects missing course", func(t *testing.T) {
		store := newMemStore()
		svc := newTestService(store)

		_, err := svc.SelectCourse("user_1", 99)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.StatusCode)
	})

	t.Run("rejects course without units", func(t *testing.T) {
		store := newMemStore()
		store.courses[5] = &model.Course{ID: 5, Title: "Empty"}
		svc := newTestService(store)

		_, err := svc.SelectCourse("user_1", 5)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.StatusCode)
		assert.Equal(t, "Course is empty", appErr.Message)
	})

	t.Run("rejects course whose first unit has no lessons", func(t *testing.T) {
		store := newMemStore()
		store.courses[6] = &model.Course{ID: 6, Title: "Hollow"}
		store.units[6] = []model.Unit{{ID: 9, CourseID: 6, Title: "Unit 1", Order: 1}}
		svc := newTestService(store)

		_, err := svc.SelectCourse("user_1", 6)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.StatusCode)
	})
}

func TestRecordChallengeAttempt(t *testing.T) {
	t.Run("first attempt awards points and keeps hearts", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		resp, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 5, store.progress["user_1"].Hearts)
		assert.Equal(t, 10, store.progress["user_1"].Points)
		assert.True(t, store.challengeProgress[cpKey("user_1", 100)].Completed)
	})

	t.Run("practice attempt restores a heart", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 2, 10)
		store.challengeProgress[cpKey("user_1", 100)] = &model.ChallengeProgress{
			UserID: "user_1", ChallengeID: 100, Completed: true,
		}
		svc := newTestService(store)

		resp, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 3, store.progress["user_1"].Hearts)
		assert.Equal(t, 20, store.progress["user_1"].Points)
	})

	t.Run("practice heart clamps at the ceiling", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		store.challengeProgress[cpKey("user_1", 100)] = &model.ChallengeProgress{
			UserID: "user_1", ChallengeID: 100, Completed: true,
		}
		svc := newTestService(store)

		_, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)
		assert.Equal(t, 5, store.progress["user_1"].Hearts)
	})

	t.Run("first attempt recordable on empty hearts", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 0, 30)
		svc := newTestService(store)

		resp, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 0, store.progress["user_1"].Hearts)
		assert.Equal(t, 40, store.progress["user_1"].Points)
		assert.True(t, store.challengeProgress[cpKey("user_1", 100)].Completed)
	})

	t.Run("practice allowed on empty hearts", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 0, 0)
		store.challengeProgress[cpKey("user_1", 100)] = &model.ChallengeProgress{
			UserID: "user_1", ChallengeID: 100, Completed: true,
		}
		svc := newTestService(store)

		resp, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 1, store.progress["user_1"].Hearts)
	})

	t.Run("races with a concurrent first attempt and lands on practice", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 2, 10)
		store.challengeProgress[cpKey("user_1", 100)] = &model.ChallengeProgress{
			UserID: "user_1", ChallengeID: 100, Completed: true,
		}
		svc := newTestService(&abortingStore{memStore: store})

		resp, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 3, store.progress["user_1"].Hearts)
		assert.Equal(t, 20, store.progress["user_1"].Points)
	})

	t.Run("unknown challenge is a 404", func(t *testing.T) {
		store := newMemStore()
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		_, err := svc.RecordChallengeAttempt("user_1", 999)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.StatusCode)
	})
}

func TestReduceHeart(t *testing.T) {
	t.Run("deducts one heart", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 4, 50)
		svc := newTestService(store)

		resp, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 3, resp.Hearts)
		assert.Equal(t, 3, store.progress["user_1"].Hearts)
		assert.Equal(t, 50, store.progress["user_1"].Points)
	})

	t.Run("subscribers are exempt", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 4, 0)
		svc := newTestService(store)
		store.subscriptions["user_1"] = activeSubscription(svc.clock.Now())

		resp, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, BlockedSubscription, resp.Blocked)
		assert.Equal(t, 4, store.progress["user_1"].Hearts)
	})

	t.Run("subscribers are exempt even on empty hearts", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 0, 0)
		svc := newTestService(store)
		store.subscriptions["user_1"] = activeSubscription(svc.clock.Now())

		resp, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, BlockedSubscription, resp.Blocked)
		assert.Equal(t, 0, store.progress["user_1"].Hearts)
	})

	t.Run("lapsed subscription within grace still exempts", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 4, 0)
		svc := newTestService(store)
		sub := activeSubscription(svc.clock.Now())
		sub.CurrentPeriodEnd = svc.clock.Now().Add(-12 * time.Hour)
		store.subscriptions["user_1"] = sub

		resp, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, BlockedSubscription, resp.Blocked)
	})

	t.Run("expired subscription charges normally", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 4, 0)
		svc := newTestService(store)
		sub := activeSubscription(svc.clock.Now())
		sub.CurrentPeriodEnd = svc.clock.Now().Add(-48 * time.Hour)
		store.subscriptions["user_1"] = sub

		resp, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
		assert.Empty(t, resp.Blocked)
		assert.Equal(t, 3, store.progress["user_1"].Hearts)
	})

	t.Run("empty gauge refuses instead of going negative", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 0, 0)
		svc := newTestService(store)

		resp, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, BlockedHearts, resp.Blocked)
		assert.Equal(t, 0, store.progress["user_1"].Hearts)
	})
}

func TestRefillHeart(t *testing.T) {
	t.Run("trades points for full hearts", func(t *testing.T) {
		store := newMemStore()
		seedLearner(store, 1, 60)
		svc := newTestService(store)

		resp, err := svc.RefillHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, HeartsMax, resp.Hearts)
		assert.Equal(t, 10, resp.Points)
		assert.Equal(t, HeartsMax, store.progress["user_1"].Hearts)
		assert.Equal(t, 10, store.progress["user_1"].Points)
	})

	t.Run("exact balance is enough", func(t *testing.T) {
		store := newMemStore()
		seedLearner(store, 0, PointsToRefill)
		svc := newTestService(store)

		resp, err := svc.RefillHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Points)
	})

	t.Run("rejects insufficient points", func(t *testing.T) {
		store := newMemStore()
		seedLearner(store, 1, 40)
		svc := newTestService(store)

		_, err := svc.RefillHeart("user_1")
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.StatusCode)
		assert.Equal(t, 40, store.progress["user_1"].Points)
	})

	t.Run("full gauge still trades points", func(t *testing.T) {
		store := newMemStore()
		seedLearner(store, HeartsMax, 200)
		svc := newTestService(store)

		resp, err := svc.RefillHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, HeartsMax, resp.Hearts)
		assert.Equal(t, 150, store.progress["user_1"].Points)
	})

	t.Run("cache invalidation failure does not fail the refill", func(t *testing.T) {
		store := newMemStore()
		seedLearner(store, 1, 60)
		svc := newTestService(store)
		// A RedisService with no client errors on every call.
		svc.redis = &RedisService{}

		resp, err := svc.RefillHeart("user_1")
		require.NoError(t, err)
		assert.Equal(t, HeartsMax, resp.Hearts)
	})
}

func TestGetCourseProgress(t *testing.T) {
	complete := func(store *memStore, challengeIDs ...uint) {
		for _, id := range challengeIDs {
			store.challengeProgress[cpKey("user_1", id)] = &model.ChallengeProgress{
				UserID: "user_1", ChallengeID: id, Completed: true,
			}
		}
	}

	t.Run("fresh learner starts at the first lesson", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		resp, err := svc.GetCourseProgress("user_1")
		require.NoError(t, err)
		require.NotNil(t, resp.ActiveLessonID)
		assert.Equal(t, uint(10), *resp.ActiveLessonID)
	})

	t.Run("partially finished lesson stays active", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		complete(store, 100)
		svc := newTestService(store)

		resp, err := svc.GetCourseProgress("user_1")
		require.NoError(t, err)
		assert.Equal(t, uint(10), *resp.ActiveLessonID)
	})

	t.Run("advances across unit boundaries", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		complete(store, 100, 101, 102)
		svc := newTestService(store)

		resp, err := svc.GetCourseProgress("user_1")
		require.NoError(t, err)
		assert.Equal(t, uint(12), *resp.ActiveLessonID)
	})

	t.Run("finished course has no active lesson", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		complete(store, 100, 101, 102, 103, 104)
		svc := newTestService(store)

		resp, err := svc.GetCourseProgress("user_1")
		require.NoError(t, err)
		assert.Nil(t, resp.ActiveLesson)
		assert.Nil(t, resp.ActiveLessonID)
	})

	t.Run("no active course yields empty response", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		store.progress["user_1"] = &model.UserProgress{UserID: "user_1", Hearts: 5}
		svc := newTestService(store)

		resp, err := svc.GetCourseProgress("user_1")
		require.NoError(t, err)
		assert.Nil(t, resp.ActiveLessonID)
	})
}

func TestGetLessonPercentage(t *testing.T) {
	t.Run("rounds to nearest whole percent", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		store.challengeProgress[cpKey("user_1", 103)] = &model.ChallengeProgress{
			UserID: "user_1", ChallengeID: 103, Completed: true,
		}
		// Lesson 10 and 11 done, lesson 12 half done: 1 of 2 → 50.
		for _, id := range []uint{100, 101, 102} {
			store.challengeProgress[cpKey("user_1", id)] = &model.ChallengeProgress{
				UserID: "user_1", ChallengeID: id, Completed: true,
			}
		}
		svc := newTestService(store)

		resp, err := svc.GetLessonPercentage("user_1")
		require.NoError(t, err)
		assert.Equal(t, 50, resp.Percentage)
	})

	t.Run("untouched lesson is zero", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		resp, err := svc.GetLessonPercentage("user_1")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Percentage)
	})

	t.Run("finished course reports zero", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		for _, id := range []uint{100, 101, 102, 103, 104} {
			store.challengeProgress[cpKey("user_1", id)] = &model.ChallengeProgress{
				UserID: "user_1", ChallengeID: id, Completed: true,
			}
		}
		svc := newTestService(store)

		resp, err := svc.GetLessonPercentage("user_1")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Percentage)
	})
}

func TestGetUnits(t *testing.T) {
	t.Run("marks lessons completed only when all challenges are done", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		for _, id := range []uint{100, 101} {
			store.challengeProgress[cpKey("user_1", id)] = &model.ChallengeProgress{
				UserID: "user_1", ChallengeID: id, Completed: true,
			}
		}
		svc := newTestService(store)

		units, err := svc.GetUnits("user_1")
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.True(t, units[0].Lessons[0].Completed)
		assert.False(t, units[0].Lessons[1].Completed)
		assert.False(t, units[1].Lessons[0].Completed)
	})

	t.Run("zero-challenge lesson is never completed", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		store.units[1][0].Lessons = append(store.units[1][0].Lessons, model.Lesson{
			ID: 13, UnitID: 1, Title: "Placeholder", Order: 3,
		})
		svc := newTestService(store)

		units, err := svc.GetUnits("user_1")
		require.NoError(t, err)
		assert.False(t, units[0].Lessons[2].Completed)
	})

	t.Run("no active course yields empty list", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		svc := newTestService(store)

		units, err := svc.GetUnits("user_1")
		require.NoError(t, err)
		assert.Empty(t, units)
	})
}

func TestGetLesson(t *testing.T) {
	t.Run("explicit lesson id", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		lesson, err := svc.GetLesson("user_1", 11)
		require.NoError(t, err)
		assert.Equal(t, uint(11), lesson.ID)
		require.Len(t, lesson.Challenges, 1)
		assert.False(t, lesson.Challenges[0].Completed)
	})

	t.Run("zero id resolves the current lesson", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		lesson, err := svc.GetLesson("user_1", 0)
		require.NoError(t, err)
		assert.Equal(t, uint(10), lesson.ID)
	})

	t.Run("finished course has no current lesson", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		for _, id := range []uint{100, 101, 102, 103, 104} {
			store.challengeProgress[cpKey("user_1", id)] = &model.ChallengeProgress{
				UserID: "user_1", ChallengeID: id, Completed: true,
			}
		}
		svc := newTestService(store)

		lesson, err := svc.GetLesson("user_1", 0)
		require.NoError(t, err)
		assert.Nil(t, lesson)
	})

	t.Run("missing lesson is a 404", func(t *testing.T) {
		store := newMemStore()
		seedCourse(store)
		seedLearner(store, 5, 0)
		svc := newTestService(store)

		_, err := svc.GetLesson("user_1", 999)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.StatusCode)
	})
}

func TestGetChallengeProgress(t *testing.T) {
	store := newMemStore()
	seedCourse(store)
	seedLearner(store, 5, 0)
	svc := newTestService(store)

	t.Run("unattempted challenge is not found", func(t *testing.T) {
		_, err := svc.GetChallengeProgress("user_1", 100)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.StatusCode)
	})

	t.Run("attempted challenge has a record", func(t *testing.T) {
		_, err := svc.RecordChallengeAttempt("user_1", 100)
		require.NoError(t, err)

		progress, err := svc.GetChallengeProgress("user_1", 100)
		require.NoError(t, err)
		assert.True(t, progress.Completed)
		assert.Equal(t, uint(100), progress.ChallengeID)
	})
}

// End-to-end walk: finish a lesson, lose hearts, buy them back.
func TestProgressRoundTrip(t *testing.T) {
	store := newMemStore()
	seedCourse(store)
	svc := newTestService(store)

	_, err := svc.SelectCourse("user_1", 1)
	require.NoError(t, err)

	for _, id := range []uint{100, 101, 102, 103, 104} {
		_, err := svc.RecordChallengeAttempt("user_1", id)
		require.NoError(t, err)
	}
	assert.Equal(t, 50, store.progress["user_1"].Points)

	// Three wrong answers cost three hearts.
	for i := 0; i < 3; i++ {
		_, err := svc.ReduceHeart("user_1")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, store.progress["user_1"].Hearts)

	resp, err := svc.RefillHeart("user_1")
	require.NoError(t, err)
	assert.Equal(t, HeartsMax, resp.Hearts)
	assert.Equal(t, 0, resp.Points)
}
