package seeders

import (
	"errors"
	"log"

	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
	"gorm.io/gorm"
)

// CourseSeeder handles seeding the starter language courses
type CourseSeeder struct {
	db *gorm.DB
}

func NewCourseSeeder(db *gorm.DB) *CourseSeeder {
	return &CourseSeeder{db: db}
}

// SeedCourses seeds the starter courses. Spanish gets a full first unit so a
// fresh install has something to learn; the rest are course shells.
func (s *CourseSeeder) SeedCourses() error {
	for _, course := range s.getCourses() {
		created, err := s.createIfAbsent(&model.Course{}, course.ID, &course)
		if err != nil {
			log.Printf("Error creating course %s: %v", course.Title, err)
			return err
		}
		if created {
			log.Printf("Created course: %s", course.Title)
		} else {
			log.Printf("Course %s already exists, skipping", course.Title)
		}
	}

	for _, unit := range s.getUnits() {
		if _, err := s.createIfAbsent(&model.Unit{}, unit.ID, &unit); err != nil {
			log.Printf("Error creating unit %s: %v", unit.Title, err)
			return err
		}
	}

	for _, lesson := range s.getLessons() {
		if _, err := s.createIfAbsent(&model.Lesson{}, lesson.ID, &lesson); err != nil {
			log.Printf("Error creating lesson %s: %v", lesson.Title, err)
			return err
		}
	}

	for _, challenge := range s.getChallenges() {
		if _, err := s.createIfAbsent(&model.Challenge{}, challenge.ID, &challenge); err != nil {
			log.Printf("Error creating challenge %d: %v", challenge.ID, err)
			return err
		}
	}

	for _, option := range s.getChallengeOptions() {
		if _, err := s.createIfAbsent(&model.ChallengeOption{}, option.ID, &option); err != nil {
			log.Printf("Error creating challenge option %d: %v", option.ID, err)
			return err
		}
	}

	log.Println("Course seeding completed successfully")
	return nil
}

func (s *CourseSeeder) createIfAbsent(probe interface{}, id uint, value interface{}) (bool, error) {
	err := s.db.Where("id = ?", id).First(probe).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, s.db.Create(value).Error
}

func (s *CourseSeeder) getCourses() []model.Course {
	return []model.Course{
		{ID: 1, Title: "Spanish", ImageSrc: "/images/es.svg"},
		{ID: 2, Title: "Italian", ImageSrc: "/images/it.svg"},
		{ID: 3, Title: "French", ImageSrc: "/images/fr.svg"},
		{ID: 4, Title: "Croatian", ImageSrc: "/images/hr.svg"},
		{ID: 5, Title: "Japanese", ImageSrc: "/images/jp.svg"},
	}
}

func (s *CourseSeeder) getUnits() []model.Unit {
	return []model.Unit{
		{ID: 1, CourseID: 1, Title: "Unit 1", Description: "Learn the basics of Spanish", Order: 1},
	}
}

func (s *CourseSeeder) getLessons() []model.Lesson {
	return []model.Lesson{
		{ID: 1, UnitID: 1, Title: "Nouns", Order: 1},
		{ID: 2, UnitID: 1, Title: "Verbs", Order: 2},
		{ID: 3, UnitID: 1, Title: "Adjectives", Order: 3},
		{ID: 4, UnitID: 1, Title: "Adverbs", Order: 4},
		{ID: 5, UnitID: 1, Title: "Prepositions", Order: 5},
	}
}

func (s *CourseSeeder) getChallenges() []model.Challenge {
	return []model.Challenge{
		{ID: 1, LessonID: 1, Type: shared.ChallengeTypeSelect, Order: 1, Question: `Which one of these is "the man"?`},
		{ID: 2, LessonID: 1, Type: shared.ChallengeTypeAssist, Order: 2, Question: `"the woman"`},
		{ID: 3, LessonID: 1, Type: shared.ChallengeTypeSelect, Order: 3, Question: `Which one of these is "the robot"?`},
		{ID: 4, LessonID: 2, Type: shared.ChallengeTypeSelect, Order: 1, Question: `Which one of these is "the man"?`},
		{ID: 5, LessonID: 2, Type: shared.ChallengeTypeAssist, Order: 2, Question: `"the woman"`},
		{ID: 6, LessonID: 2, Type: shared.ChallengeTypeSelect, Order: 3, Question: `Which one of these is "the robot"?`},
	}
}

func (s *CourseSeeder) getChallengeOptions() []model.ChallengeOption {
	man := func(id, challengeID uint, correct, withImage bool) model.ChallengeOption {
		o := model.ChallengeOption{ID: id, ChallengeID: challengeID, Text: "el hombre", Correct: correct, AudioSrc: "/audio/es_man.mp3"}
		if withImage {
			o.ImageSrc = "/images/man.svg"
		}
		return o
	}
	woman := func(id, challengeID uint, correct, withImage bool) model.ChallengeOption {
		o := model.ChallengeOption{ID: id, ChallengeID: challengeID, Text: "la mujer", Correct: correct, AudioSrc: "/audio/es_woman.mp3"}
		if withImage {
			o.ImageSrc = "/images/woman.svg"
		}
		return o
	}
	robot := func(id, challengeID uint, correct, withImage bool) model.ChallengeOption {
		o := model.ChallengeOption{ID: id, ChallengeID: challengeID, Text: "el robot", Correct: correct, AudioSrc: "/audio/es_robot.mp3"}
		if withImage {
			o.ImageSrc = "/images/robot.svg"
		}
		return o
	}

	return []model.ChallengeOption{
		// SELECT challenges show images, ASSIST challenges are text only
		man(1, 1, true, true), woman(2, 1, false, true), robot(3, 1, false, true),
		man(4, 2, false, false), woman(5, 2, true, false), robot(6, 2, false, false),
		man(7, 3, false, true), woman(8, 3, false, true), robot(9, 3, true, true),
		man(10, 4, true, true), woman(11, 4, false, true), robot(12, 4, false, true),
		man(13, 5, false, false), woman(14, 5, true, false), robot(15, 5, false, false),
		man(16, 6, false, true), woman(17, 6, false, true), robot(18, 6, true, true),
	}
}
