package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	courseSeeder := NewCourseSeeder(s.db)
	if err := courseSeeder.SeedCourses(); err != nil {
		log.Printf("Course seeding failed: %v", err)
		return err
	}

	staffSeeder := NewStaffSeeder(s.db)
	if err := staffSeeder.SeedStaff(); err != nil {
		log.Printf("Staff seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedCoursesOnly() error {
	return NewCourseSeeder(s.db).SeedCourses()
}

func (s *MainSeeder) SeedStaffOnly() error {
	return NewStaffSeeder(s.db).SeedStaff()
}
