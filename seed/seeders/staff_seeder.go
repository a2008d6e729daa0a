package seeders

import (
	"errors"
	"log"
	"os"

	"github.com/linguify/linguify_api/model"
	"github.com/linguify/linguify_api/shared"
	"gorm.io/gorm"
)

// StaffSeeder grants the bootstrap admin role. Every later staff member is
// created through the API by an existing admin.
type StaffSeeder struct {
	db *gorm.DB
}

func NewStaffSeeder(db *gorm.DB) *StaffSeeder {
	return &StaffSeeder{db: db}
}

func (s *StaffSeeder) SeedStaff() error {
	adminUserID := os.Getenv("ADMIN_USER_ID")
	if adminUserID == "" {
		log.Println("ADMIN_USER_ID not set, skipping staff seeding")
		return nil
	}

	var existing model.Staff
	err := s.db.Where("user_id = ?", adminUserID).First(&existing).Error
	if err == nil {
		log.Printf("Staff record for %s already exists, skipping", adminUserID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	staff := model.Staff{
		UserID: adminUserID,
		Role:   shared.RoleAdmin,
	}
	if err := s.db.Create(&staff).Error; err != nil {
		log.Printf("Error creating admin staff record: %v", err)
		return err
	}

	log.Printf("Created admin staff record for %s", adminUserID)
	return nil
}
