package config

import (
	"log"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedRoles(); err != nil {
		return err
	}
	if err := s.seedChairperson(); err != nil {
		log.Printf("⚠️ Chairperson seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedRoles inserts the fixed role set. The set is closed, so missing
// rows are created and existing rows are left alone.
func (s *Seeder) seedRoles() error {
	for _, role := range domain.Roles {
		var count int64
		if err := s.db.Model(&models.Role{}).Where("name = ?", string(role)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&models.Role{Name: string(role)}).Error; err != nil {
			return err
		}
		log.Printf("✅ Role created: %s", role)
	}
	return nil
}

// seedChairperson creates a bootstrap Chairperson account when the
// users table is empty. Development convenience only; rotate the
// credentials immediately in production.
func (s *Seeder) seedChairperson() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var role models.Role
	if err := s.db.Where("name = ?", string(domain.RoleChairperson)).First(&role).Error; err != nil {
		return err
	}

	hashedPassword, err := password.Hash("chair123")
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		person := &models.Person{
			FullName: "Group Chairperson",
			Phone:    "0700000000",
		}
		if err := tx.Create(person).Error; err != nil {
			return err
		}

		user := &models.User{
			Email:    "chair@chamaflow.local",
			Password: hashedPassword,
			RoleID:   role.ID,
			PersonID: person.ID,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		log.Printf("✅ Bootstrap chairperson created: %s", user.Email)
		return nil
	})
}
