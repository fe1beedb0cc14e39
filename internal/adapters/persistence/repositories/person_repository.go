package repositories

import (
	"context"

	"chamaflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// personRepository implements PersonRepository interface
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

// CreateWithUser creates a person and its user in one transaction
func (r *personRepository) CreateWithUser(ctx context.Context, person *models.Person, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(person).Error; err != nil {
			return err
		}
		user.PersonID = person.ID
		return tx.Create(user).Error
	})
}

// GetByID gets a person by ID
func (r *personRepository) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).First(&person, id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// ExistsByPhone checks if a phone number is already registered
func (r *personRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Person{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

// Update updates a person
func (r *personRepository) Update(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

// Delete hard deletes a person; users, contributions and loans follow
// via the FK cascade.
func (r *personRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Person{}, id).Error
}
