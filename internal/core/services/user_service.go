package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/validate"
)

// UserService manages member profiles and role assignment.
type UserService struct {
	userRepo   repositories.UserRepository
	personRepo repositories.PersonRepository
	roleRepo   repositories.RoleRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	personRepo repositories.PersonRepository,
	roleRepo repositories.RoleRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		personRepo: personRepo,
		roleRepo:   roleRepo,
	}
}

// GetProfile returns the caller's account with member details.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrInternalServer
	}
	return user, nil
}

type UpdateProfileInput struct {
	FullName         string `json:"full_name" validate:"omitempty,min=2,max=120"`
	Phone            string `json:"phone" validate:"omitempty,min=7,max=20"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=20"`
	Email            string `json:"email" validate:"omitempty,email"`
}

// UpdateProfile updates the caller's member record and email. Empty
// fields are left unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, domain.ErrInternalServer
		}
		if exists {
			return nil, domain.ErrDuplicateEmail
		}
		user.Email = input.Email
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, domain.ErrInternalServer
		}
	}

	if input.Phone != "" && user.Person != nil && input.Phone != user.Person.Phone {
		exists, err := s.personRepo.ExistsByPhone(ctx, input.Phone)
		if err != nil {
			return nil, domain.ErrInternalServer
		}
		if exists {
			return nil, domain.ErrDuplicatePhone
		}
	}

	if user.Person != nil && (input.FullName != "" || input.Phone != "" || input.EmergencyContact != "") {
		if input.FullName != "" {
			user.Person.FullName = input.FullName
		}
		if input.Phone != "" {
			user.Person.Phone = input.Phone
		}
		if input.EmergencyContact != "" {
			user.Person.EmergencyContact = input.EmergencyContact
		}
		if err := s.personRepo.Update(ctx, user.Person); err != nil {
			return nil, domain.ErrInternalServer
		}
	}

	return user, nil
}

// List returns a page of user accounts with the total count.
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, domain.ErrInternalServer
	}
	return users, total, nil
}

// ChangeRole reassigns a user's role. Callers cannot reassign their
// own role, so the group always keeps at least one acting official.
func (s *UserService) ChangeRole(ctx context.Context, caller Caller, userID uint, roleName string) (*models.User, error) {
	if caller.UserID == userID {
		return nil, domain.ErrOwnRoleChange
	}

	canonical, ok := domain.RoleFromName(roleName)
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	role, err := s.roleRepo.GetByName(ctx, string(canonical))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidRole
		}
		return nil, domain.ErrInternalServer
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.RoleID = role.ID
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, domain.ErrInternalServer
	}

	log.Printf("✅ Role changed: user %d is now %s", user.ID, role.Name)
	return user, nil
}

// RemoveMember deletes a member record. Accounts, contributions and
// loans cascade with the person row.
func (s *UserService) RemoveMember(ctx context.Context, personID uint) error {
	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPersonNotFound
		}
		return domain.ErrInternalServer
	}
	if err := s.personRepo.Delete(ctx, personID); err != nil {
		return domain.ErrInternalServer
	}
	log.Printf("✅ Member removed: person %d", personID)
	return nil
}

// ListRoles returns the assignable role set.
func (s *UserService) ListRoles(ctx context.Context) ([]*models.Role, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	return roles, nil
}
