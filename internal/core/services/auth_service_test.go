package services

import (
	"context"
	"errors"
	"testing"

	"chamaflow/internal/adapters/persistence/models"
	"chamaflow/internal/config"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/password"
)

func newAuthFixture() (*AuthService, *fakePersonRepo, *fakeUserRepo, *fakeNotificationRepo) {
	personRepo := newFakePersonRepo()
	userRepo := &fakeUserRepo{}
	notificationRepo := &fakeNotificationRepo{}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	notifier := NewNotificationService(notificationRepo, userRepo)
	svc := NewAuthService(userRepo, personRepo, &fakeRoleRepo{}, &fakeRefreshTokenRepo{}, notifier, cfg)
	return svc, personRepo, userRepo, notificationRepo
}

func validRegistration() *RegisterInput {
	return &RegisterInput{
		FullName: "Wanjiku Kamau",
		Phone:    "0712345678",
		Email:    "wanjiku@example.com",
		Password: "secret1",
		Role:     "Member",
	}
}

func TestRegister(t *testing.T) {
	svc, personRepo, _, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("registration must issue a token pair")
	}
	if resp.User.Role != string(domain.RoleMember) {
		t.Errorf("User.Role = %q, want %q", resp.User.Role, domain.RoleMember)
	}
	if resp.User.FullName != "Wanjiku Kamau" {
		t.Errorf("User.FullName = %q, want registered name", resp.User.FullName)
	}
	if len(personRepo.persons) != 1 {
		t.Errorf("stored %d persons, want 1", len(personRepo.persons))
	}
}

func TestRegisterRoleNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"treasurer", "TREASURER", "Treasurer"} {
		t.Run(name, func(t *testing.T) {
			svc, _, _, _ := newAuthFixture()
			input := validRegistration()
			input.Role = name

			resp, err := svc.Register(context.Background(), input)
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if resp.User.Role != string(domain.RoleTreasurer) {
				t.Errorf("User.Role = %q, want canonical %q", resp.User.Role, domain.RoleTreasurer)
			}
		})
	}
}

func TestRegisterUnknownRolePersistsNothing(t *testing.T) {
	svc, personRepo, _, _ := newAuthFixture()
	input := validRegistration()
	input.Role = "President"

	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("Register() error = %v, want ErrInvalidRole", err)
	}
	if len(personRepo.persons) != 0 {
		t.Errorf("stored %d persons, want 0", len(personRepo.persons))
	}
}

func TestRegisterDuplicateEmailPersistsNothing(t *testing.T) {
	svc, personRepo, userRepo, _ := newAuthFixture()
	userRepo.users = append(userRepo.users, &models.User{ID: 1, Email: "wanjiku@example.com"})

	if _, err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("Register() error = %v, want ErrDuplicateEmail", err)
	}
	if len(personRepo.persons) != 0 {
		t.Errorf("stored %d persons, want 0", len(personRepo.persons))
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, personRepo, _, _ := newAuthFixture()
	personRepo.persons[1] = &models.Person{ID: 1, Phone: "0712345678"}

	if _, err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Errorf("Register() error = %v, want ErrDuplicatePhone", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, userRepo, _ := newAuthFixture()
	hashed, _ := password.Hash("secret1")
	userRepo.users = append(userRepo.users, &models.User{
		ID:       1,
		Email:    "wanjiku@example.com",
		Password: hashed,
		PersonID: 1,
		Role:     &models.Role{ID: 1, Name: string(domain.RoleMember)},
	})

	resp, err := svc.Login(context.Background(), &LoginInput{Email: "wanjiku@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("login must issue an access token")
	}

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != 1 || claims.PersonID != 1 || claims.Role != string(domain.RoleMember) {
		t.Errorf("claims = %+v, want user 1, person 1, role Member", claims)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, userRepo, _ := newAuthFixture()
	hashed, _ := password.Hash("secret1")
	userRepo.users = append(userRepo.users, &models.User{ID: 1, Email: "wanjiku@example.com", Password: hashed})

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"wrong password", LoginInput{Email: "wanjiku@example.com", Password: "wrong"}},
		{"unknown email", LoginInput{Email: "nobody@example.com", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), &tt.input); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, userRepo, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// Register's fake does not persist the user, add it for lookup.
	userRepo.users = append(userRepo.users, &models.User{
		ID:       resp.User.ID,
		Email:    resp.User.Email,
		PersonID: resp.User.PersonID,
		Role:     &models.Role{Name: resp.User.Role},
	})

	refreshed, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if refreshed.RefreshToken == resp.RefreshToken {
		t.Error("refresh must rotate the refresh token")
	}

	// The old token is revoked and cannot be replayed.
	if _, err := svc.RefreshToken(context.Background(), resp.RefreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("replayed RefreshToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, userRepo, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	userRepo.users = append(userRepo.users, &models.User{ID: resp.User.ID, Email: resp.User.Email})

	if err := svc.Logout(context.Background(), resp.RefreshToken); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.RefreshToken(context.Background(), resp.RefreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("RefreshToken() after logout error = %v, want ErrTokenInvalid", err)
	}
}
