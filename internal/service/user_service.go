package service

import (
	"context"
	"fmt"
	"log"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/dto"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users port.UserRepository
}

func NewUser(users port.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("users.ListUsers: %w", err)
	}

	return dto.UsersFromDomain(users), nil
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (dto.UserResponse, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("users.GetUser: %w", err)
	}

	return dto.UserFromDomain(user), nil
}

func (s *UserService) CreateUser(ctx context.Context, user domain.NewUser) (dto.UserResponse, error) {
	var zero dto.UserResponse

	if user.Name == "" || user.Email == "" || user.Password == "" || user.Role == "" {
		return zero, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	created, err := s.users.InsertUser(ctx, domain.User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: string(hash),
		Role:         user.Role,
	})
	if err != nil {
		return zero, fmt.Errorf("users.InsertUser: %w", err)
	}

	return dto.UserFromDomain(created), nil
}

// UpdateUser applies a partial update; omitted fields keep the stored value.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, update domain.UserUpdate) (dto.UserResponse, error) {
	var zero dto.UserResponse

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return zero, fmt.Errorf("users.GetUser: %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return zero, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		return zero, fmt.Errorf("users.UpdateUser: %w", err)
	}

	return dto.UserFromDomain(updated), nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("users.DeleteUser: %w", err)
	}

	return nil
}

// EnsureAdmin upserts the admin user keyed on email. It runs once at
// process start and is a no-op when the admin credentials are not set.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		log.Print("admin credentials not configured, skipping bootstrap")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	admin, err := s.users.UpsertUserByEmail(ctx, domain.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil {
		return fmt.Errorf("users.UpsertUserByEmail: %w", err)
	}

	log.Printf("admin user %d ready", admin.ID)

	return nil
}
