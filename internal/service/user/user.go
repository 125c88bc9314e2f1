package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"zapshift/internal/entities"
)

const searchLimit = 10

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// CreateUser регистрирует пользователя с ролью user. Роль из запроса игнорируется:
// повышение до rider происходит только при одобрении заявки райдера.
func (s *User) CreateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Email == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if userModify.Name != nil && !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}

	userModify.Email = pointer.To(normalizeEmail(*userModify.Email))
	userModify.Role = pointer.To(entities.DefaultRole)

	user, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *User) SearchUsers(ctx context.Context, text string) ([]entities.User, error) {
	users, err := s.repository.Search(ctx, text, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (s *User) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.repository.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetUserRole возвращает роль пользователя, для неизвестного email - роль по умолчанию.
func (s *User) GetUserRole(ctx context.Context, email string) (entities.UserRoleType, error) {
	user, err := s.repository.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return entities.DefaultRole, nil
		}
		return "", fmt.Errorf("get user role: %w", err)
	}
	return user.Role, nil
}

func (s *User) ChangeUserRole(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil {
		return nil, ErrInvalidUserID
	}
	if userModify.Role == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidRole(userModify.Role.String()) {
		return nil, ErrInvalidRole
	}

	user, err := s.repository.Update(ctx, entities.UserModify{
		ID:   userModify.ID,
		Role: userModify.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("change user role: %w", err)
	}
	return user, nil
}

// PromoteToRider выставляет роль rider пользователю с данным email.
// Вызывается внутри транзакции одобрения райдера.
func (s *User) PromoteToRider(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.repository.UpdateRoleByEmail(ctx, normalizeEmail(email), entities.RoleRider)
	if err != nil {
		return nil, fmt.Errorf("promote user to rider: %w", err)
	}
	return user, nil
}
