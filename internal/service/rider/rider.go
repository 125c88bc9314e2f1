package rider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"zapshift/internal/entities"
	"zapshift/internal/service/user"
)

type Rider struct {
	repository  Repository
	userService UserService
	txManager   TxManager
}

func New(repository Repository, userService UserService, txManager TxManager) *Rider {
	return &Rider{
		repository:  repository,
		userService: userService,
		txManager:   txManager,
	}
}

// Apply создает заявку райдера в статусе pending.
// Повторная заявка с тем же email возвращает ErrRiderAlreadyApplied.
func (s *Rider) Apply(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	if riderModify.Email == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(*riderModify.Email) {
		return nil, ErrInvalidEmail
	}

	riderModify.ID = nil
	riderModify.Email = pointer.To(strings.ToLower(strings.TrimSpace(*riderModify.Email)))
	riderModify.Status = pointer.To(entities.RiderPending)
	riderModify.WorkStatus = pointer.To(entities.RiderWorkUnset)

	rider, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("apply rider: %w", err)
	}
	return rider, nil
}

func (s *Rider) GetRider(ctx context.Context, id uuid.UUID) (*entities.Rider, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return rider, nil
}

func (s *Rider) GetRiders(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.WorkStatus != nil && !isValidWorkStatus(*filter.WorkStatus) {
		return nil, ErrInvalidWorkStatus
	}

	riders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get riders: %w", err)
	}
	return riders, nil
}

func (s *Rider) UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	if riderModify.ID == nil || *riderModify.ID == uuid.Nil {
		return nil, ErrInvalidRiderID
	}
	if riderModify.Status != nil && !isValidStatus(*riderModify.Status) {
		return nil, ErrInvalidStatus
	}
	if riderModify.WorkStatus != nil && !isValidWorkStatus(*riderModify.WorkStatus) {
		return nil, ErrInvalidWorkStatus
	}

	rider, err := s.repository.Update(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("update rider: %w", err)
	}
	return rider, nil
}

// ChangeRiderStatus меняет статус заявки. Одобрение делает райдера доступным
// и в той же транзакции повышает связанного пользователя до роли rider.
// Райдер in_delivery при повторном одобрении остается в доставке.
// Отсутствие пользователя с email райдера не считается ошибкой.
func (s *Rider) ChangeRiderStatus(ctx context.Context, id uuid.UUID, status entities.RiderStatusType) (*entities.Rider, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidRiderID
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Rider
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		riderModify := entities.RiderModify{
			ID:     &id,
			Status: &status,
		}

		if status == entities.RiderApproved {
			current, err := s.repository.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("get rider: %w", err)
			}
			if current.WorkStatus != entities.RiderWorkInDelivery {
				riderModify.WorkStatus = pointer.To(entities.RiderWorkAvailable)
			}
		}

		rider, err := s.repository.Update(ctx, riderModify)
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}

		if status == entities.RiderApproved {
			_, err = s.userService.PromoteToRider(ctx, rider.Email)
			if err != nil && !errors.Is(err, user.ErrUserNotFound) {
				return fmt.Errorf("promote rider user: %w", err)
			}
		}

		updated = rider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReleaseIdleRiders возвращает в available райдеров in_delivery, у которых
// нет ни одной посылки в статусе driver_assigned. Выполняется в serializable
// транзакции, чтобы не разойтись с параллельным назначением.
func (s *Rider) ReleaseIdleRiders(ctx context.Context) (int64, error) {
	var released int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		released, err = s.repository.ReleaseIdle(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("release idle riders timed out: %w", err)
		}
		return 0, fmt.Errorf("release idle riders: %w", err)
	}
	return released, nil
}
