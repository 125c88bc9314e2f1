package parcel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"zapshift/internal/entities"
)

type Parcel struct {
	repository   Repository
	riderService RiderService
	txManager    TxManager
}

func New(repository Repository, riderService RiderService, txManager TxManager) *Parcel {
	return &Parcel{
		repository:   repository,
		riderService: riderService,
		txManager:    txManager,
	}
}

// CreateParcel сохраняет новую неоплаченную посылку. Время создания,
// статусы и трекинг-номер задаются сервером, значения из запроса игнорируются.
func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.SenderEmail == nil || parcelModify.ParcelName == nil || parcelModify.Cost == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(*parcelModify.SenderEmail) {
		return nil, ErrInvalidEmail
	}
	if !isValidParcelName(*parcelModify.ParcelName) {
		return nil, ErrInvalidParcelName
	}
	if !isValidCost(*parcelModify.Cost) {
		return nil, ErrInvalidCost
	}

	createdAt := time.Now().UTC()
	parcel, err := s.repository.Create(ctx, entities.ParcelModify{
		SenderEmail:    pointer.To(strings.ToLower(strings.TrimSpace(*parcelModify.SenderEmail))),
		ParcelName:     pointer.To(strings.TrimSpace(*parcelModify.ParcelName)),
		Cost:           parcelModify.Cost,
		PaymentStatus:  pointer.To(entities.PaymentUnpaid),
		DeliveryStatus: pointer.To(entities.DeliveryNone),
		CreatedAt:      &createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return parcel, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id uuid.UUID) (*entities.Parcel, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidParcelID
	}

	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return parcel, nil
}

func (s *Parcel) GetParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	if filter.DeliveryStatus != nil && !isValidDeliveryStatus(*filter.DeliveryStatus) {
		return nil, ErrInvalidDeliveryStatus
	}
	if filter.SenderEmail != nil {
		filter.SenderEmail = pointer.To(strings.ToLower(strings.TrimSpace(*filter.SenderEmail)))
	}

	parcels, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}
	return parcels, nil
}

// MarkPaid переводит посылку в paid/pending-pickup с данным трекинг-номером.
// Уже оплаченная посылка не меняется и сохраняет свой трекинг-номер.
// Предназначен для вызова внутри транзакции подтверждения платежа.
func (s *Parcel) MarkPaid(ctx context.Context, id uuid.UUID, trackingID string) (*entities.Parcel, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidParcelID
	}
	if trackingID == "" {
		return nil, ErrInvalidTrackingID
	}

	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if parcel.PaymentStatus == entities.PaymentPaid {
		return parcel, nil
	}

	parcel, err = s.repository.Update(ctx, entities.ParcelModify{
		ID:             &id,
		PaymentStatus:  pointer.To(entities.PaymentPaid),
		DeliveryStatus: pointer.To(entities.DeliveryPendingPickup),
		TrackingID:     &trackingID,
	})
	if err != nil {
		return nil, fmt.Errorf("mark parcel paid: %w", err)
	}
	return parcel, nil
}

// AssignRider назначает одобренного свободного райдера на оплаченную посылку.
// Посылка и райдер меняются в одной транзакции. При переназначении
// предыдущий райдер возвращается в available.
func (s *Parcel) AssignRider(ctx context.Context, assignment entities.RiderAssignment) (*entities.Parcel, error) {
	if assignment.ParcelID == uuid.Nil {
		return nil, ErrInvalidParcelID
	}
	if assignment.Rider.ID == uuid.Nil {
		return nil, ErrInvalidRiderID
	}

	var assigned *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, assignment.ParcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel.PaymentStatus != entities.PaymentPaid {
			return ErrParcelNotPaid
		}
		if parcel.DeliveryStatus == entities.DeliveryDelivered {
			return ErrParcelDelivered
		}
		if parcel.Rider != nil && parcel.Rider.ID == assignment.Rider.ID {
			assigned = parcel
			return nil
		}

		rider, err := s.riderService.GetRider(ctx, assignment.Rider.ID)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}
		if rider.Status != entities.RiderApproved {
			return ErrRiderNotApproved
		}
		if rider.WorkStatus != entities.RiderWorkAvailable {
			return ErrRiderUnavailable
		}

		if parcel.Rider != nil {
			err = s.setRiderWorkStatus(ctx, parcel.Rider.ID, entities.RiderWorkAvailable)
			if err != nil {
				return fmt.Errorf("release previous rider: %w", err)
			}
		}

		parcel, err = s.repository.Update(ctx, entities.ParcelModify{
			ID:             &assignment.ParcelID,
			DeliveryStatus: pointer.To(entities.DeliveryDriverAssigned),
			Rider:          mergeRider(assignment.Rider, rider),
		})
		if err != nil {
			return fmt.Errorf("assign rider to parcel: %w", err)
		}

		err = s.setRiderWorkStatus(ctx, rider.ID, entities.RiderWorkInDelivery)
		if err != nil {
			return fmt.Errorf("mark rider in delivery: %w", err)
		}

		assigned = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// MarkDelivered завершает доставку и освобождает райдера.
// Непустой riderEmail ограничивает операцию посылками этого райдера.
func (s *Parcel) MarkDelivered(ctx context.Context, id uuid.UUID, riderEmail *string) (*entities.Parcel, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidParcelID
	}

	var delivered *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel.DeliveryStatus != entities.DeliveryDriverAssigned || parcel.Rider == nil {
			return ErrParcelNotInRoute
		}
		if riderEmail != nil && !strings.EqualFold(parcel.Rider.Email, *riderEmail) {
			return ErrNotAssignedRider
		}

		deliveredAt := time.Now().UTC()
		updated, err := s.repository.Update(ctx, entities.ParcelModify{
			ID:             &id,
			DeliveryStatus: pointer.To(entities.DeliveryDelivered),
			DeliveredAt:    &deliveredAt,
		})
		if err != nil {
			return fmt.Errorf("mark parcel delivered: %w", err)
		}

		err = s.setRiderWorkStatus(ctx, parcel.Rider.ID, entities.RiderWorkAvailable)
		if err != nil {
			return fmt.Errorf("release rider: %w", err)
		}

		delivered = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivered, nil
}

// DeleteParcel удаляет посылку. Райдер посылки в пути освобождается в той же транзакции.
func (s *Parcel) DeleteParcel(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidParcelID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if parcel.DeliveryStatus == entities.DeliveryDriverAssigned && parcel.Rider != nil {
			err = s.setRiderWorkStatus(ctx, parcel.Rider.ID, entities.RiderWorkAvailable)
			if err != nil {
				return fmt.Errorf("release rider: %w", err)
			}
		}

		err = s.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete parcel: %w", err)
		}
		return nil
	})
}

func (s *Parcel) setRiderWorkStatus(ctx context.Context, riderID uuid.UUID, status entities.RiderWorkStatusType) error {
	_, err := s.riderService.UpdateRider(ctx, entities.RiderModify{
		ID:         &riderID,
		WorkStatus: &status,
	})
	return err
}

// mergeRider берет контактные данные из запроса, пустые поля дополняет из карточки райдера.
func mergeRider(requested entities.ParcelRider, rider *entities.Rider) *entities.ParcelRider {
	merged := entities.ParcelRider{
		ID:    rider.ID,
		Name:  strings.TrimSpace(requested.Name),
		Email: strings.TrimSpace(requested.Email),
		Phone: strings.TrimSpace(requested.Phone),
	}
	if merged.Name == "" {
		merged.Name = rider.Name
	}
	if merged.Email == "" {
		merged.Email = rider.Email
	}
	if merged.Phone == "" {
		merged.Phone = rider.Phone
	}
	return &merged
}
