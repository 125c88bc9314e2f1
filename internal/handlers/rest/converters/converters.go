package converters

import (
	"github.com/AlekSi/pointer"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
)

func ToParcelDTO(parcel entities.Parcel) dto.Parcel {
	result := dto.Parcel{
		Id:            parcel.ID.String(),
		SenderEmail:   parcel.SenderEmail,
		ParcelName:    parcel.ParcelName,
		Cost:          parcel.Cost,
		PaymentStatus: dto.PaymentStatus(parcel.PaymentStatus),
		TrackingId:    parcel.TrackingID,
		CreatedAt:     parcel.CreatedAt,
		DeliveredAt:   parcel.DeliveredAt,
	}

	if parcel.DeliveryStatus != entities.DeliveryNone {
		result.DeliveryStatus = pointer.To(dto.DeliveryStatus(parcel.DeliveryStatus))
	}
	if parcel.Rider != nil {
		result.RiderId = pointer.To(parcel.Rider.ID.String())
		result.RiderName = pointer.To(parcel.Rider.Name)
		result.RiderEmail = pointer.To(parcel.Rider.Email)
		result.RiderPhone = pointer.To(parcel.Rider.Phone)
	}

	return result
}

func ToParcelDTOs(parcels []entities.Parcel) []dto.Parcel {
	result := make([]dto.Parcel, len(parcels))
	for i, parcel := range parcels {
		result[i] = ToParcelDTO(parcel)
	}
	return result
}

func ToPaymentDTOs(payments []entities.Payment) []dto.Payment {
	result := make([]dto.Payment, len(payments))
	for i, payment := range payments {
		result[i] = dto.Payment{
			Id:            payment.ID.String(),
			TransactionId: payment.TransactionID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			CustomerEmail: payment.CustomerEmail,
			ParcelId:      payment.ParcelID.String(),
			ParcelName:    payment.ParcelName,
			PaymentStatus: payment.PaymentStatus,
			TrackingId:    payment.TrackingID,
			PaidAt:        payment.PaidAt,
		}
	}
	return result
}

func ToUserDTO(user entities.User) dto.User {
	result := dto.User{
		Id:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      dto.UserRole(user.Role),
		CreatedAt: user.CreatedAt,
	}
	if user.PhotoURL != "" {
		result.PhotoURL = pointer.To(user.PhotoURL)
	}
	return result
}

func ToUserDTOs(users []entities.User) []dto.User {
	result := make([]dto.User, len(users))
	for i, user := range users {
		result[i] = ToUserDTO(user)
	}
	return result
}

func ToRiderDTO(rider entities.Rider) dto.Rider {
	result := dto.Rider{
		Id:            rider.ID.String(),
		Name:          rider.Name,
		Email:         rider.Email,
		Phone:         rider.Phone,
		RiderDistrict: rider.RiderDistrict,
		Status:        dto.RiderStatus(rider.Status),
		CreatedAt:     rider.CreatedAt,
	}
	if rider.WorkStatus != entities.RiderWorkUnset {
		result.WorkStatus = pointer.To(dto.RiderWorkStatus(rider.WorkStatus))
	}
	return result
}

func ToRiderDTOs(riders []entities.Rider) []dto.Rider {
	result := make([]dto.Rider, len(riders))
	for i, rider := range riders {
		result[i] = ToRiderDTO(rider)
	}
	return result
}
