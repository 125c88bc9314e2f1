package parcel

import (
	"zapshift/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	parcel := &entities.Parcel{
		ID:             p.ID,
		SenderEmail:    p.SenderEmail,
		ParcelName:     p.ParcelName,
		Cost:           p.Cost,
		PaymentStatus:  entities.PaymentStatusType(p.PaymentStatus),
		DeliveryStatus: entities.DeliveryStatusType(p.DeliveryStatus),
		TrackingID:     p.TrackingID,
		CreatedAt:      p.CreatedAt,
		DeliveredAt:    p.DeliveredAt,
	}

	// поля райдера заполнены все вместе, это гарантирует constraint таблицы
	if p.RiderID != nil {
		parcel.Rider = &entities.ParcelRider{
			ID:    *p.RiderID,
			Name:  deref(p.RiderName),
			Email: deref(p.RiderEmail),
			Phone: deref(p.RiderPhone),
		}
	}
	return parcel
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}

	parcelDB := &ParcelModifyDB{
		ID:          parcelModify.ID,
		SenderEmail: parcelModify.SenderEmail,
		ParcelName:  parcelModify.ParcelName,
		Cost:        parcelModify.Cost,
		TrackingID:  parcelModify.TrackingID,
		CreatedAt:   parcelModify.CreatedAt,
		DeliveredAt: parcelModify.DeliveredAt,
	}
	if parcelModify.PaymentStatus != nil {
		paymentStatus := parcelModify.PaymentStatus.String()
		parcelDB.PaymentStatus = &paymentStatus
	}
	if parcelModify.DeliveryStatus != nil {
		deliveryStatus := parcelModify.DeliveryStatus.String()
		parcelDB.DeliveryStatus = &deliveryStatus
	}
	if parcelModify.Rider != nil {
		rider := *parcelModify.Rider
		parcelDB.RiderID = &rider.ID
		parcelDB.RiderName = &rider.Name
		parcelDB.RiderEmail = &rider.Email
		parcelDB.RiderPhone = &rider.Phone
	}
	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i := range parcelsDB {
		result[i] = *ToDomain(&parcelsDB[i])
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
