package payment

import (
	"zapshift/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	return &entities.Payment{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		ParcelID:      p.ParcelID,
		ParcelName:    p.ParcelName,
		PaymentStatus: p.PaymentStatus,
		TrackingID:    p.TrackingID,
		PaidAt:        p.PaidAt,
	}
}

func FromDomain(p *entities.Payment) *PaymentDB {
	if p == nil {
		return nil
	}

	return &PaymentDB{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		ParcelID:      p.ParcelID,
		ParcelName:    p.ParcelName,
		PaymentStatus: p.PaymentStatus,
		TrackingID:    p.TrackingID,
		PaidAt:        p.PaidAt,
	}
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i := range paymentsDB {
		result[i] = *ToDomain(&paymentsDB[i])
	}
	return result
}
