package checkout

import (
	"github.com/stripe/stripe-go/v76"
	"zapshift/internal/entities"
)

const (
	metadataParcelID   = "parcelId"
	metadataParcelName = "parcelName"
)

func toDomainSession(s *stripe.CheckoutSession) *entities.CheckoutSession {
	session := &entities.CheckoutSession{
		ID:            s.ID,
		Paid:          s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		ParcelID:      s.Metadata[metadataParcelID],
		ParcelName:    s.Metadata[metadataParcelName],
	}

	if s.PaymentIntent != nil {
		session.PaymentIntent = s.PaymentIntent.ID
	}
	if session.CustomerEmail == "" && s.CustomerDetails != nil {
		session.CustomerEmail = s.CustomerDetails.Email
	}

	return session
}

// toMinorUnits переводит стоимость в центы с округлением до ближайшего.
func toMinorUnits(cost float64) int64 {
	return int64(cost*100 + 0.5)
}
