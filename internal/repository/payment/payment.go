package payment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	"zapshift/internal/repository"
	"zapshift/internal/service/payment"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	paymentColumns = `id, transaction_id, amount, currency, customer_email, parcel_id, parcel_name,
	payment_status, tracking_id, paid_at`

	transactionIDConstraint = "payments_transaction_id_key"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create записывает платеж. Повтор transaction_id дает ErrDuplicateTransaction.
func (r *Repository) Create(ctx context.Context, p entities.Payment) (*entities.Payment, error) {
	paymentDB := FromDomain(&p)
	query := `INSERT INTO payments (transaction_id, amount, currency, customer_email, parcel_id, parcel_name,
			payment_status, tracking_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + paymentColumns

	var created PaymentDB
	err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		paymentDB.TransactionID,
		paymentDB.Amount,
		paymentDB.Currency,
		paymentDB.CustomerEmail,
		paymentDB.ParcelID,
		paymentDB.ParcelName,
		paymentDB.PaymentStatus,
		paymentDB.TrackingID,
		paymentDB.PaidAt,
	), &created)
	if err != nil {
		if repository.IsUniqueViolationOn(err, transactionIDConstraint) {
			return nil, payment.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id = $1`

	var paymentDB PaymentDB
	err := scanPayment(r.querier.QueryRow(ctx, query, transactionID), &paymentDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbytransactionid error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

// List возвращает платежи, новые первыми.
func (r *Repository) List(ctx context.Context, customerEmail *string) ([]entities.Payment, error) {
	builder := qb.
		Select(paymentColumns).
		From("payments").
		OrderBy("paid_at DESC")

	if customerEmail != nil {
		builder = builder.Where(sq.Eq{"customer_email": *customerEmail})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	paymentsDB := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentDB PaymentDB
		err := scanPayment(rows, &paymentDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
		}
		paymentsDB = append(paymentsDB, paymentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	return ToDomainList(paymentsDB), nil
}

func scanPayment(row pgx.Row, paymentDB *PaymentDB) error {
	return row.Scan(
		&paymentDB.ID,
		&paymentDB.TransactionID,
		&paymentDB.Amount,
		&paymentDB.Currency,
		&paymentDB.CustomerEmail,
		&paymentDB.ParcelID,
		&paymentDB.ParcelName,
		&paymentDB.PaymentStatus,
		&paymentDB.TrackingID,
		&paymentDB.PaidAt,
	)
}
