package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	"zapshift/internal/repository"
	"zapshift/internal/service/parcel"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const trackingIDConstraint = "parcels_tracking_id_key"

const parcelColumns = `id, sender_email, parcel_name, cost, payment_status, delivery_status, tracking_id,
	rider_id, rider_name, rider_email, rider_phone, created_at, delivered_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyDB := FromDomainModify(&parcelModify)
	query := `INSERT INTO parcels (sender_email, parcel_name, cost, payment_status, delivery_status, created_at)
		VALUES ($1, $2, $3, COALESCE($4, 'unpaid'), COALESCE($5, ''), COALESCE($6, NOW()))
		RETURNING ` + parcelColumns

	var parcelDB ParcelDB
	err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		parcelModifyDB.SenderEmail,
		parcelModifyDB.ParcelName,
		parcelModifyDB.Cost,
		parcelModifyDB.PaymentStatus,
		parcelModifyDB.DeliveryStatus,
		parcelModifyDB.CreatedAt,
	), &parcelDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelDB ParcelDB
	err := scanParcel(r.querier.QueryRow(ctx, query, id), &parcelDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

// List возвращает посылки, новые первыми.
func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("parcels").
		OrderBy("created_at DESC")

	if filter.SenderEmail != nil {
		builder = builder.Where(sq.Eq{"sender_email": *filter.SenderEmail})
	}
	if filter.DeliveryStatus != nil {
		builder = builder.Where(sq.Eq{"delivery_status": filter.DeliveryStatus.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelsDB := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelDB ParcelDB
		err := scanParcel(rows, &parcelDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelsDB = append(parcelsDB, parcelDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelsDB), nil
}

func (r *Repository) Update(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyDB := FromDomainModify(&parcelModify)
	if parcelModifyDB.ID == nil {
		return nil, parcel.ErrInvalidParcelID
	}

	builder := qb.Update("parcels")

	// опционные поля
	if parcelModifyDB.ParcelName != nil {
		builder = builder.Set("parcel_name", parcelModifyDB.ParcelName)
	}
	if parcelModifyDB.Cost != nil {
		builder = builder.Set("cost", parcelModifyDB.Cost)
	}
	if parcelModifyDB.PaymentStatus != nil {
		builder = builder.Set("payment_status", parcelModifyDB.PaymentStatus)
	}
	if parcelModifyDB.DeliveryStatus != nil {
		builder = builder.Set("delivery_status", parcelModifyDB.DeliveryStatus)
	}
	if parcelModifyDB.TrackingID != nil {
		builder = builder.Set("tracking_id", parcelModifyDB.TrackingID)
	}
	if parcelModifyDB.RiderID != nil {
		builder = builder.SetMap(map[string]any{
			"rider_id":    parcelModifyDB.RiderID,
			"rider_name":  parcelModifyDB.RiderName,
			"rider_email": parcelModifyDB.RiderEmail,
			"rider_phone": parcelModifyDB.RiderPhone,
		})
	}
	if parcelModifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", parcelModifyDB.DeliveredAt)
	}

	builder = builder.
		Where(sq.Eq{"id": parcelModifyDB.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelDB ParcelDB
	err = scanParcel(r.querier.QueryRow(ctx, query, args...), &parcelDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		if repository.IsUniqueViolationOn(err, trackingIDConstraint) {
			return nil, parcel.ErrTrackingIDTaken
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM parcels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}
	return nil
}

func scanParcel(row pgx.Row, parcelDB *ParcelDB) error {
	return row.Scan(
		&parcelDB.ID,
		&parcelDB.SenderEmail,
		&parcelDB.ParcelName,
		&parcelDB.Cost,
		&parcelDB.PaymentStatus,
		&parcelDB.DeliveryStatus,
		&parcelDB.TrackingID,
		&parcelDB.RiderID,
		&parcelDB.RiderName,
		&parcelDB.RiderEmail,
		&parcelDB.RiderPhone,
		&parcelDB.CreatedAt,
		&parcelDB.DeliveredAt,
	)
}
