package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	"zapshift/internal/repository"
	"zapshift/internal/service/rider"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const riderColumns = "id, name, email, phone, rider_district, status, work_status, created_at"

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	riderModifyDB := FromDomainModify(&riderModify)
	query := `INSERT INTO riders (name, email, phone, rider_district, status, work_status)
		VALUES (COALESCE($1, ''), $2, COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, 'pending'), COALESCE($6, ''))
		RETURNING ` + riderColumns

	var riderDB RiderDB
	err := scanRider(r.querier.QueryRow(
		ctx,
		query,
		riderModifyDB.Name,
		riderModifyDB.Email,
		riderModifyDB.Phone,
		riderModifyDB.RiderDistrict,
		riderModifyDB.Status,
		riderModifyDB.WorkStatus,
	), &riderDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rider.ErrRiderAlreadyApplied
		}
		return nil, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return ToDomain(&riderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + `
		FROM riders
		WHERE id = $1`

	var riderDB RiderDB
	err := scanRider(r.querier.QueryRow(ctx, query, id), &riderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	builder := qb.
		Select(riderColumns).
		From("riders").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.RiderDistrict != nil {
		builder = builder.Where(sq.Eq{"rider_district": *filter.RiderDistrict})
	}
	if filter.WorkStatus != nil {
		builder = builder.Where(sq.Eq{"work_status": filter.WorkStatus.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}
	defer rows.Close()

	ridersDB := make([]RiderDB, 0, 8)
	for rows.Next() {
		var riderDB RiderDB
		err := scanRider(rows, &riderDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
		}
		ridersDB = append(ridersDB, riderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}

	return ToDomainList(ridersDB), nil
}

func (r *Repository) Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	riderModifyDB := FromDomainModify(&riderModify)
	if riderModifyDB.ID == nil {
		return nil, rider.ErrInvalidRiderID
	}

	builder := qb.Update("riders")

	// опционные поля
	if riderModifyDB.Name != nil {
		builder = builder.Set("name", riderModifyDB.Name)
	}
	if riderModifyDB.Phone != nil {
		builder = builder.Set("phone", riderModifyDB.Phone)
	}
	if riderModifyDB.RiderDistrict != nil {
		builder = builder.Set("rider_district", riderModifyDB.RiderDistrict)
	}
	if riderModifyDB.Status != nil {
		builder = builder.Set("status", riderModifyDB.Status)
	}
	if riderModifyDB.WorkStatus != nil {
		builder = builder.Set("work_status", riderModifyDB.WorkStatus)
	}

	builder = builder.
		Where(sq.Eq{"id": riderModifyDB.ID}).
		Suffix("RETURNING " + riderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	var riderDB RiderDB
	err = scanRider(r.querier.QueryRow(ctx, query, args...), &riderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(&riderDB), nil
}

// ReleaseIdle переводит в available райдеров in_delivery без активных посылок.
func (r *Repository) ReleaseIdle(ctx context.Context) (int64, error) {
	query := `
		UPDATE riders r
		SET work_status = 'available'
		WHERE r.work_status = 'in_delivery'
		  AND NOT EXISTS (
			SELECT 1 FROM parcels p
			WHERE p.rider_id = r.id AND p.delivery_status = 'driver_assigned'
		  )`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected rider repository releaseidle error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanRider(row pgx.Row, riderDB *RiderDB) error {
	return row.Scan(
		&riderDB.ID,
		&riderDB.Name,
		&riderDB.Email,
		&riderDB.Phone,
		&riderDB.RiderDistrict,
		&riderDB.Status,
		&riderDB.WorkStatus,
		&riderDB.CreatedAt,
	)
}
