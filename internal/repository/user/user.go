package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	"zapshift/internal/repository"
	"zapshift/internal/service/user"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = "id, email, name, photo_url, role, created_at"

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет пользователя, если email еще не занят.
func (r *Repository) Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	userModifyDB := FromDomainModify(&userModify)
	query := `INSERT INTO users (email, name, photo_url, role)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, 'user'))
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + userColumns

	var userDB UserDB
	err := scanUser(r.querier.QueryRow(
		ctx,
		query,
		userModifyDB.Email,
		userModifyDB.Name,
		userModifyDB.PhotoURL,
		userModifyDB.Role,
	), &userDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	var userDB UserDB
	err := scanUser(r.querier.QueryRow(ctx, query, email), &userDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userDB), nil
}

// Search ищет подстроку в имени или email без учета регистра.
func (r *Repository) Search(ctx context.Context, text string, limit uint64) ([]entities.User, error) {
	builder := qb.
		Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		Limit(limit)

	if text != "" {
		pattern := repository.LikePattern(text)
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}
	defer rows.Close()

	usersDB := make([]UserDB, 0, limit)
	for rows.Next() {
		var userDB UserDB
		err := scanUser(rows, &userDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository search error: %w", err)
		}
		usersDB = append(usersDB, userDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	return ToDomainList(usersDB), nil
}

func (r *Repository) Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	userModifyDB := FromDomainModify(&userModify)
	if userModifyDB.ID == nil {
		return nil, user.ErrInvalidUserID
	}

	builder := qb.Update("users")

	// опционные поля
	if userModifyDB.Name != nil {
		builder = builder.Set("name", userModifyDB.Name)
	}
	if userModifyDB.PhotoURL != nil {
		builder = builder.Set("photo_url", userModifyDB.PhotoURL)
	}
	if userModifyDB.Role != nil {
		builder = builder.Set("role", userModifyDB.Role)
	}

	builder = builder.
		Where(sq.Eq{"id": userModifyDB.ID}).
		Suffix("RETURNING " + userColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userDB UserDB
	err = scanUser(r.querier.QueryRow(ctx, query, args...), &userDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (*entities.User, error) {
	query := `UPDATE users
		SET role = $2
		WHERE email = $1
		RETURNING ` + userColumns

	var userDB UserDB
	err := scanUser(r.querier.QueryRow(ctx, query, email, role.String()), &userDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository updaterolebyemail error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func scanUser(row pgx.Row, userDB *UserDB) error {
	return row.Scan(
		&userDB.ID,
		&userDB.Email,
		&userDB.Name,
		&userDB.PhotoURL,
		&userDB.Role,
		&userDB.CreatedAt,
	)
}
