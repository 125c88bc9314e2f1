package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#23505:~:text=foreign_key_violation-,23505,-unique_violation
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsUniqueViolationOn сообщает, нарушен ли уникальный индекс с данным именем.
func IsUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == PgErrUniqueViolation && pgErr.ConstraintName == constraint
	}
	return false
}

// LikePattern экранирует спецсимволы LIKE и оборачивает текст в %...%.
func LikePattern(text string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(text) + "%"
}
