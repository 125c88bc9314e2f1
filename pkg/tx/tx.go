package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgErrSerializationFailure = "40001"

// ErrSerialization возвращается, когда serializable транзакция проиграла гонку
// параллельной транзакции. Вызывающий решает, повторять ли операцию.
var ErrSerialization = errors.New("transaction serialization failure")

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в serializable транзакции. Вложенные вызовы переиспользуют внешнюю транзакцию.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, pgx.Serializable, fn)
}

// DoReadCommitted для операций, которым достаточно построчных блокировок.
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, pgx.ReadCommitted, fn)
}

func (m *Manager) do(ctx context.Context, level pgx.TxIsoLevel, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)

	err := m.internal.DoWithSettings(ctx, txSettings, fn)
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrSerializationFailure
}
