package sqlite

import (
	"context"
	"database/sql"

	"github.com/classtrackhq/classtrack/internal/onboarding/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested transactions are not supported; SAVEPOINT could emulate them if
	// a caller ever needs it.
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Organizations() store.Organizations   { return &organizationsRepo{db: t.tx} }
func (t *txStore) Accounts() store.Accounts             { return &accountsRepo{db: t.tx} }
func (t *txStore) Links() store.Links                   { return &linksRepo{db: t.tx} }
func (t *txStore) Invitations() store.Invitations       { return &invitationsRepo{db: t.tx} }
func (t *txStore) PasswordResets() store.PasswordResets { return &passwordResetsRepo{db: t.tx} }
func (t *txStore) Notifications() store.Notifications   { return &notificationsRepo{db: t.tx} }
