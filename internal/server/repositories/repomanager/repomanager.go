// Package repomanager wires repository constructors to a shared database
// handle and exposes a schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/reflecta-app/reflecta/internal/dbx"
	"github.com/reflecta-app/reflecta/internal/server/repositories/entries"
	"github.com/reflecta-app/reflecta/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	DB() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Entries(db dbx.DBTX) entries.Repository
	Close() error
}
