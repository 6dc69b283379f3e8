// Package repomanager wires repositories to a database handle and runs
// schema migrations. Services ask the manager for a repository bound to
// either the pooled connection or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkrasnov/authapi/internal/dbx"
	"github.com/dkrasnov/authapi/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
