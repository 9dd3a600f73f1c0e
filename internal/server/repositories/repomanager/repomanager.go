package repomanager

import (
	"context"
	"database/sql"

	"github.com/memoriam-app/memoriam/internal/dbx"
	"github.com/memoriam-app/memoriam/internal/server/repositories/drafts"
	"github.com/memoriam-app/memoriam/internal/server/repositories/people"
	"github.com/memoriam-app/memoriam/internal/server/repositories/refreshtokens"
	"github.com/memoriam-app/memoriam/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	People(db dbx.DBTX) people.Repository
	Drafts(db dbx.DBTX) drafts.Repository
}
