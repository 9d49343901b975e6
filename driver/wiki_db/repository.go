package wiki_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository needs. pgxmock's
// pool satisfies it too, which is what the driver tests run against.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type WikiDBRepository struct {
	pool DBPool
}

func NewWikiDBRepository(pool DBPool) *WikiDBRepository {
	return &WikiDBRepository{pool: pool}
}
