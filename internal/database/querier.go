package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Querier 由 *sql.DB、*sql.Conn 和 *sql.Tx 共同实现
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Conn)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Builder 生成 PostgreSQL 风格（$1, $2...）占位符的 SQL
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
