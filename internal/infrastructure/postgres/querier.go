package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier pgxpool.Pool ile pgx.Tx'in ortak sorgu yüzeyidir. Depolar bu arayüz
// üzerinden çalışır; böylece aynı depo hem havuzla hem işlem içinde kullanılır.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
