//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_history_test
package status_history

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}
