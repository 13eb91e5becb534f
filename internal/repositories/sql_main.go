package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/config"
)

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main.go -package=mock

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	sr  *salesRepository
	mer *manualEntryRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.sr = (*salesRepository)(&rtx.common)
	rtx.mer = (*manualEntryRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetSalesRepository() SalesRepository
	GetManualEntryRepository() ManualEntryRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil && errors.Is(err, sql.ErrTxDone) {
				log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
				err = nil
			}
			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()

	err = steps(injectTx(ctx, tx), r)
	return
}

func (r *Repository) GetSalesRepository() SalesRepository {
	return r.sr
}

func (r *Repository) GetManualEntryRepository() ManualEntryRepository {
	return r.mer
}
