package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"tracker_api/internal/domain"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// MapError 把驱动层错误转换成 domain 错误，并带上实体和 id
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %d: %w", entity, id, Classify(err))
}

// Classify 只做错误归类不加前缀，context 错误原样透传
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode, foreignKeyViolationCode:
			return fmt.Errorf("%w: %s", domain.ErrConstraint, pgErr.ConstraintName)
		case checkViolationCode:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
		}
	}
	return err
}
