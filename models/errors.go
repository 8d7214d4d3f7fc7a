package models

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("item not found")

var ErrNoFields = errors.New("no fields to update provided")

var ErrIntegrity = errors.New("database integrity error")

var ErrBusy = errors.New("database is busy")

// Class 23 covers unique, check and not-null violations.
func isIntegrityError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// Transient lock conditions: lock_not_available, serialization_failure,
// deadlock_detected. Only these are worth retrying.
func isContentionError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "55P03", "40001", "40P01":
		return true
	}
	return false
}
