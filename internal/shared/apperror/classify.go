package apperror

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes treated as client errors
const (
	CodeInvalidTextRepresentation pq.ErrorCode = "22P02"
	CodeNotNullViolation          pq.ErrorCode = "23502"
	CodeForeignKeyViolation       pq.ErrorCode = "23503"
)

var clientStoreCodes = map[pq.ErrorCode]struct{}{
	CodeInvalidTextRepresentation: {},
	CodeNotNullViolation:          {},
	CodeForeignKeyViolation:       {},
}

// Classify turns any error into an *Error.
//
// Precedence:
//  1. a domain rejection already in the chain is returned as-is
//  2. store constraint codes 22P02 / 23502 / 23503 become "Bad request"
//  3. everything else is Internal
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if code, ok := StoreCode(err); ok {
		if _, client := clientStoreCodes[code]; client {
			return BadRequestWrap(err)
		}
	}

	return Internal(err)
}

// StoreCode extracts the SQLSTATE from a pgx or lib/pq error
func StoreCode(err error) (pq.ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pq.ErrorCode(pgErr.Code), true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}

	return "", false
}

// StoreCodeName returns the condition name of a store error ("foreign_key_violation"),
// or an empty string when err is not a store error. Used for log fields.
func StoreCodeName(err error) string {
	code, ok := StoreCode(err)
	if !ok {
		return ""
	}
	return code.Name()
}
