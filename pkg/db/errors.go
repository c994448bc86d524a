package db

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// UniqueViolation reports whether err is a postgres unique-constraint
// violation, returning the violated constraint name.
func UniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return pqErr.Constraint, true
	}
	return "", false
}
