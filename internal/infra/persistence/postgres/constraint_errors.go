package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific patterns when the dialector does not
	// translate the error
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// isSerializationFailure reports whether the database aborted the transaction
// because of concurrent access. The caller may retry the whole transactional
// unit against fresh state.
func isSerializationFailure(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "40001") || // serialization_failure
		strings.Contains(errMsg, "40p01") || // deadlock_detected
		strings.Contains(errMsg, "deadlock detected") ||
		strings.Contains(errMsg, "could not serialize access")
}
