package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode SQLSTATE del error, o "" si no viene del servidor.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// retryable errores de red donde el servidor no llegó a ejecutar la sentencia,
// más serialization_failure (40001) y deadlock_detected (40P01).
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	switch pgCode(err) {
	case "40001", "40P01":
		return true
	}
	return false
}
