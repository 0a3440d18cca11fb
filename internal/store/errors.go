package store

import (
	"errors"
	"fmt"

	"github.com/frahmantamala/hrm/internal"
	"github.com/mattn/go-sqlite3"
)

// ConstraintDetails is attached to integrity errors as AppError details.
type ConstraintDetails struct {
	Table      string `json:"table"`
	Constraint string `json:"constraint"`
}

func constraintKind(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return "", false
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey:
		return "primary key", true
	case sqlite3.ErrConstraintUnique:
		return "unique", true
	case sqlite3.ErrConstraintForeignKey:
		return "foreign key", true
	case sqlite3.ErrConstraintCheck:
		return "check", true
	case sqlite3.ErrConstraintNotNull:
		return "not null", true
	default:
		return "constraint", true
	}
}

// translate turns constraint violations into integrity AppErrors and wraps
// everything else with the table name.
func translate(err error, t Table) error {
	if err == nil {
		return nil
	}
	if kind, ok := constraintKind(err); ok {
		return internal.NewIntegrityError(
			fmt.Sprintf("%s constraint violated on %s", kind, t),
			internal.ErrCodeConstraintViolated,
		).WithCause(err).WithDetails(ConstraintDetails{Table: string(t), Constraint: kind})
	}
	return fmt.Errorf("%s: %w", t, err)
}
