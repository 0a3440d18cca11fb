package store

import (
	"context"
	"fmt"
)

// Table is the closed set of tables the application may touch. Statements
// that name a table are looked up here, never built from input.
type Table string

const (
	TableDepartment Table = "department"
	TableEmployee   Table = "employee"
	TableSalary     Table = "salary"
	TableAttendance Table = "attendance"
	TableLeave      Table = "leave_record"
	TableRules      Table = "rules"
)

// Tables lists every table, parents before children.
var Tables = []Table{
	TableDepartment,
	TableEmployee,
	TableSalary,
	TableAttendance,
	TableLeave,
	TableRules,
}

type statements struct {
	deleteAll string
	count     string
	keys      string
}

var tableStatements = map[Table]statements{
	TableDepartment: {
		deleteAll: `DELETE FROM department`,
		count:     `SELECT COUNT(*) FROM department`,
		keys:      `SELECT department_id FROM department ORDER BY department_id`,
	},
	TableEmployee: {
		deleteAll: `DELETE FROM employee`,
		count:     `SELECT COUNT(*) FROM employee`,
		keys:      `SELECT emp_id FROM employee ORDER BY emp_id`,
	},
	TableSalary: {
		deleteAll: `DELETE FROM salary`,
		count:     `SELECT COUNT(*) FROM salary`,
	},
	TableAttendance: {
		deleteAll: `DELETE FROM attendance`,
		count:     `SELECT COUNT(*) FROM attendance`,
	},
	TableLeave: {
		deleteAll: `DELETE FROM leave_record`,
		count:     `SELECT COUNT(*) FROM leave_record`,
	},
	TableRules: {
		deleteAll: `DELETE FROM rules`,
		count:     `SELECT COUNT(*) FROM rules`,
	},
}

func (t Table) String() string {
	return string(t)
}

func (t Table) statements() (statements, error) {
	stmts, ok := tableStatements[t]
	if !ok {
		return statements{}, fmt.Errorf("unknown table %q", string(t))
	}
	return stmts, nil
}

// DeleteAll removes every row of t. The rules autoincrement counter is kept.
func (db *DB) DeleteAll(ctx context.Context, t Table) error {
	stmts, err := t.statements()
	if err != nil {
		return err
	}
	if _, err := db.SQL.ExecContext(ctx, stmts.deleteAll); err != nil {
		return translate(err, t)
	}
	return nil
}

func (db *DB) Count(ctx context.Context, t Table) (int, error) {
	stmts, err := t.statements()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.SQL.GetContext(ctx, &n, stmts.count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", t, err)
	}
	return n, nil
}

// Keys returns the primary keys of a table other rows may reference, used to
// offer foreign-key candidates before an insert.
func (db *DB) Keys(ctx context.Context, t Table) ([]string, error) {
	stmts, err := t.statements()
	if err != nil {
		return nil, err
	}
	if stmts.keys == "" {
		return nil, fmt.Errorf("table %s is not referenced by other tables", t)
	}
	keys := []string{}
	if err := db.SQL.SelectContext(ctx, &keys, stmts.keys); err != nil {
		return nil, fmt.Errorf("listing %s keys: %w", t, err)
	}
	return keys, nil
}
