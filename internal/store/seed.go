package store

import (
	"context"
	"fmt"
)

// DefaultRule is a company rule inserted when the rules table is empty.
type DefaultRule struct {
	Title       string `db:"rule_title"`
	Description string `db:"rule_description"`
}

var DefaultRules = []DefaultRule{
	{"Code of Conduct", "Employees must maintain professional behavior at all times. Harassment, discrimination, or unethical behavior is strictly prohibited."},
	{"Working Hours", "Standard working hours are 9:00 AM to 6:00 PM, Monday to Friday. Late arrivals must be reported to HR in advance."},
	{"Attendance Policy", "Minimum 90% monthly attendance is mandatory. Continuous absence of 3 days without notice may result in disciplinary action."},
	{"Leave Policy", "Leave requests must be submitted at least 3 days in advance. Emergency leave must be informed the same day."},
	{"Salary and Payroll", "Salaries are processed on the 1st of every month. Salary deductions apply for unapproved absences and late arrivals."},
	{"Dress Code", "Employees are expected to wear formal or business casual attire. Dress-down Fridays are permitted unless stated otherwise."},
	{"Data Security and Confidentiality", "Sharing of confidential company data without authorization is a serious offense. Employees must adhere to all IT and security policies."},
	{"Performance Evaluation", "Regular appraisals are conducted every 6 or 12 months. Promotions and bonuses are performance-based."},
	{"Grievance Redressal", "Employees may approach HR with any complaints or grievances. All issues will be addressed confidentially and fairly."},
	{"Exit Policy", "A minimum of 30 days’ notice is required for resignation. Exit interviews and handovers must be completed before departure."},
}

const insertRule = `INSERT INTO rules (rule_title, rule_description) VALUES (:rule_title, :rule_description)`

// seedRules inserts DefaultRules in one statement if the table is empty.
func seedRules(ctx context.Context, db *DB) (int, error) {
	count, err := db.Count(ctx, TableRules)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if _, err := db.SQL.NamedExecContext(ctx, insertRule, DefaultRules); err != nil {
		return 0, fmt.Errorf("seeding rules: %w", err)
	}
	return len(DefaultRules), nil
}
