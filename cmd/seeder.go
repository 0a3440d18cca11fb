package cmd

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/attendance"
	"github.com/frahmantamala/hrm/internal/department"
	"github.com/frahmantamala/hrm/internal/employee"
	"github.com/frahmantamala/hrm/internal/leave"
	"github.com/frahmantamala/hrm/internal/salary"
	salarySqlite "github.com/frahmantamala/hrm/internal/salary/sqlite"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, db, logger, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("failed to init: %v", err)
		}
		defer db.Close()

		if clearData {
			if err := clearRecords(ctx, db); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			logger.Info("cleared existing records")
		}

		if err := seedDemo(ctx, db, logger, cfg.Database.QueryTimeout); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
		logger.Info("seeding completed")
	},
}

// clearRecords empties every section table, children first. Rules are left
// alone, the schema seeds them.
func clearRecords(ctx context.Context, db *store.DB) error {
	for _, t := range []store.Table{
		store.TableLeave,
		store.TableAttendance,
		store.TableSalary,
		store.TableEmployee,
		store.TableDepartment,
	} {
		if err := db.DeleteAll(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

var demoDepartments = []department.CreateDepartmentDTO{
	{DepartmentID: "D01", DepartmentName: "Engineering"},
	{DepartmentID: "D02", DepartmentName: "Human Resources"},
	{DepartmentID: "D03", DepartmentName: "Finance"},
}

var demoEmployees = []employee.CreateEmployeeDTO{
	{EmpID: "E001", Name: "Asha Menon", Address: "12 MG Road", DOB: "1990-04-12", Position: "Engineer", DepartmentID: "D01"},
	{EmpID: "E002", Name: "Ravi Kumar", Address: "4 Park Street", DOB: "1985-11-02", Position: "HR Manager", DepartmentID: "D02"},
	{EmpID: "E003", Name: "Meera Nair", Address: "8 Lake View", DOB: "1993-07-21", Position: "Accountant", DepartmentID: "D03"},
}

var demoSalaries = []salary.CreateSalaryDTO{
	{EmpID: "E001", Amount: 85000, PaymentDate: "2024-01-31", BankDetails: "XXXX1234", TotalMonthlyStipend: 5000, AmountDeducted: 2000, PaymentMethod: "Bank Transfer"},
	{EmpID: "E002", Amount: 70000, PaymentDate: "2024-01-31", BankDetails: "XXXX5678", PaymentMethod: "Bank Transfer"},
}

var demoAttendance = []attendance.CreateAttendanceDTO{
	{EmployeeID: "E001", Date: "2024-02-01", Status: attendance.StatusPresent},
	{EmployeeID: "E002", Date: "2024-02-01", Status: attendance.StatusAbsent},
}

var demoLeaves = []leave.CreateLeaveDTO{
	{EmpID: "E003", LeaveType: "Casual Leave", StartDate: "2024-02-05", EndDate: "2024-02-07", Status: leave.StatusPending},
}

// seedDemo inserts the demo rows through the section services. Rows already
// present are logged and skipped.
func seedDemo(ctx context.Context, db *store.DB, logger *slog.Logger, timeout time.Duration) error {
	departments := department.NewService(department.NewRepository(db), logger, timeout)
	employees := employee.NewService(employee.NewRepository(db), logger, timeout)
	salaries := salary.NewService(salarySqlite.NewSalaryRepository(db), logger, timeout)
	attendances := attendance.NewService(attendance.NewRepository(db), logger, timeout)
	leaves := leave.NewService(leave.NewRepository(db), logger, timeout)

	for _, d := range demoDepartments {
		_, err := departments.Create(ctx, d)
		if err := skipExisting(logger, "department", d.DepartmentID, err); err != nil {
			return err
		}
	}
	for _, e := range demoEmployees {
		_, err := employees.Create(ctx, e)
		if err := skipExisting(logger, "employee", e.EmpID, err); err != nil {
			return err
		}
	}
	for _, s := range demoSalaries {
		_, err := salaries.Create(ctx, s)
		if err := skipExisting(logger, "salary", s.EmpID, err); err != nil {
			return err
		}
	}
	for _, a := range demoAttendance {
		_, err := attendances.Create(ctx, a)
		if err := skipExisting(logger, "attendance", a.EmployeeID, err); err != nil {
			return err
		}
	}
	for _, l := range demoLeaves {
		_, err := leaves.Create(ctx, l)
		if err := skipExisting(logger, "leave", l.EmpID, err); err != nil {
			return err
		}
	}
	return nil
}

func skipExisting(logger *slog.Logger, kind, id string, err error) error {
	if err == nil {
		logger.Info("seeded", "kind", kind, "id", id)
		return nil
	}
	if internal.IsIntegrityError(err) {
		logger.Info("already exists, skipping", "kind", kind, "id", id)
		return nil
	}
	return err
}
