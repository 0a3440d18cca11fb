package store_test

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/frahmantamala/hrm/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type departmentRow struct {
	DepartmentID   string `gorm:"column:department_id"`
	DepartmentName string `gorm:"column:department_name"`
}

type deptKey string

func (k deptKey) Predicate() (string, []any) {
	return "department_id = ?", []any{string(k)}
}

type employeeRow struct {
	EmpID        string  `gorm:"column:emp_id"`
	Name         string  `gorm:"column:name"`
	DepartmentID *string `gorm:"column:department_id"`
}

type empKey string

func (k empKey) Predicate() (string, []any) {
	return "emp_id = ?", []any{string(k)}
}

type attendanceRow struct {
	EmployeeID string `gorm:"column:employee_id"`
	Date       string `gorm:"column:date"`
	Status     string `gorm:"column:status"`
}

type attendanceKey struct{ emp, date string }

func (k attendanceKey) Predicate() (string, []any) {
	return "employee_id = ? AND date = ?", []any{k.emp, k.date}
}

type ruleRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:rule_title"`
	Description string `gorm:"column:rule_description"`
}

type ruleKey int64

func (k ruleKey) Predicate() (string, []any) {
	return "id = ?", []any{int64(k)}
}

func strPtr(s string) *string { return &s }

var _ = Describe("Schema", func() {
	var (
		ctx  context.Context
		db   *store.DB
		path string
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, path = openTestDB()
	})

	It("creates every table and seeds ten rules", func() {
		for _, t := range store.Tables {
			_, err := db.Count(ctx, t)
			Expect(err).NotTo(HaveOccurred(), "table %s", t)
		}

		n, err := db.Count(ctx, store.TableRules)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(len(store.DefaultRules)))
		Expect(n).To(Equal(10))
	})

	It("is idempotent and keeps existing rows", func() {
		depts := store.NewRecords[departmentRow, deptKey](db, store.TableDepartment)
		Expect(depts.Insert(ctx, &departmentRow{DepartmentID: "D1", DepartmentName: "HR"})).To(Succeed())

		Expect(store.EnsureSchema(ctx, db, logger.Discard())).To(Succeed())

		n, err := db.Count(ctx, store.TableRules)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(10))

		rows, err := depts.ListAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
	})

	It("does not reseed rules into a non-empty table", func() {
		rules := store.NewRecords[ruleRow, ruleKey](db, store.TableRules)
		Expect(rules.DeleteAll(ctx)).To(Succeed())
		Expect(rules.Insert(ctx, &ruleRow{Title: "Only", Description: "one"})).To(Succeed())

		Expect(store.EnsureSchema(ctx, db, logger.Discard())).To(Succeed())

		rows, err := rules.ListAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Title).To(Equal("Only"))
	})

	It("reopens an existing file without losing data", func() {
		depts := store.NewRecords[departmentRow, deptKey](db, store.TableDepartment)
		Expect(depts.Insert(ctx, &departmentRow{DepartmentID: "D1", DepartmentName: "HR"})).To(Succeed())

		reopened, err := store.Open(dbConfig(path), logger.Discard())
		Expect(err).NotTo(HaveOccurred())
		defer reopened.Close()
		Expect(store.EnsureSchema(ctx, reopened, logger.Discard())).To(Succeed())

		n, err := reopened.Count(ctx, store.TableDepartment)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
	})
})

var _ = Describe("Records", func() {
	var (
		ctx        context.Context
		db         *store.DB
		depts      *store.Records[departmentRow, deptKey]
		employees  *store.Records[employeeRow, empKey]
		attendance *store.Records[attendanceRow, attendanceKey]
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, _ = openTestDB()
		depts = store.NewRecords[departmentRow, deptKey](db, store.TableDepartment)
		employees = store.NewRecords[employeeRow, empKey](db, store.TableEmployee)
		attendance = store.NewRecords[attendanceRow, attendanceKey](db, store.TableAttendance)

		Expect(depts.Insert(ctx, &departmentRow{DepartmentID: "D1", DepartmentName: "HR"})).To(Succeed())
		Expect(employees.Insert(ctx, &employeeRow{EmpID: "E1", Name: "Asha", DepartmentID: strPtr("D1")})).To(Succeed())
	})

	Context("Insert", func() {
		It("rejects a duplicate department name", func() {
			err := depts.Insert(ctx, &departmentRow{DepartmentID: "D2", DepartmentName: "HR"})
			Expect(internal.IsIntegrityError(err)).To(BeTrue())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Details).To(Equal(store.ConstraintDetails{Table: "department", Constraint: "unique"}))

			n, err := db.Count(ctx, store.TableDepartment)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("rejects a duplicate primary key", func() {
			err := employees.Insert(ctx, &employeeRow{EmpID: "E1", Name: "Other"})
			Expect(internal.IsIntegrityError(err)).To(BeTrue())
		})

		It("rejects an employee in an unknown department", func() {
			err := employees.Insert(ctx, &employeeRow{EmpID: "E2", Name: "Ravi", DepartmentID: strPtr("NOPE")})
			Expect(internal.IsIntegrityError(err)).To(BeTrue())
		})

		It("accepts an employee without a department", func() {
			Expect(employees.Insert(ctx, &employeeRow{EmpID: "E2", Name: "Ravi"})).To(Succeed())
		})

		It("rejects a second attendance entry for the same day", func() {
			Expect(attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-01", Status: "Present"})).To(Succeed())
			err := attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-01", Status: "Absent"})
			Expect(internal.IsIntegrityError(err)).To(BeTrue())
		})

		It("rejects a status outside the allowed set", func() {
			err := attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-01", Status: "Late"})
			Expect(internal.IsIntegrityError(err)).To(BeTrue())

			appErr, _ := internal.IsAppError(err)
			Expect(appErr.Details).To(Equal(store.ConstraintDetails{Table: "attendance", Constraint: "check"}))
		})
	})

	Context("ListAll", func() {
		It("returns an empty slice for an empty table", func() {
			rows, err := attendance.ListAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).NotTo(BeNil())
			Expect(rows).To(BeEmpty())
		})
	})

	Context("DeleteOne", func() {
		It("cascades an employee delete to dependent rows", func() {
			Expect(attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-01", Status: "Present"})).To(Succeed())

			n, err := employees.DeleteOne(ctx, empKey("E1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))

			count, err := db.Count(ctx, store.TableAttendance)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("rejects deleting a department that employees reference", func() {
			_, err := depts.DeleteOne(ctx, deptKey("D1"))
			Expect(internal.IsIntegrityError(err)).To(BeTrue())

			n, err := db.Count(ctx, store.TableDepartment)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		It("is a no-op for an unknown key", func() {
			n, err := employees.DeleteOne(ctx, empKey("missing"))
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})

		It("only removes the matching composite key", func() {
			Expect(attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-01", Status: "Present"})).To(Succeed())
			Expect(attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-02", Status: "Absent"})).To(Succeed())

			_, err := attendance.DeleteOne(ctx, attendanceKey{emp: "E1", date: "2024-03-01"})
			Expect(err).NotTo(HaveOccurred())

			rows, err := attendance.ListAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(ConsistOf(attendanceRow{EmployeeID: "E1", Date: "2024-03-02", Status: "Absent"}))
		})
	})

	Context("DeleteAll", func() {
		It("keeps the rules identifier counter", func() {
			rules := store.NewRecords[ruleRow, ruleKey](db, store.TableRules)
			Expect(rules.DeleteAll(ctx)).To(Succeed())

			row := &ruleRow{Title: "New", Description: "rule"}
			Expect(rules.Insert(ctx, row)).To(Succeed())
			Expect(row.ID).To(BeNumerically(">", 10))
		})

		It("empties child tables through the employee cascade", func() {
			Expect(attendance.Insert(ctx, &attendanceRow{EmployeeID: "E1", Date: "2024-03-01", Status: "Present"})).To(Succeed())
			Expect(employees.DeleteAll(ctx)).To(Succeed())

			count, err := db.Count(ctx, store.TableAttendance)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("rejects clearing departments still referenced", func() {
			err := depts.DeleteAll(ctx)
			Expect(internal.IsIntegrityError(err)).To(BeTrue())
		})
	})

	Context("Keys", func() {
		It("lists department and employee identifiers", func() {
			keys, err := db.Keys(ctx, store.TableDepartment)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(Equal([]string{"D1"}))

			keys, err = db.Keys(ctx, store.TableEmployee)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(Equal([]string{"E1"}))
		})

		It("refuses tables nothing references", func() {
			_, err := db.Keys(ctx, store.TableRules)
			Expect(err).To(HaveOccurred())
		})
	})

	It("refuses unknown tables", func() {
		err := db.DeleteAll(ctx, store.Table("sqlite_master"))
		Expect(err).To(MatchError(ContainSubstring("unknown table")))
	})
})

var _ = Describe("RollbackSchema", func() {
	It("drops the tables and lets EnsureSchema rebuild them", func() {
		ctx := context.Background()
		db, _ := openTestDB()

		Expect(store.RollbackSchema(ctx, db, logger.Discard())).To(Succeed())
		_, err := db.Count(ctx, store.TableRules)
		Expect(err).To(HaveOccurred())

		Expect(store.EnsureSchema(ctx, db, logger.Discard())).To(Succeed())
		n, err := db.Count(ctx, store.TableRules)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(10))
	})
})

var _ = Describe("In-memory database", func() {
	It("keeps the schema visible to every caller", func() {
		ctx := context.Background()
		cfg := dbConfig(":memory:")
		cfg.MaxOpenConns = 4
		cfg.MaxIdleConns = 2

		db, err := store.Open(cfg, logger.Discard())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(db.Close)
		Expect(store.EnsureSchema(ctx, db, logger.Discard())).To(Succeed())

		Expect(db.SQL.Stats().MaxOpenConnections).To(Equal(1))

		var wg sync.WaitGroup
		counts := make([]int, 8)
		errs := make([]error, 8)
		for i := range counts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				counts[i], errs[i] = db.Count(ctx, store.TableRules)
			}(i)
		}
		wg.Wait()

		for i := range counts {
			Expect(errs[i]).NotTo(HaveOccurred())
			Expect(counts[i]).To(Equal(10))
		}
	})
})

const legacyTables = `
CREATE TABLE department (department_id TEXT PRIMARY KEY, department_name TEXT UNIQUE NOT NULL);
CREATE TABLE employee (emp_id TEXT PRIMARY KEY, name TEXT NOT NULL, address TEXT, dob DATE, position TEXT, department_id TEXT);
CREATE TABLE leave_record (
    emp_id TEXT, leave_type TEXT, start_date DATE, end_date DATE, status TEXT,
    FOREIGN KEY (emp_id) REFERENCES employee(emp_id) ON DELETE CASCADE,
    PRIMARY KEY (emp_id, start_date, end_date)
);`

var _ = Describe("SchemaGaps", func() {
	It("reports nothing for a freshly provisioned file", func() {
		db, _ := openTestDB()

		gaps, err := store.SchemaGaps(context.Background(), db)

		Expect(err).NotTo(HaveOccurred())
		Expect(gaps).To(BeEmpty())
	})

	It("reports the constraints an older file lacks", func() {
		ctx := context.Background()
		dir := GinkgoT().TempDir()
		db, err := store.Open(dbConfig(filepath.Join(dir, "hrm.db")), logger.Discard())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(db.Close)

		_, err = db.SQL.ExecContext(ctx, legacyTables)
		Expect(err).NotTo(HaveOccurred())
		Expect(store.EnsureSchema(ctx, db, logger.Discard())).To(Succeed())

		gaps, err := store.SchemaGaps(ctx, db)

		Expect(err).NotTo(HaveOccurred())
		Expect(gaps).To(ConsistOf(
			ContainSubstring("employee.department_id"),
			ContainSubstring("leave_record.status"),
		))
	})
})
