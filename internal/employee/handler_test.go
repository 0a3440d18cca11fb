package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/hrm/internal/department"
	"github.com/frahmantamala/hrm/internal/employee"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/frahmantamala/hrm/internal/store/storetest"
	"github.com/frahmantamala/hrm/internal/transport"
	"github.com/frahmantamala/hrm/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		ctx    context.Context
		db     *store.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = storetest.Open(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(db.Close)

		Expect(department.NewRepository(db).Insert(ctx, &department.Department{DepartmentID: "D1", DepartmentName: "HR"})).To(Succeed())

		service := employee.NewService(employee.NewRepository(db), logger.Discard(), 5*time.Second)
		handler := employee.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		router = chi.NewRouter()
		router.Post("/employees", handler.Create)
		router.Get("/employees", handler.List)
		router.Get("/employees/ids", handler.IDs)
		router.Delete("/employees", handler.DeleteAll)
		router.Delete("/employees/{empID}", handler.Delete)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should round-trip an employee", func() {
		w := do(http.MethodPost, "/employees",
			`{"emp_id":"E1","name":"Asha","address":"12 Lake Rd","dob":"1990-05-17","position":"Analyst","department_id":"D1"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = do(http.MethodGet, "/employees", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var response employee.EmployeesResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Employees).To(HaveLen(1))

		emp := response.Employees[0]
		Expect(emp.EmpID).To(Equal("E1"))
		Expect(emp.DOB.String()).To(Equal("1990-05-17"))
		Expect(*emp.DepartmentID).To(Equal("D1"))
	})

	It("should answer 409 for an unknown department", func() {
		w := do(http.MethodPost, "/employees", `{"emp_id":"E1","name":"Asha","department_id":"D9"}`)

		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(w.Body.String()).To(ContainSubstring("Employee ID already exists or invalid foreign key."))

		n, err := db.Count(ctx, store.TableEmployee)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})

	It("should answer 400 for a malformed date", func() {
		w := do(http.MethodPost, "/employees", `{"emp_id":"E1","name":"Asha","dob":"yesterday"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_DATE"))
	})

	It("should cascade a delete to attendance rows", func() {
		Expect(do(http.MethodPost, "/employees", `{"emp_id":"E1","name":"Asha"}`).Code).To(Equal(http.StatusCreated))
		_, err := db.SQL.ExecContext(ctx, `INSERT INTO attendance (employee_id, date, status) VALUES ('E1', '2024-03-01', 'Present')`)
		Expect(err).NotTo(HaveOccurred())

		Expect(do(http.MethodDelete, "/employees/E1", "").Code).To(Equal(http.StatusNoContent))

		n, err := db.Count(ctx, store.TableAttendance)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})

	It("should remove only the deleted employee's dependent rows", func() {
		for _, id := range []string{"E1", "E2"} {
			Expect(do(http.MethodPost, "/employees", `{"emp_id":"`+id+`","name":"`+id+`"}`).Code).To(Equal(http.StatusCreated))
			_, err := db.SQL.ExecContext(ctx, `INSERT INTO salary (emp_id, amount, payment_date) VALUES (?, 1000, '2024-01-31')`, id)
			Expect(err).NotTo(HaveOccurred())
			_, err = db.SQL.ExecContext(ctx, `INSERT INTO attendance (employee_id, date, status) VALUES (?, '2024-03-01', 'Present')`, id)
			Expect(err).NotTo(HaveOccurred())
			_, err = db.SQL.ExecContext(ctx, `INSERT INTO leave_record (emp_id, leave_type, start_date, end_date, status) VALUES (?, 'Sick Leave', '2024-03-04', '2024-03-05', 'Pending')`, id)
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(do(http.MethodDelete, "/employees/E1", "").Code).To(Equal(http.StatusNoContent))

		for table, query := range map[string]string{
			"salary":       `SELECT emp_id FROM salary`,
			"attendance":   `SELECT employee_id FROM attendance`,
			"leave_record": `SELECT emp_id FROM leave_record`,
		} {
			var owners []string
			Expect(db.SQL.SelectContext(ctx, &owners, query)).To(Succeed())
			Expect(owners).To(Equal([]string{"E2"}), table)
		}
	})

	It("should list ids and clear the table", func() {
		do(http.MethodPost, "/employees", `{"emp_id":"E2","name":"Ravi"}`)
		do(http.MethodPost, "/employees", `{"emp_id":"E1","name":"Asha"}`)

		w := do(http.MethodGet, "/employees/ids", "")
		var ids employee.IDsResponse
		Expect(json.NewDecoder(w.Body).Decode(&ids)).To(Succeed())
		Expect(ids.EmployeeIDs).To(Equal([]string{"E1", "E2"}))

		Expect(do(http.MethodDelete, "/employees", "").Code).To(Equal(http.StatusNoContent))
		n, err := db.Count(ctx, store.TableEmployee)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})
})
