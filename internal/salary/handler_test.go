package salary_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/hrm/internal/salary"
	salarySqlite "github.com/frahmantamala/hrm/internal/salary/sqlite"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/frahmantamala/hrm/internal/store/storetest"
	"github.com/frahmantamala/hrm/internal/transport"
	"github.com/frahmantamala/hrm/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Salary Handler Integration", func() {
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

		_, err = db.SQL.ExecContext(ctx, `INSERT INTO employee (emp_id, name) VALUES ('E1', 'Asha')`)
		Expect(err).NotTo(HaveOccurred())

		service := salary.NewService(salarySqlite.NewSalaryRepository(db), logger.Discard(), 5*time.Second)
		handler := salary.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		router = chi.NewRouter()
		router.Post("/salaries", handler.Create)
		router.Get("/salaries", handler.List)
		router.Get("/salaries/payment-methods", handler.PaymentMethods)
		router.Delete("/salaries", handler.DeleteAll)
		router.Delete("/salaries/{empID}/{paymentDate}", handler.Delete)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should add a payment and list it with the employee name", func() {
		w := do(http.MethodPost, "/salaries",
			`{"emp_id":"E1","amount":50000,"payment_date":"2024-01-31","bank_details":"XXXX1234","payment_method":"Cash"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = do(http.MethodGet, "/salaries", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var response salary.SalariesResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Salaries).To(HaveLen(1))
		Expect(response.Salaries[0].Name).To(Equal("Asha"))
		Expect(response.Salaries[0].PaymentDate.String()).To(Equal("2024-01-31"))
	})

	It("should answer 409 for a duplicate payment date", func() {
		body := `{"emp_id":"E1","amount":50000,"payment_date":"2024-01-31"}`
		Expect(do(http.MethodPost, "/salaries", body).Code).To(Equal(http.StatusCreated))

		w := do(http.MethodPost, "/salaries", body)

		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(w.Body.String()).To(ContainSubstring("Invalid Employee ID or duplicate payment date."))
	})

	It("should answer 409 for an unknown employee", func() {
		w := do(http.MethodPost, "/salaries", `{"emp_id":"E9","amount":1,"payment_date":"2024-01-31"}`)
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("should delete one payment by employee and date", func() {
		do(http.MethodPost, "/salaries", `{"emp_id":"E1","amount":1,"payment_date":"2024-01-31"}`)
		do(http.MethodPost, "/salaries", `{"emp_id":"E1","amount":2,"payment_date":"2024-02-29"}`)

		Expect(do(http.MethodDelete, "/salaries/E1/2024-01-31", "").Code).To(Equal(http.StatusNoContent))

		var dates []string
		Expect(db.SQL.SelectContext(ctx, &dates, `SELECT payment_date FROM salary`)).To(Succeed())
		Expect(dates).To(HaveLen(1))
		Expect(dates[0]).To(HavePrefix("2024-02-29"))
	})

	It("should answer 400 for a malformed date in the path", func() {
		Expect(do(http.MethodDelete, "/salaries/E1/last-month", "").Code).To(Equal(http.StatusBadRequest))
	})

	It("should serve the suggested payment methods", func() {
		w := do(http.MethodGet, "/salaries/payment-methods", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var response salary.PaymentMethodsResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.PaymentMethods).To(Equal(salary.PaymentMethods))
	})

	It("should clear the table", func() {
		do(http.MethodPost, "/salaries", `{"emp_id":"E1","amount":1,"payment_date":"2024-01-31"}`)

		Expect(do(http.MethodDelete, "/salaries", "").Code).To(Equal(http.StatusNoContent))

		n, err := db.Count(ctx, store.TableSalary)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})
})
