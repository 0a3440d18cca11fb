package department_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/hrm/internal/department"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/frahmantamala/hrm/internal/store/storetest"
	"github.com/frahmantamala/hrm/internal/transport"
	"github.com/frahmantamala/hrm/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db     *store.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = storetest.Open(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(db.Close)

		service := department.NewService(department.NewRepository(db), logger.Discard(), 5*time.Second)
		handler := department.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		router = chi.NewRouter()
		router.Post("/departments", handler.Create)
		router.Get("/departments", handler.List)
		router.Get("/departments/ids", handler.IDs)
		router.Delete("/departments", handler.DeleteAll)
		router.Delete("/departments/{departmentID}", handler.Delete)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should add and list departments", func() {
		w := do(http.MethodPost, "/departments", `{"department_id":"D1","department_name":"HR"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = do(http.MethodGet, "/departments", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response department.DepartmentsResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Departments).To(ConsistOf(department.Department{DepartmentID: "D1", DepartmentName: "HR"}))
	})

	It("should answer 409 for a duplicate name", func() {
		Expect(do(http.MethodPost, "/departments", `{"department_id":"D1","department_name":"HR"}`).Code).To(Equal(http.StatusCreated))

		w := do(http.MethodPost, "/departments", `{"department_id":"D2","department_name":"HR"}`)

		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(w.Body.String()).To(ContainSubstring("Department ID already exists."))
	})

	It("should list ids for the employee form", func() {
		do(http.MethodPost, "/departments", `{"department_id":"D2","department_name":"Ops"}`)
		do(http.MethodPost, "/departments", `{"department_id":"D1","department_name":"HR"}`)

		w := do(http.MethodGet, "/departments/ids", "")

		var response department.IDsResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.DepartmentIDs).To(Equal([]string{"D1", "D2"}))
	})

	It("should delete one and then all departments", func() {
		do(http.MethodPost, "/departments", `{"department_id":"D1","department_name":"HR"}`)
		do(http.MethodPost, "/departments", `{"department_id":"D2","department_name":"Ops"}`)

		Expect(do(http.MethodDelete, "/departments/D1", "").Code).To(Equal(http.StatusNoContent))
		n, err := db.Count(context.Background(), store.TableDepartment)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))

		Expect(do(http.MethodDelete, "/departments", "").Code).To(Equal(http.StatusNoContent))
		n, err = db.Count(context.Background(), store.TableDepartment)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})

	It("should reject unknown body fields", func() {
		w := do(http.MethodPost, "/departments", `{"id":"D1"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
