package leave

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hrm/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateLeaveDTO) (*Leave, error)
	List(ctx context.Context) ([]Leave, error)
	Delete(ctx context.Context, empID, startDate, endDate string) error
	DeleteAll(ctx context.Context) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateLeaveDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	lv, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, lv)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, LeavesResponse{Leaves: rows})
}

// Types lists the leave types the form suggests. Storage accepts any text.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, TypesResponse{LeaveTypes: Types})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(),
		chi.URLParam(r, "empID"), chi.URLParam(r, "startDate"), chi.URLParam(r, "endDate"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAll(r.Context()); err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
