package auth

import (
	"net/http"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/transport"
	"github.com/frahmantamala/hrm/pkg/logger"
)

type ServiceAPI interface {
	Login(dto LoginDTO) (LoginResponse, error)
	Logout(sessionID string)
	ResetCredentials(dto ResetCredentialsDTO) error
	Authorize(token string) (Session, error)
	CurrentSession(sessionID string) (SessionResponse, error)
	SelectSection(sessionID string, dto SelectSectionDTO) (SessionResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	resp, err := h.Service.Login(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var dto ResetCredentialsDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	if err := h.Service.ResetCredentials(dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Credentials updated. Please log in again."})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Service.Logout(internal.SessionIDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.CurrentSession(internal.SessionIDFromContext(r.Context()))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) SelectSection(w http.ResponseWriter, r *http.Request) {
	var dto SelectSectionDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	resp, err := h.Service.SelectSection(internal.SessionIDFromContext(r.Context()), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// SessionMiddleware admits requests carrying the token of the live session
// and puts the session id on the request context.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteAppError(w, internal.NewUnauthorizedError("missing authorization token", internal.ErrCodeInvalidToken))
			return
		}

		sess, err := h.Service.Authorize(token)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}

		ctx := internal.ContextWithSessionID(r.Context(), sess.ID)
		ctx = logger.With(ctx, "session_id", sess.ID, "section", sess.Section)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
