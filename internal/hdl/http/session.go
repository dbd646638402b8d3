package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/hr-auth/internal/config"
	"github.com/JMURv/hr-auth/internal/ctrl"
	"github.com/JMURv/hr-auth/internal/dto"
	"github.com/JMURv/hr-auth/internal/hdl"
	mid "github.com/JMURv/hr-auth/internal/hdl/http/middleware"
	"github.com/JMURv/hr-auth/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterSessionRoutes() {
	h.router.With(mid.Auth(h.au)).Get("/api/auth/sessions", h.listSessions)
	h.router.With(mid.Auth(h.au)).Delete("/api/auth/sessions", h.revokeAllSessions)
	h.router.With(mid.Auth(h.au)).Delete("/api/auth/sessions/{id}", h.revokeSession)
	h.router.With(mid.Auth(h.au)).Patch("/api/auth/sessions/{id}", h.updateSessionLabel)
}

func uidFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return uuid.Nil, false
	}

	return uid, true
}

// listSessions powers the user-facing security page.
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromContext(w, r)
	if !ok {
		return
	}

	filters := map[string]any{}
	if label := r.URL.Query().Get("label"); label != "" {
		filters["device_label"] = label
	}

	res, err := h.ctrl.ListActiveSessions(r.Context(), uid, filters)
	if err != nil {
		if errors.Is(err, ctrl.ErrServiceUnavailable) {
			utils.ErrResponse(w, http.StatusServiceUnavailable, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, dto.SessionListResponse{Data: res})
}

func (h *Handler) revokeAllSessions(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromContext(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.RevokeAllSessions(r.Context(), uid); err != nil {
		if errors.Is(err, ctrl.ErrServiceUnavailable) {
			utils.ErrResponse(w, http.StatusServiceUnavailable, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.ClearAuthCookies(w, h.conf)
	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromContext(w, r)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err = h.ctrl.RevokeSession(r.Context(), uid, sessionID); err != nil {
		if errors.Is(err, ctrl.ErrServiceUnavailable) {
			utils.ErrResponse(w, http.StatusServiceUnavailable, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func (h *Handler) updateSessionLabel(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromContext(w, r)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	req := &dto.UpdateSessionRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err = h.ctrl.UpdateSessionLabel(r.Context(), uid, sessionID, req.Label); err != nil {
		switch {
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrServiceUnavailable):
			utils.ErrResponse(w, http.StatusServiceUnavailable, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}
