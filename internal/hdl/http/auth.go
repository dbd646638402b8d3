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
)

func (h *Handler) RegisterAuthRoutes() {
	h.router.With(mid.Device).Post("/api/auth/login", h.login)
	h.router.With(mid.Device).Post("/api/auth/refresh", h.refresh)
	h.router.Post("/api/auth/logout", h.logout)
}

// login issues a token pair for an operator whose credentials were
// already verified by the account service.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	req := &dto.LoginRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req, &d)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrUnauthorized):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrAlreadyExists):
			utils.ErrResponse(w, http.StatusConflict, err)
		case errors.Is(err, ctrl.ErrServiceUnavailable):
			utils.ErrResponse(w, http.StatusServiceUnavailable, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SetAuthCookies(w, h.conf, res.Access, res.Refresh)
	utils.SuccessResponse(w, http.StatusOK, dto.TokenPair{Access: res.Access})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	cookie, err := r.Cookie(config.RefreshCookieName)
	if err != nil {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), cookie.Value, &d)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrSessionExpired):
			utils.ClearAuthCookies(w, h.conf)
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrUnauthorized):
			utils.ClearAuthCookies(w, h.conf)
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrServiceUnavailable):
			utils.ErrResponse(w, http.StatusServiceUnavailable, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SetAuthCookies(w, h.conf, res.Access, res.Refresh)
	utils.SuccessResponse(w, http.StatusOK, dto.TokenPair{Access: res.Access})
}

// logout always succeeds from the caller's perspective, even with a
// malformed or missing refresh cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(config.RefreshCookieName); err == nil {
		h.ctrl.Logout(r.Context(), cookie.Value)
	}

	utils.ClearAuthCookies(w, h.conf)
	utils.StatusResponse(w, http.StatusOK)
}
