package utils

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JMURv/hr-auth/internal/config"
	"github.com/JMURv/hr-auth/internal/dto"
	"github.com/JMURv/hr-auth/internal/hdl"
	"github.com/JMURv/hr-auth/internal/hdl/validation"
)

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ParseAndValidate decodes the JSON body into req and runs struct
// validation, writing the error response itself on failure.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validation.Validate(req); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	d, ok := ctx.Value(config.DeviceKey).(dto.DeviceRequest)
	return d, ok
}

func sameSite(policy string) http.SameSite {
	switch policy {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

// SetAuthCookies delivers the pair: the access token in a short-lived
// cookie for the middleware, the refresh token HTTP-only and scoped to
// the auth path so client script never sees it. Only the sliding
// window is reflected in the cookie max-age; the absolute ceiling and
// idle timeout are enforced server-side.
func SetAuthCookies(w http.ResponseWriter, conf config.AuthConfig, access, refresh string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    access,
			MaxAge:   int(conf.AccessTTL.Seconds()),
			HttpOnly: true,
			Secure:   conf.Cookie.Secure,
			Path:     "/",
			SameSite: sameSite(conf.Cookie.SameSite),
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    refresh,
			MaxAge:   int(conf.RefreshTTL.Seconds()),
			HttpOnly: true,
			Secure:   conf.Cookie.Secure,
			Path:     conf.Cookie.Path,
			SameSite: sameSite(conf.Cookie.SameSite),
		},
	)
}

func ClearAuthCookies(w http.ResponseWriter, conf config.AuthConfig) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   conf.Cookie.Secure,
			Path:     "/",
			SameSite: sameSite(conf.Cookie.SameSite),
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   conf.Cookie.Secure,
			Path:     conf.Cookie.Path,
			SameSite: sameSite(conf.Cookie.SameSite),
		},
	)
}
