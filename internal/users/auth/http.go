// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/constants"
	requestutil "github.com/soyounglim/gallerim/internal/platform/request"
	"github.com/soyounglim/gallerim/internal/platform/respond"
	"github.com/soyounglim/gallerim/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the admin authentication endpoints.
//
// The access token travels in the response body; the refresh token only ever
// lives in an HttpOnly cookie scoped to the auth path.
type Handler struct {
	service *Service
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/v1/admin/auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)
	return router
}

// # Wire Shapes

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string          `json:"accessToken"`
	Account     accountResponse `json:"account"`
}

type accountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// # Endpoints

/*
POST /api/v1/admin/auth/login.

Description: Verifies credentials, returns an access JWT and sets the refresh
token cookie.

Response:
  - 200: sessionResponse
  - 400: Validation failure
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLen)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session)
	respond.OK(writer, toSessionResponse(session))
}

/*
POST /api/v1/admin/auth/refresh.

Description: Rotates the refresh token from the cookie and issues a new pair.

Response:
  - 200: sessionResponse with the new access token
  - 401: Missing, expired, or already-used refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		respond.Error(writer, request, apperr.Unauthorized("Refresh token missing"))
		return
	}

	session, err := handler.service.Refresh(request.Context(), cookie.Value)
	if err != nil {
		handler.clearRefreshCookie(writer)
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session)
	respond.OK(writer, toSessionResponse(session))
}

/*
POST /api/v1/admin/auth/logout.

Description: Revokes the refresh session and clears the cookie. Always 204:
logout is idempotent.
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil {
		_ = handler.service.Logout(request.Context(), cookie.Value)
	}

	handler.clearRefreshCookie(writer)
	respond.NoContent(writer)
}

// # Helpers

func toSessionResponse(session *LoginSession) sessionResponse {
	return sessionResponse{
		AccessToken: session.AccessToken,
		Account: accountResponse{
			ID:       session.Account.ID,
			Username: session.Account.Username,
			Role:     string(session.Account.Role),
		},
	}
}

func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, session *LoginSession) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    session.RefreshToken,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  session.RefreshTokenExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (handler *Handler) clearRefreshCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
