package authhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/apperror"
	"ems/internal/domain/auth"
	"ems/internal/platform/logger"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Service interface {
	Register(ctx context.Context, in auth.RegisterInput) (auth.User, error)
	Login(ctx context.Context, email, password string) (auth.Session, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the public credential endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
}

// RegisterProtectedRoutes mounts endpoints that need an authenticated caller.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/me", h.HandleMe)
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	user, err := h.Service.Register(r.Context(), auth.RegisterInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	logger.From(r.Context()).Info("user registered", "userId", user.ID, "role", user.Role)
	api.OK(w, map[string]string{"message": "User registered."})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	session, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if apperror.Is(err, apperror.KindAuth) {
			api.Fail(w, http.StatusUnauthorized, string(apperror.KindAuth), auth.ErrInvalidCredentials.Message, middleware.GetRequestID(r.Context()))
			return
		}
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, session)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.OK(w, map[string]string{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     user.Role,
	})
}
