package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/internal/dto"
	"github.com/GlebRadaev/shopmesh/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/GlebRadaev/shopmesh/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	Profile(ctx context.Context, token string) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new identity with a unique username and password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"username and password required"
//	@Failure		409		{object}	utils.Response	"user exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "user created",
		UserID:  user.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a signed token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"username and password required"
//	@Failure		401		{object}	utils.Response	"invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token: token,
	})
}

// Profile godoc
//
//	@Summary		Current user
//	@Description	Resolve the identity behind the presented token
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"authorization required, invalid token or token expired"
//	@Failure		404	{object}	utils.Response	"user not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	token := pkgauth.TokenFromHeader(r.Header.Get("Authorization"))
	if token == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	user, err := h.authService.Profile(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, pkgauth.ErrTokenExpired):
			utils.RespondWithError(w, http.StatusUnauthorized, "token expired")
		case errors.Is(err, pkgauth.ErrInvalidToken), errors.Is(err, pkgauth.ErrMissingToken):
			utils.RespondWithError(w, http.StatusUnauthorized, "invalid token")
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:       user.ID,
		Username: user.Username,
	})
}
