package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type registerRequest struct {
	FullName  string `json:"full_name"  validate:"required"`
	UserClass string `json:"user_class" validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public view of an account. It never carries the hash.
type userResponse struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	UserClass string `json:"user_class"`
	Email     string `json:"email"`
	Token     string `json:"token,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Username:  u.Username,
		FullName:  u.FullName,
		UserClass: u.UserClass,
		Email:     u.Email,
	}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  Envelope{data=userResponse}
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FullName:  req.FullName,
		UserClass: req.UserClass,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, Respond("failed register user", nil, "username already taken"))
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, Respond(statusInvalidData, nil, "username and password are required"))
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("failed register user")
		return c.JSON(http.StatusInternalServerError, Respond("failed register user", nil, msgInternal))
	}

	return success(c, http.StatusCreated, toUserResponse(user))
}

// Login authenticates a user. A token is returned when signing is enabled.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Envelope{data=userResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusNotFound, Respond("invalid user login", nil, "wrong name or password"))
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("failed login user")
		return c.JSON(http.StatusInternalServerError, Respond("failed login user", nil, msgInternal))
	}

	resp := toUserResponse(result.User)
	resp.Token = result.Token
	return success(c, http.StatusOK, resp)
}
