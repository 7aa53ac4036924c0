package handler

import (
	"errors"
	"net/http"

	"github.com/copool/chat-service/internal/auth"
	"github.com/copool/chat-service/internal/dto"
	"github.com/labstack/echo/v4"
)

// AuthHandler is a thin adapter in front of the auth provider; all sign-in
// logic lives behind the auth.Provider seam.
type AuthHandler struct {
	provider auth.Provider
}

func NewAuthHandler(provider auth.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/v1/auth")
	group.POST("/sign-in", h.SignIn)
	group.GET("/callback", h.Callback)
}

// SignIn accepts a JSON or form body with the user's email and starts the
// provider's sign-in flow.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	result, err := h.provider.SignIn(c.Request().Context(), req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not start sign-in")
	}

	return c.JSON(http.StatusOK, dto.SignInResponse{RedirectURL: result.RedirectURL})
}

func (h *AuthHandler) Callback(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}

	session, err := h.provider.Verify(c.Request().Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.Is(err, auth.ErrUnknownUser):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "could not complete sign-in")
		}
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{
		Token:  session.Token,
		UserID: session.UserID,
		Email:  session.Email,
	})
}
