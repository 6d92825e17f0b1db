package handler

import (
	"heritageloom/internal/session"
	"heritageloom/pkg/logger"
	"heritageloom/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sess, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		logger.Warn("failed login for %q from %s", req.Username, c.RealIP())
		return response.Error(c, err)
	}

	logger.Info("admin %q logged in", sess.Username)
	return response.Success(c, sess)
}

// Logout exists for symmetry and audit logging; tokens are dropped
// client-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	if username, ok := c.Get("username").(string); ok {
		logger.Info("admin %q logged out", username)
	}
	return response.Success(c, map[string]string{"status": "logged_out"})
}
