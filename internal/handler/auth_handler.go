package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	appErr "prepository/internal/pkg/errors"
	"prepository/internal/pkg/response"
	"prepository/internal/service"
)

const minPasswordLen = 6

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *authRequest) validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return appErr.Invalidf("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return appErr.Invalidf("email is not a valid address")
	}
	if len(r.Password) < minPasswordLen {
		return appErr.Invalidf("password must be at least %d characters long", minPasswordLen)
	}
	return nil
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		handleError(c, err)
		return
	}
	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, appErr.ErrConflict) {
			response.Error(c, http.StatusConflict, "conflict", "email already registered")
			return
		}
		handleError(c, err)
		return
	}
	response.Created(c, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "email and password are required")
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "token": token})
}

// Logout is stateless; the client just discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, gin.H{"ok": true})
}
