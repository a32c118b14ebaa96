package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"apptbook/internal/config"
	"apptbook/internal/model"
	"apptbook/internal/repository"
	"apptbook/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. Registration
// and login keep the legacy success/message response shape the frontend
// binds to, while login additionally issues a JWT access token plus a
// rotated refresh token; every privileged endpoint validates the access
// token instead of trusting a client-supplied username.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type loginResp struct {
	Success  bool      `json:"success"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Access   tokenPart `json:"access"`
	Refresh  tokenPart `json:"refresh"`
}

// Register creates a user with role "user". Validation and conflict
// failures come back as HTTP 200 with a success:false body; the status
// code is not part of this API's error taxonomy.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": "Missing fields"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": "Missing fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Username, req.Password, model.RoleUser, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusOK, echo.Map{"success": false, "message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "create user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Login verifies credentials and returns identity plus a token pair.
// Unknown username and wrong password produce the same bare
// {success:false} so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, echo.Map{"success": false})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusOK, echo.Map{"success": false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusOK, echo.Map{"success": false})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusOK, echo.Map{"success": false})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}

	return c.JSON(http.StatusOK, loginResp{
		Success:  true,
		Username: u.Username,
		Role:     u.Role,
		Access:   tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh:  tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Refresh exchanges a valid refresh token for a new token pair, revoking
// the old refresh token (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "load user failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue access failed"})
	}
	newRef, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(newRef.Raw), newRef.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username": u.Username,
		"role":     u.Role,
		"access":   tokenPart{Token: access.Token, Expires: access.Exp},
		"refresh":  tokenPart{Token: newRef.Raw, Expires: newRef.Exp},
	})
}

// Logout revokes the refresh token given in the body, ending that
// session. Access tokens are short-lived and simply expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me echoes the identity claims of the presented access token.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
		"role":     c.Get("role"),
	})
}
