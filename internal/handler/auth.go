package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/karev/london-stays/internal/config"
	"github.com/karev/london-stays/internal/model"
	"github.com/karev/london-stays/internal/repository"
	"github.com/karev/london-stays/internal/utils"
)

// sessionCookie is the name of the cookie carrying the signed session token.
const sessionCookie = "session"

// AuthHandler bundles dependencies for the demo auth endpoints. Accounts
// live in the same relational store as the dataset, with bcrypt-hashed
// credentials; sessions are signed tokens whose hashes are persisted so
// logout revokes them server-side.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Sessions *repository.SessionRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, s *repository.SessionRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type authResp struct {
	Authenticated bool     `json:"authenticated"`
	User          userPart `json:"user"`
}

// Signup: create a local account and open a session immediately.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Password, req.Username, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return dbError(c, err)
	}

	u := model.User{ID: uid, Username: req.Username, DisplayName: req.Username}
	if err := h.openSession(ctx, c, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "open session failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		Authenticated: true,
		User:          userPart{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName},
	})
}

// Login: verify credentials and open a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
		}
		return dbError(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}

	if err := h.openSession(ctx, c, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "open session failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		Authenticated: true,
		User:          userPart{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName},
	})
}

// User reports whether the request carries a live session. Missing or
// invalid cookies are not errors: the client uses this endpoint to decide
// which header to render, so the answer is always 200.
func (h *AuthHandler) User(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, ok := h.currentUser(ctx, c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
	}
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
		}
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, authResp{
		Authenticated: true,
		User:          userPart{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName},
	})
}

// Logout revokes the current session row and expires the cookie. Logging
// out without a session is a no-op success.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if err := h.Sessions.Revoke(ctx, utils.HashSessionRaw(cookie.Value)); err != nil {
			return dbError(c, err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// openSession issues a signed session token, persists its hash and sets the
// cookie on the response.
func (h *AuthHandler) openSession(ctx context.Context, c echo.Context, userID int64) error {
	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, userID, h.Cfg.SessionTTLHrs)
	if err != nil {
		return err
	}
	if err := h.Sessions.Store(ctx, userID, utils.HashSessionRaw(tok.Token), tok.Exp); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
	})
	return nil
}

// currentUser resolves the session cookie to a user id. Both the token
// signature and the persisted session row must check out.
func (h *AuthHandler) currentUser(ctx context.Context, c echo.Context) (int64, bool) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	uid, err := utils.ParseSessionToken(h.Cfg.JWTSecret, cookie.Value)
	if err != nil {
		return 0, false
	}
	sessionUID, err := h.Sessions.Validate(ctx, utils.HashSessionRaw(cookie.Value))
	if err != nil || sessionUID != uid {
		return 0, false
	}
	return uid, true
}
