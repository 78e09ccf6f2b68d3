package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"

	"codeberg.org/branchadmin/server/internal/errors"
	"codeberg.org/branchadmin/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// builds the session cookie store used for staff sessions
func NewCookieStore(secret string, secure bool) (*sessions.CookieStore, error) {
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}

	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 8, // one working shift
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return store, nil
}

func NewCSRF(store sessions.Store, headerName string) *CSRF {
	if headerName == "" {
		headerName = DefaultHeaderName
	}

	return &CSRF{
		store:      store,
		headerName: headerName,
	}
}

func (x *CSRF) HeaderName() string {
	return x.headerName
}

// returns the session token, issuing and saving a new one when absent
func (x *CSRF) Token(c *gin.Context) (string, error) {
	session, err := x.store.Get(c.Request, SessionName)
	if err != nil {
		// a cookie signed with an old secret is replaced by a fresh session
		logger.Debug("discarding unreadable session", "error", err)
	}

	if token, ok := session.Values[sessionTokenKey].(string); ok && token != "" {
		return token, nil
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	session.Values[sessionTokenKey] = token
	if err := session.Save(c.Request, c.Writer); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	return token, nil
}

// rejects unsafe requests whose header does not match the session token
func (x *CSRF) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		provided := c.GetHeader(x.headerName)
		if provided == "" {
			errors.Forbidden(c, "CSRF token missing")
			return
		}

		session, err := x.store.Get(c.Request, SessionName)
		if err != nil {
			errors.Forbidden(c, "CSRF token invalid")
			return
		}

		expected, _ := session.Values[sessionTokenKey].(string)
		if expected == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			errors.Forbidden(c, "CSRF token invalid")
			return
		}

		c.Next()
	}
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
