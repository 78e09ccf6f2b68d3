package auth

import "github.com/gorilla/sessions"

const (
	// cookie holding the staff session
	SessionName = "branchadmin_session"

	// form field the admin pages render the token into
	TokenFieldName = "csrfmiddlewaretoken"

	DefaultHeaderName = "X-CSRFToken"

	sessionTokenKey = "csrf_token"
	tokenBytes      = 32

	tenantContextKey = "tenant"
)

// issues and verifies the anti-forgery token bound to the staff session
type CSRF struct {
	store      sessions.Store
	headerName string
}
