package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware did not run or the token was
// issued without a user identity (admin tokens), either way the request
// cannot act on behalf of a user.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxEmail returns the email claim, used as the audit actor on admin actions.
func ctxEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}
