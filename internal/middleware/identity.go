package middleware

// identity.go defines helper functions shared across middleware files.
// Currently it provides a user identifier extraction used by the rate
// limiter to build per-user bucket keys.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the request context as
// populated by JWTAuth. JWT numeric claims arrive as float64; tokens
// issued elsewhere may carry the subject as a string. It returns
// "anon" when no user is authenticated.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case float64:
        return strconv.FormatUint(uint64(v), 10)
    case uint64:
        return strconv.FormatUint(v, 10)
    case int64:
        return strconv.FormatInt(v, 10)
    }
    return "anon"
}
