package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user ID that the JWT middleware
// stored on the context. Returns 0 when absent or malformed.
func getUserID(c echo.Context) uint64 {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t
	case int:
		return uint64(t)
	case int64:
		return uint64(t)
	case float64:
		return uint64(t)
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// parseIDParam parses a numeric :id path parameter.
func parseIDParam(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
