package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// getIntParam reads an integer query parameter, falling back to defaultValue when absent or malformed
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getInt64Param reads a 64-bit integer query parameter
func getInt64Param(c echo.Context, name string, defaultValue int64) int64 {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int64
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
