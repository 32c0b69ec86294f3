// Package response holds the uniform JSON bodies the API emits.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error writes the error body shared by every failure response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, echo.Map{"error": message})
}

// Success writes a plain success message, used by endpoints that must not
// leak the affected record.
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{"success": message})
}

// JSON writes an arbitrary payload (a record or a list of records).
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Empty writes a bodiless response.
func Empty(c echo.Context, statusCode int) error {
	return c.NoContent(statusCode)
}
