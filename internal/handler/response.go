package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Response is the JSON envelope used for every API response.
type Response struct {
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Meta      *ListMeta   `json:"meta,omitempty"`
	Errors    []Violation `json:"errors,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ListMeta carries pagination metadata on list responses.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// Violation describes a single failed validation rule.
type Violation struct {
	Field       string   `json:"field"`
	Constraints []string `json:"constraints"`
}

// RespondOK writes a success envelope.
func RespondOK(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Response{
		Status:    "success",
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// RespondError writes an error envelope.
func RespondError(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// RespondViolations writes a 400 envelope with one entry per violated rule.
func RespondViolations(c echo.Context, violations []Violation) error {
	return c.JSON(http.StatusBadRequest, Response{
		Status:    "error",
		Message:   "validation failed",
		Errors:    violations,
		Timestamp: time.Now().UTC(),
	})
}

// violationsFrom converts validator errors into wire-level violations. Field
// names come from the json tag, matching what the client actually sent.
func violationsFrom(err error) []Violation {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "body", Constraints: []string{err.Error()}}}
	}
	violations := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, Violation{
			Field:       fe.Field(),
			Constraints: []string{constraintMessage(fe)},
		})
	}
	return violations
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
}
