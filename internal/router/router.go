package router

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"usersvc/internal/config"
	apperrors "usersvc/internal/errors"
	"usersvc/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(Timeout(requestTimeout))

	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler(cfg)

	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.POST("/users", userHandler.CreateUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo. Struct fields report under their
// json tag name so violations match the wire format.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// errorHandler maps every error that escapes a handler onto the response
// envelope. Unknown errors collapse to a generic 500; the full chain is only
// logged, and echoed to the caller outside production.
func errorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "internal server error"

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			code = echoErr.Code
			message = fmt.Sprintf("%v", echoErr.Message)
		} else {
			httpErr := apperrors.MapErrorToHTTP(err)
			code = httpErr.StatusCode
			message = httpErr.Message
		}

		if code >= http.StatusInternalServerError {
			logrus.WithError(err).
				WithField("method", c.Request().Method).
				WithField("path", c.Request().URL.Path).
				Error("request failed")
			if !cfg.IsProduction() {
				message = err.Error()
			}
		}

		if writeErr := handler.RespondError(c, code, message); writeErr != nil {
			logrus.WithError(writeErr).Error("write error response")
		}
	}
}
