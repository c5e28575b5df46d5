package response

import (
	"errors"
	"net/http"
	"os"
	"strings"

	apperrors "arfurnish/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

func Paginated(c echo.Context, items interface{}, total int64, limit, offset int) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    items,
		Pagination: &Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, Response{
			Success: false,
			Message: appErr.Message,
		})
	}

	// Unexpected failure; expose detail only outside production.
	message := "An unexpected error occurred"
	if os.Getenv("ENVIRONMENT") != "production" && err != nil {
		message = err.Error()
	}

	return c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: message,
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	message := "Invalid input data"

	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + param
		case "max":
			message = field + " must be at most " + param
		case "gte":
			message = field + " must be " + param + " or greater"
		case "oneof":
			message = field + " must be one of: " + param
		case "email":
			message = field + " must be a valid email address"
		case "url":
			message = field + " must be a valid URL"
		default:
			message = field + " is invalid"
		}
		break
	}

	return c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}
