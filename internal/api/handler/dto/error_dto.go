package dto

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx reply. The title wording and the
// exception field mirror what API consumers already parse.
type ErrorResponse struct {
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Exception string    `json:"exception"`
	Details   []string  `json:"details"`
}

func NewErrorResponse(status int, exception string, details []string) ErrorResponse {
	if len(details) == 0 {
		details = []string{http.StatusText(status)}
	}
	return ErrorResponse{
		Title:     fmt.Sprintf("%s ! Consult the documentation", http.StatusText(status)),
		Timestamp: time.Now(),
		Status:    status,
		Exception: exception,
		Details:   details,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the declarative struct tags against a request DTO and returns
// one human-readable violation per failed field.
func Validate(req any) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"request body could not be validated"}
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, describeViolation(fieldErr))
	}
	return violations
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a well-formed email address", fe.Field())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
