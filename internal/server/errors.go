package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appointmentdomain "github.com/tallertech/tallertech/internal/appointment/domain"
	authdomain "github.com/tallertech/tallertech/internal/auth/domain"
	billingdomain "github.com/tallertech/tallertech/internal/billing/domain"
	catalogdomain "github.com/tallertech/tallertech/internal/catalog/domain"
	clientdomain "github.com/tallertech/tallertech/internal/client/domain"
	consumptiondomain "github.com/tallertech/tallertech/internal/consumption/domain"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
	inspectiondomain "github.com/tallertech/tallertech/internal/inspection/domain"
	reportdomain "github.com/tallertech/tallertech/internal/report/domain"
	vehicledomain "github.com/tallertech/tallertech/internal/vehicle/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidToken):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isClienteValidationError(err),
		isVehiculoValidationError(err),
		isInspeccionValidationError(err),
		isDiagnosticoValidationError(err),
		isServicioValidationError(err),
		isFacturaValidationError(err),
		isConsumoValidationError(err),
		isReporteValidationError(err),
		isCitaValidationError(err),
		isAuthValidationError(err):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, clientdomain.ErrDuplicate),
		errors.Is(err, vehicledomain.ErrDuplicate),
		errors.Is(err, inspectiondomain.ErrDuplicate),
		errors.Is(err, diagnosticdomain.ErrDuplicate),
		errors.Is(err, catalogdomain.ErrDuplicate),
		errors.Is(err, billingdomain.ErrDuplicateItem),
		errors.Is(err, consumptiondomain.ErrDuplicate),
		errors.Is(err, authdomain.ErrDuplicateUser):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, clientdomain.ErrNotFound),
		errors.Is(err, vehicledomain.ErrNotFound),
		errors.Is(err, inspectiondomain.ErrNotFound),
		errors.Is(err, diagnosticdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, billingdomain.ErrNotFound),
		errors.Is(err, consumptiondomain.ErrNotFound),
		errors.Is(err, appointmentdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isReporteValidationError(err error) bool {
	return errors.Is(err, reportdomain.ErrInvalidRango)
}

func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return err.Error()
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}

// classifyErrorForLog labels a request error for the access log.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if vErr := asValidationErrors(err); vErr != nil && len(vErr.Errors) > 0 {
		return "validation_error", vErr.Errors[0].Code
	}
	if isValidationError(err) {
		return "validation_error", validationErrorCode(err)
	}
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidToken):
		return "unauthorized", "unauthorized"
	case isConflictError(err):
		return "conflict", "conflict"
	case isNotFoundError(err):
		return "not_found", "not_found"
	default:
		return "internal_error", "internal_error"
	}
}
