package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"courseapi/internal/api/v1/dto"
	"courseapi/internal/middleware"
	"courseapi/internal/repository"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessages converts validator failures into client-facing messages.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, "Please provide a value for "+fe.Field())
		case "email":
			msgs = append(msgs, "The email address you provided is not valid email")
		default:
			msgs = append(msgs, "Invalid value for "+fe.Field())
		}
	}
	return msgs
}

func writeValidationError(w http.ResponseWriter, msgs []string) {
	middleware.WriteJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
		Message: "Validation failed",
		Errors:  msgs,
	})
}

// writeStorageError maps storage constraint violations to 400 and everything
// else to the global 500 response.
func writeStorageError(w http.ResponseWriter, r *http.Request, errs *middleware.ErrorWriter, err error) {
	var vErr *repository.ValidationError
	if errors.As(err, &vErr) {
		writeValidationError(w, vErr.Messages)
		return
	}
	errs.InternalError(w, r, err)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	middleware.WriteJSON(w, status, middleware.MessageResponse{Message: msg})
}
