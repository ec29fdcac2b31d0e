package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

func init() {
	// Report validation problems under the JSON key the client sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingDetails turns a binding failure into a field-level problem list.
func bindingDetails(err error) []string {
	if err == nil {
		return nil
	}

	if err == io.EOF {
		return []string{"Request body is empty"}
	}

	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		return []string{fmt.Sprintf("Invalid JSON at byte offset %d", syntaxErr.Offset)}
	}

	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return []string{fmt.Sprintf("Field '%s' should be of type %s", typeErr.Field, typeErr.Type.String())}
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make([]string, 0, len(ve))
		for _, fe := range ve {
			out = append(out, formatFieldError(fe))
		}
		return out
	}

	return []string{err.Error()}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("Field '%s' failed validation for '%s'", fe.Field(), fe.Tag())
}

// abortValidation reports a malformed request body as a client error with
// the individual field problems listed.
func abortValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Valideringsfeil", "details": bindingDetails(err)})
}

// uniqueConflictMessage maps a Postgres unique-violation to the Norwegian
// user-facing text naming the conflicting field.
func uniqueConflictMessage(err error) (string, bool) {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return "", false
	}
	switch {
	case strings.Contains(pgErr.Constraint, "driver_number"):
		return "Sjåførnummer eksisterer allerede", true
	case strings.Contains(pgErr.Constraint, "person_number"):
		return "Personnummer eksisterer allerede", true
	case strings.Contains(pgErr.Constraint, "email"):
		return "E-post eksisterer allerede", true
	case strings.Contains(pgErr.Constraint, "username"):
		return "Brukernavn eksisterer allerede", true
	}
	return "En eller flere felt eksisterer allerede", true
}
