// Package validation holds the go-playground validator shared by every
// resource, with the custom tags used for loosely typed inputs:
//
//	tristate=<rule>  a normalize.Value accepted by the named rule
//	boollike         a normalize.Value that is true, false, 0 or 1
//	boolstr          boollike, or the strings "true" and "false"
//	objectid         a 24-hex document ID string
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "mocms/pkg/errors"
	"mocms/pkg/normalize"
)

const (
	TagTristate = "tristate"
	TagBoolLike = "boollike"
	TagBoolStr  = "boolstr"
	TagObjectID = "objectid"
)

var rules = map[string]normalize.Rule{
	normalize.UserState.Name:          normalize.UserState,
	normalize.ColumnRequestState.Name: normalize.ColumnRequestState,
	normalize.ReportState.Name:        normalize.ReportState,
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)

	mustRegister(v, TagTristate, validateTristate)
	mustRegister(v, TagBoolLike, validateBoolLike)
	mustRegister(v, TagBoolStr, validateBoolStr)
	mustRegister(v, TagObjectID, validateObjectID)

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn, true); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validates s and returns ValidationErrors for field failures.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// ToAppError converts a validator result into the 400 response sent to
// clients. Errors that are not ValidationErrors are wrapped as Internal.
func ToAppError(err error, resource string) *apperrors.AppError {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperrors.Validation(
			fmt.Sprintf("Invalid %s payload", resource),
			map[string]any{"errors": []ValidationError(validationErrs)},
		)
	}
	return apperrors.Internal("Validation failed unexpectedly", err)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func valueOf(fl validator.FieldLevel) (normalize.Value, bool) {
	field := fl.Field()
	if !field.CanInterface() {
		return normalize.Value{}, false
	}
	v, ok := field.Interface().(normalize.Value)
	return v, ok
}

func validateTristate(fl validator.FieldLevel) bool {
	rule, ok := rules[fl.Param()]
	if !ok {
		return false
	}
	v, ok := valueOf(fl)
	return ok && rule.Accepts(v)
}

func boolLike(v normalize.Value) bool {
	switch v.Kind() {
	case normalize.KindAbsent, normalize.KindBool:
		return true
	case normalize.KindInt:
		n, _ := v.AsInt()
		return n == 0 || n == 1
	default:
		return false
	}
}

func validateBoolLike(fl validator.FieldLevel) bool {
	v, ok := valueOf(fl)
	return ok && boolLike(v)
}

func validateBoolStr(fl validator.FieldLevel) bool {
	v, ok := valueOf(fl)
	if !ok {
		return false
	}
	if label, isLabel := v.AsLabel(); isLabel {
		return strings.EqualFold(label, "true") || strings.EqualFold(label, "false")
	}
	return boolLike(v)
}

func validateObjectID(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return primitive.IsValidObjectID(fl.Field().String())
}

// Append adds a failure found outside struct tags to the result of Struct.
// Errors that are not ValidationErrors are returned unchanged.
func Append(err error, field, message string) error {
	if err == nil {
		return ValidationErrors{{Field: field, Message: message}}
	}
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return append(validationErrs, ValidationError{Field: field, Message: message})
	}
	return err
}
