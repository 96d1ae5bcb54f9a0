package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrors := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fieldPath(err),
			Message: message(err),
		})
	}

	return validationErrors
}

// fieldPath drops the root struct name from the namespace, so
// "CreateArticle.tags[2]" becomes "tags[2]".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return err.Field()
}

func message(err validator.FieldError) string {
	param := err.Param()

	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "uri":
		return "must be a valid URL"
	case "min", "gte":
		return boundMessage(err.Kind(), "at least", param)
	case "max", "lte":
		return boundMessage(err.Kind(), "at most", param)
	case "len":
		return boundMessage(err.Kind(), "exactly", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	case TagObjectID:
		return "must be a valid ID"
	case TagBoolLike:
		return "must be true, false, 0 or 1"
	case TagBoolStr:
		return `must be true, false, 0, 1, "true" or "false"`
	case TagTristate:
		if rule, ok := rules[param]; ok {
			labels := rule.Labels()
			return fmt.Sprintf("must be one of: 1, 0, -1, %s, %s, %s", labels[0], labels[1], labels[2])
		}
		return "has an unknown state rule"
	default:
		return fmt.Sprintf("failed on the '%s' rule", err.Tag())
	}
}

func boundMessage(kind reflect.Kind, relation, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", relation, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s items", relation, param)
	default:
		return fmt.Sprintf("must be %s %s", relation, param)
	}
}
