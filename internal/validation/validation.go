package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[1-9][0-9]{9}$`)
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// Absent flex values validate as zero values so omitempty and required apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if f, ok := field.Interface().(models.FlexString); ok && f.Valid {
			return strings.TrimSpace(f.Value)
		}
		return ""
	}, models.FlexString{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if f, ok := field.Interface().(models.FlexInt); ok && f.Valid {
			return f.Value
		}
		return nil
	}, models.FlexInt{})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("emailaddr", matches(emailPattern))
	_ = v.RegisterValidation("mobile", matches(mobilePattern))
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// MissingMessager lets a request phrase its own message for missing fields.
type MissingMessager interface {
	MissingMessage(fields []string) string
}

// Struct validates req and returns a domain.ValidationError. Missing fields are reported
// together; otherwise the first failing field is reported with its msg tag.
func Struct(req any) error {
	err := defaultValidator.Struct(req)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return domain.ValidationError{Msg: "Invalid request", Err: err}
	}

	var missing []string
	for _, fe := range errs {
		if isMissing(fe) {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		if m, ok := req.(MissingMessager); ok {
			return domain.ValidationError{Msg: m.MissingMessage(missing), Err: err}
		}
		return domain.ValidationError{Msg: "Missing required fields: " + strings.Join(missing, ", "), Err: err}
	}
	return domain.ValidationError{Msg: fieldMessage(req, errs[0]), Err: err}
}

// Var checks a single value against tag and reports msg when it fails.
func Var(value any, tag, msg string) error {
	if err := defaultValidator.Var(value, tag); err != nil {
		return domain.ValidationError{Msg: msg, Err: err}
	}
	return nil
}

func isMissing(fe validator.FieldError) bool {
	switch fe.Tag() {
	case "required", "notblank":
		return true
	}
	return false
}

func fieldMessage(req any, fe validator.FieldError) string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}
	return ErrorMessage(fe)
}

// ErrorMessage is the generic text for a failed rule.
func ErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "emailaddr":
		return "Invalid email format"
	case "mobile":
		return "Mobile number must be 10 digits"
	case "isodate":
		return fmt.Sprintf("%s must be YYYY-MM-DD", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
