// Package validation turns untrusted request input into typed values or a
// list of field errors. Decoding, per-field rules and cross-field rules run
// in that order, and a later stage only runs when the earlier one passed.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CrossValidator is implemented by inputs with rules spanning several fields.
// It is only consulted once every field is individually valid.
type CrossValidator interface {
	CrossValidate() Errors
}

// Validator decodes and validates request input.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, ok := ParseClock(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
	return &Validator{v: v}
}

// Body decodes a JSON payload into dst and validates it.
func (v *Validator) Body(r io.Reader, dst any) error {
	if errs := decode(r, dst); errs != nil {
		return errs
	}
	return v.Struct(dst)
}

// Patch is Body for partial updates: every field is optional but at least
// one must be present.
func (v *Validator) Patch(r io.Reader, dst any) error {
	if errs := decode(r, dst); errs != nil {
		return errs
	}
	if !anySet(dst) {
		return bodyError("at least one field is required to update")
	}
	return v.Struct(dst)
}

// Params validates path parameters. Values go through the same JSON decoding
// as bodies so numeric strings coerce into ID fields.
func (v *Validator) Params(params map[string]string, dst any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode path params: %w", err)
	}
	if errs := decode(strings.NewReader(string(raw)), dst); errs != nil {
		return errs
	}
	return v.Struct(dst)
}

// Struct runs the field rules and then, if they passed, the cross-field rules.
func (v *Validator) Struct(dst any) error {
	if err := v.v.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return fmt.Errorf("failed to validate input: %w", err)
		}
		errs := make(Errors, 0, len(ve))
		for _, fe := range ve {
			errs = append(errs, FieldError{Field: fieldPath(fe), Message: message(fe)})
		}
		return errs
	}
	if cv, ok := dst.(CrossValidator); ok {
		if errs := cv.CrossValidate(); len(errs) > 0 {
			return errs
		}
	}
	return nil
}

func decode(r io.Reader, dst any) Errors {
	err := json.NewDecoder(r).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return bodyError("request body is required")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return bodyError("request body must be a JSON object")
		}
		return Errors{{Field: typeErr.Field, Message: typeErr.Field + " " + typeMessage(typeErr.Type)}}
	default:
		return bodyError("malformed JSON")
	}
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has an invalid type"
	}
}

// anySet reports whether at least one pointer field of the struct behind dst is non-nil.
func anySet(dst any) bool {
	rv := reflect.Indirect(reflect.ValueOf(dst))
	if rv.Kind() != reflect.Struct {
		return true
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		if f.Kind() != reflect.Pointer || !f.IsNil() {
			return true
		}
	}
	return false
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return field + " must be a positive integer"
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hhmm":
		return field + " must be a time in HH:MM format"
	case "ymd":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
