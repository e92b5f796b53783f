package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-session-auth/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldBody is reported when the request body itself cannot be decoded.
const FieldBody = "body"

type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator backed by
// go-playground/validator. Field errors are reported under the JSON names
// of the request fields.
func NewRequestValidator() (RequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		return nil, fmt.Errorf("error registering notblank validation: %w", err)
	}

	if err := validate.RegisterValidation("password", passwordPolicy); err != nil {
		return nil, fmt.Errorf("error registering password validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{validate: validate}, nil
}

func (v *requestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegistrationRequest, models.LoginRequest:
		return v.validateStruct(ctx, value)
	case *models.RegistrationRequest:
		return v.validateStruct(ctx, *value)
	case *models.LoginRequest:
		return v.validateStruct(ctx, *value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *requestValidator) ValidateRegistration(ctx context.Context, body io.Reader) (models.RegistrationRequest, error) {
	return decodeAndValidate[models.RegistrationRequest](ctx, v, body)
}

func (v *requestValidator) ValidateLogin(ctx context.Context, body io.Reader) (models.LoginRequest, error) {
	return decodeAndValidate[models.LoginRequest](ctx, v, body)
}

func decodeAndValidate[T any](ctx context.Context, v *requestValidator, body io.Reader) (T, error) {
	var request, zero T
	problems, err := decode(body, &request)
	if err != nil {
		return zero, err
	}

	err = v.Validate(ctx, request)
	var vErr *ValidationError
	if err != nil && !errors.As(err, &vErr) {
		return zero, err
	}
	if vErr == nil && len(problems) == 0 {
		return request, nil
	}

	return zero, mergeDetails(jsonFields(reflect.TypeFor[T]()), problems, vErr)
}

// decode reads a single JSON object from body into dst field by field.
// Fields with a wrong JSON type and keys dst does not declare are returned
// as problems keyed by field name. A body that is not one JSON object is
// reported as a *ValidationError on FieldBody.
func decode(body io.Reader, dst any) (map[string]models.FieldError, error) {
	if body == nil {
		return nil, newValidationError(models.FieldError{Field: FieldBody, Message: "is required"})
	}

	dec := json.NewDecoder(body)
	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newValidationError(models.FieldError{Field: FieldBody, Message: "is required"})
		}
		return nil, newValidationError(models.FieldError{Field: FieldBody, Message: "must be a valid JSON object"})
	}
	if raw == nil {
		return nil, newValidationError(models.FieldError{Field: FieldBody, Message: "must be a valid JSON object"})
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, newValidationError(models.FieldError{Field: FieldBody, Message: "must contain a single JSON object"})
	}

	target := reflect.ValueOf(dst).Elem()
	problems := make(map[string]models.FieldError)
	known := make(map[string]struct{}, len(raw))

	for _, f := range jsonFields(target.Type()) {
		known[f.name] = struct{}{}
		value, ok := raw[f.name]
		if !ok {
			continue
		}

		field := target.Field(f.index)
		if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
			field.SetZero()
			problems[f.name] = models.FieldError{Field: f.name, Message: "must be a " + typeName(field.Type())}
		}
	}

	for name := range raw {
		if _, ok := known[name]; !ok {
			problems[name] = models.FieldError{Field: name, Message: "is not allowed"}
		}
	}

	return problems, nil
}

type jsonField struct {
	name  string
	index int
}

// jsonFields lists the JSON-named fields of struct type t in declaration order.
func jsonFields(t reflect.Type) []jsonField {
	out := make([]jsonField, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = sf.Name
		}
		out = append(out, jsonField{name: name, index: i})
	}
	return out
}

// mergeDetails joins decoding problems with rule failures. A field that
// could not be decoded is reported once, with its decoding problem. Details
// follow the field order of the request, then undeclared keys by name.
func mergeDetails(fields []jsonField, problems map[string]models.FieldError, vErr *ValidationError) *ValidationError {
	byField := make(map[string]models.FieldError, len(problems))
	if vErr != nil {
		for _, d := range vErr.Details {
			byField[d.Field] = d
		}
	}
	maps.Copy(byField, problems)

	details := make([]models.FieldError, 0, len(byField))
	for _, f := range fields {
		if d, ok := byField[f.name]; ok {
			details = append(details, d)
			delete(byField, f.name)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(byField)) {
		details = append(details, byField[name])
	}

	return newValidationError(details...)
}

func (v *requestValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	details := make([]models.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, models.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return newValidationError(details...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "password":
		return "must contain at least one letter and one digit"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}

// passwordPolicy requires at least one letter and one digit.
func passwordPolicy(fl validator.FieldLevel) bool {
	var letter, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}
