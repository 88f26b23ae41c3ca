// File: /utils/validators.go
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var horarioRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)\s*-\s*([01]\d|2[0-3]):([0-5]\d)$`)

var validate = newValidator()

// FieldError is one failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the failure side of Validate. A nil value means the
// payload passed every rule.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// First returns the message of the first failed field.
func (v ValidationErrors) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("hhmm_range", func(fl validator.FieldLevel) bool {
		_, _, err := ParseHorario(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("tipo_conta", func(fl validator.FieldLevel) bool {
		tipo := fl.Field().String()
		return tipo == "empresa" || tipo == "fornecedor"
	})

	return v
}

// Validate runs the struct rules of payload. Rules are declared with
// `validate` tags; a `msg` tag overrides the message shown when the field is
// missing or empty.
func Validate(payload interface{}) ValidationErrors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: messageFor(payload, fe),
		})
	}
	return out
}

// ValidateVar checks a single value against a rule string, e.g. "email".
func ValidateVar(value interface{}, rule string) bool {
	return validate.Var(value, rule) == nil
}

func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func messageFor(payload interface{}, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_without", "gt", "gte", "min":
		if msg := customMessage(reflect.TypeOf(payload), fe.StructNamespace()); msg != "" {
			return msg
		}
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if", "required_without":
		return fmt.Sprintf("O campo %s é obrigatório", field)
	case "email":
		return "Email inválido"
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s elemento(s) ou caractere(s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s elemento(s) ou caractere(s)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, fe.Param())
	case "isodate":
		return fmt.Sprintf("%s deve ser uma data no formato AAAA-MM-DD", field)
	case "hhmm_range":
		return fmt.Sprintf("%s deve estar no formato HH:MM - HH:MM", field)
	case "tipo_conta":
		return "tipo deve ser empresa ou fornecedor"
	case "url":
		return fmt.Sprintf("%s deve ser um URL válido", field)
	}
	return fmt.Sprintf("%s é inválido", field)
}

// customMessage walks the struct namespace (Root.Field[0].Sub) down to the
// failing field and returns its msg tag.
func customMessage(t reflect.Type, structNamespace string) string {
	parts := strings.Split(structNamespace, ".")
	if len(parts) < 2 {
		return ""
	}

	var tag string
	for _, part := range parts[1:] {
		if idx := strings.Index(part, "["); idx >= 0 {
			part = part[:idx]
		}
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return ""
		}
		f, ok := t.FieldByName(part)
		if !ok {
			return ""
		}
		tag = f.Tag.Get("msg")
		t = f.Type
	}
	return tag
}

// ParseDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseHorario parses "HH:MM - HH:MM" into minutes since midnight.
func ParseHorario(h string) (inicio, fim int, err error) {
	m := horarioRegex.FindStringSubmatch(strings.TrimSpace(h))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid horario %q", h)
	}
	inicio = atoi2(m[1])*60 + atoi2(m[2])
	fim = atoi2(m[3])*60 + atoi2(m[4])
	if fim <= inicio {
		return 0, 0, fmt.Errorf("horario %q ends before it starts", h)
	}
	return inicio, fim, nil
}

// FormatHorario joins two HH:MM values.
func FormatHorario(inicio, fim string) string {
	return strings.TrimSpace(inicio) + " - " + strings.TrimSpace(fim)
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func IsValidEmail(email string) bool {
	return ValidateVar(email, "required,email")
}
