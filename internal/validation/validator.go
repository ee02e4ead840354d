package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

var zipCodeRegexp = regexp.MustCompile(`^\d{5}$`)

// Violation describes single failed constraint
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError is raised when payload violates constraints
type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for i, err := range e.violations {
		if i > 0 {
			buff.WriteString("; ")
		}
		buff.WriteString(err.Message)
	}

	return buff.String()
}

// Violation appends violation to error
func (e *PayloadError) Violation(field, message string) {
	e.violations = append(e.violations, Violation{Field: field, Message: message})
}

// Violations returns all collected violations
func (e *PayloadError) Violations() []Violation {
	return e.violations
}

// MarshalJSON marshals error as list of violations
func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// NewPayloadError builds PayloadError with single violation
func NewPayloadError(field, message string) *PayloadError {
	pldErr := &PayloadError{violations: make([]Violation, 0, 1)}
	pldErr.Violation(field, message)
	return pldErr
}

// Validator validates structs and translates violations to english messages
type Validator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds Validator with english translations and custom rules registered
func New() (*Validator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations for validator")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	if err := v.RegisterValidation("zipcode", isZipCode); err != nil {
		return nil, err
	}

	err := v.RegisterTranslation("zipcode", trans, func(t ut.Translator) error {
		return t.Add("zipcode", "{0} must be a 5-digit ZIP code", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T("zipcode", fe.Field())
		return msg
	})
	if err != nil {
		return nil, err
	}

	return &Validator{validator: v, translator: trans}, nil
}

// Struct validates struct, returns *PayloadError in case constraints are violated
func (v *Validator) Struct(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}
	return err
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	var pldErr *PayloadError
	if errors.As(err, &pldErr) {
		return pldErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *Validator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]Violation, 0, len(ve))}
	for _, e := range ve {
		pldErr.Violation(e.Field(), e.Translate(v.translator))
	}
	return pldErr
}

// IsZipCode reports whether s is 5-digit ZIP code
func IsZipCode(s string) bool {
	return zipCodeRegexp.MatchString(s)
}

func isZipCode(fl validator.FieldLevel) bool {
	return IsZipCode(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
