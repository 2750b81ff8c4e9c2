package validator

import (
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/whatsapp-message-service/pkg/response"
)

const phoneTag = "whatsapp_phone"

// CustomValidator wraps the validator instance for Echo.
type CustomValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func New() *CustomValidator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := field.Tag.Get("json")
		if tag == "" {
			return field.Name
		}

		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic("failed to register phone number validation: " + err.Error())
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic("failed to register validator default translations: " + err.Error())
	}

	err := validate.RegisterTranslation(phoneTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(phoneTag, InvalidPhoneNumberMessage, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(phoneTag)
			if err != nil {
				return InvalidPhoneNumberMessage
			}
			return msg
		},
	)
	if err != nil {
		panic("failed to register phone number translation: " + err.Error())
	}

	return &CustomValidator{
		validator:  validate,
		translator: trans,
	}
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return &ValidationError{
				Errors: cv.translateErrors(validationErrors),
			}
		}
		return err
	}
	return nil
}

func (cv *CustomValidator) translateErrors(errs validator.ValidationErrors) map[string]string {
	errors := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		errors[field] = err.Translate(cv.translator)
	}
	return errors
}

type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	var messages []string
	for _, field := range e.fields() {
		messages = append(messages, field+": "+e.Errors[field])
	}
	return strings.Join(messages, "; ")
}

// Message joins the translated messages without field prefixes.
func (e *ValidationError) Message() string {
	var messages []string
	for _, field := range e.fields() {
		messages = append(messages, e.Errors[field])
	}
	return strings.Join(messages, "; ")
}

func (e *ValidationError) fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// HandleValidationError renders any input problem as a 400 validation error.
func HandleValidationError(c echo.Context, err error) error {
	message := err.Error()
	if ve, ok := err.(*ValidationError); ok {
		message = ve.Message()
	}

	return c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Error:   response.LabelValidationError,
		Message: message,
	})
}
