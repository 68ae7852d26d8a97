// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/uz"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	ru_translations "github.com/go-playground/validator/v10/translations/ru"
)

var (
	Validate *validator.Validate
	uni      *ut.UniversalTranslator
)

// uzbek has no bundled validator translations
var uzMessages = map[string]string{
	"required": "{0} to'ldirilishi shart",
	"min":      "{0} kamida {1} bo'lishi kerak",
	"max":      "{0} ko'pi bilan {1} bo'lishi kerak",
	"gte":      "{0} {1} dan kichik bo'lmasligi kerak",
	"lte":      "{0} {1} dan katta bo'lmasligi kerak",
	"email":    "{0} to'g'ri email manzil bo'lishi kerak",
	"numeric":  "{0} son bo'lishi kerak",
	"datetime": "{0} {1} formatida bo'lishi kerak",
	"oneof":    "{0} quyidagilardan biri bo'lishi kerak: {1}",
}

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// form tag names in messages, the names the browser posted
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_en := en.New()
	uni = ut.New(_en, _en, ru.New(), uz.New())

	if t, ok := uni.GetTranslator("en"); ok {
		_ = en_translations.RegisterDefaultTranslations(Validate, t)
	}
	if t, ok := uni.GetTranslator("ru"); ok {
		_ = ru_translations.RegisterDefaultTranslations(Validate, t)
	}
	if t, ok := uni.GetTranslator("uz"); ok {
		registerUzbek(t)
	}
}

func registerUzbek(t ut.Translator) {
	for tag, msg := range uzMessages {
		tag, msg := tag, msg
		_ = Validate.RegisterTranslation(tag, t,
			func(t ut.Translator) error { return t.Add(tag, msg, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				s, err := t.T(fe.Tag(), fe.Field(), fe.Param())
				if err != nil {
					return fe.Error()
				}
				return s
			})
	}
}

// FieldErrors turns validator output into field → localized message.
// Non-validation errors yield nil.
func FieldErrors(err error, lang string) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	t, _ := uni.GetTranslator(lang)
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, dup := out[fe.Field()]; dup {
			continue
		}
		out[fe.Field()] = fe.Translate(t)
	}
	return out
}

// ValidateStruct returns nil when v is valid, else localized per-field messages.
func ValidateStruct(v any, lang string) map[string]string {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	if fe := FieldErrors(err, lang); len(fe) > 0 {
		return fe
	}
	return map[string]string{"_": err.Error()}
}
