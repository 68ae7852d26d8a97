// file: internals/i18n/i18n.go
package i18n

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/session"
)

const (
	Uz = "uz"
	Ru = "ru"
	En = "en"

	Default = Uz
)

var Supported = []string{Uz, Ru, En}

var matcher = language.NewMatcher([]language.Tag{
	language.Uzbek, // first tag is the fallback
	language.Russian,
	language.English,
})

// IsSupported reports whether lang is one of the three static locales.
func IsSupported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// T looks key up in lang, then in the default locale, then returns the key itself.
func T(lang, key string) string {
	if tbl, ok := tables[lang]; ok {
		if s, ok := tbl[key]; ok {
			return s
		}
	}
	if s, ok := tables[Default][key]; ok {
		return s
	}
	return key
}

// Match picks the best supported locale for an Accept-Language header.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Resolve picks the request locale: ?lang=, then the session, then Accept-Language.
func Resolve(c *fiber.Ctx) string {
	if q := strings.ToLower(strings.TrimSpace(c.Query("lang"))); IsSupported(q) {
		return q
	}
	if s := session.From(c).Get(constants.KeyLang); IsSupported(s) {
		return s
	}
	return Match(c.Get(fiber.HeaderAcceptLanguage))
}

// Translator is bound to one locale, for templates.
type Translator struct {
	Lang string
}

func (t Translator) T(key string) string { return T(t.Lang, key) }
