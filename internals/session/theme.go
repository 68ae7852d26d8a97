package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/constants"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme struct {
	store Storage
}

func NewTheme(store Storage) *Theme { return &Theme{store: store} }

func ThemeFrom(c *fiber.Ctx) *Theme { return NewTheme(From(c)) }

// Current defaults to light for anything unexpected in storage.
func (t *Theme) Current() string {
	if t.store.Get(constants.KeyTheme) == constants.ThemeDark {
		return constants.ThemeDark
	}
	return constants.ThemeLight
}

func (t *Theme) IsDark() bool { return t.Current() == constants.ThemeDark }

func (t *Theme) Set(theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return ErrUnknownTheme
	}
	t.store.Set(constants.KeyTheme, theme)
	return t.store.Save()
}

func (t *Theme) Toggle() (string, error) {
	next := constants.ThemeDark
	if t.IsDark() {
		next = constants.ThemeLight
	}
	return next, t.Set(next)
}

/* ===== flash ===== */

// SetFlash leaves a one-shot message for the next rendered page.
func SetFlash(store Storage, msg string) {
	store.Set(constants.KeyFlash, msg)
}

// PopFlash returns and clears the pending message.
func PopFlash(store Storage) string {
	msg := store.Get(constants.KeyFlash)
	if msg != "" {
		store.Delete(constants.KeyFlash)
	}
	return msg
}
