// Package i18n holds the english and hindi labels of the dashboard.
package i18n

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/hi"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"

	"github.com/pathshala/admin/core"
)

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"

	DefaultLanguage = Hindi
)

var Languages = []Language{English, Hindi}

// ParseLanguage returns the Language matching `s`, ignoring case and surrounding whitespace.
func ParseLanguage(s string) (Language, error) {
	s = core.CleanString(s, true /* lower */)
	for _, lang := range Languages {
		if string(lang) == s {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Localizer translates keys into the selected language.
// The selection is persisted under core.KeyLanguage.
type Localizer struct {
	store       core.KVStore
	fallback    Language
	translators map[Language]ut.Translator

	mu   sync.RWMutex
	lang Language
}

// New builds the translation tables. `fallback` is the language used until
// Load finds a stored selection; an empty fallback means DefaultLanguage.
func New(store core.KVStore, fallback Language) (*Localizer, error) {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	if _, err := ParseLanguage(string(fallback)); err != nil {
		return nil, err
	}

	supported := map[Language]locales.Translator{English: en.New(), Hindi: hi.New()}
	uni := ut.New(supported[English], supported[English], supported[Hindi])

	l := &Localizer{
		store:       store,
		fallback:    fallback,
		translators: make(map[Language]ut.Translator, len(supported)),
		lang:        fallback,
	}
	for lang := range supported {
		trans, found := uni.GetTranslator(string(lang))
		if !found {
			return nil, errors.Errorf("no translator for %q", lang)
		}
		for key, text := range table[lang] {
			if err := trans.Add(key, text, false); err != nil {
				return nil, errors.Wrapf(err, "adding %s translation %q", lang, key)
			}
		}
		l.translators[lang] = trans
	}
	return l, nil
}

// Load restores the persisted language. Unknown stored values are ignored.
func (l *Localizer) Load(ctx context.Context) error {
	raw, err := l.store.Get(ctx, core.KeyLanguage)
	if err != nil {
		if errors.Cause(err) == core.ErrKeyNotFound {
			return nil
		}
		return errors.Wrap(err, "reading language")
	}
	lang, err := ParseLanguage(raw)
	if err != nil {
		return nil
	}

	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()
	return nil
}

func (l *Localizer) Language() Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// SetLanguage persists lang then makes it current.
func (l *Localizer) SetLanguage(ctx context.Context, lang Language) error {
	if _, err := ParseLanguage(string(lang)); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "language", Error: err.Error()})
	}
	if err := l.store.Set(ctx, core.KeyLanguage, string(lang)); err != nil {
		return errors.Wrap(err, "storing language")
	}

	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()
	return nil
}

// T returns the text of key in the current language, or key itself when missing.
// There is no fallback to the other language.
func (l *Localizer) T(key string) string {
	s, err := l.translator().T(key)
	if err != nil || s == "" {
		return key
	}
	return s
}

// FmtCount formats n with the grouping rules of the current language.
func (l *Localizer) FmtCount(n int) string {
	return l.translator().FmtNumber(float64(n), 0)
}

func (l *Localizer) translator() ut.Translator {
	return l.translators[l.Language()]
}
