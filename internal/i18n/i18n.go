package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "intake_lang"
)

var (
	supported = []language.Tag{language.Spanish, language.English}
	matcher   = language.NewMatcher(supported)
	cat       = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Spanish))
	for key, texts := range messages {
		for i, tag := range supported {
			if err := b.SetString(tag, key, texts[i]); err != nil {
				panic(fmt.Sprintf("i18n: set %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Supported returns the languages the catalog is translated into.
func Supported() []language.Tag {
	return supported
}

// ParseTag maps a user-supplied value onto a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Resolve determines the language for a request from the lang query value,
// the preference cookie and the Accept-Language header, in that order.
// The bool reports whether the query selected the language and should be persisted.
func Resolve(query, cookie, acceptLanguage string, def language.Tag) (language.Tag, bool) {
	if tag, ok := ParseTag(query); ok {
		return tag, true
	}
	if tag, ok := ParseTag(cookie); ok {
		return tag, false
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, idx, conf := matcher.Match(tags...); conf != language.No {
				return supported[idx], false
			}
		}
	}
	return def, false
}

// Localizer renders catalog messages for one language.
type Localizer struct {
	Tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for tag.
func New(tag language.Tag) *Localizer {
	return &Localizer{Tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// T returns the message for key, formatted with args.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Lang returns the BCP 47 base language, suitable for the html lang attribute.
func (l *Localizer) Lang() string {
	base, _ := l.Tag.Base()
	return base.String()
}
