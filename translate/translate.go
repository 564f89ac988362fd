// Package translate localizes the user visible text of regmach.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	printer = message.NewPrinter(match(systemLocales()...))
}

// systemLocales returns the user's preferred locales, or en-US.
func systemLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("regmach: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// match selects the best supported language for a list of locales.
func match(locales ...string) language.Tag {
	return message.MatchLanguage(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
