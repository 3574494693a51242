// Package translate renders user visible text through a locale aware
// message printer.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when the host locale is unknown.
var Fallback = language.AmericanEnglish

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("counter: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the best matching printer for the given BCP 47 tags.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		printer = message.NewPrinter(Fallback)
		return
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
