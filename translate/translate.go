// Package translate renders user-facing message text in the caller's locale.
package translate

import (
	"io"
	"sync"

	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

var (
	printer     *message.Printer
	tag         language.Tag
	printerOnce sync.Once
)

// load picks the printer for the first matching system locale.
func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.WithError(err).Debug("translate: locale")
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language is the tag messages are rendered in.
func Language() language.Tag {
	printerOnce.Do(load)
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Printf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	printerOnce.Do(load)
	return printer.Fprintf(w, key, args...)
}
