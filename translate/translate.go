// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate localizes the user visible text of the ASML toolchain.
package translate

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asml: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the host locale with a BCP 47 language tag.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("language %q: %w", tag, err)
	}

	mutex.Lock()
	printer = message.NewPrinter(lang)
	mutex.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Fprintf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Fprintf(w, key, args...)
}
