package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators
func Number(n int) string {
	return printer.Sprintf("%d", n)
}
