package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders a calendar date in the long form used on the site:
// "18 de diciembre de 2024" for Spanish and "December 18, 2024" otherwise.
func FormatDate(tag language.Tag, date time.Time) string {
	if base, _ := tag.Base(); base.String() == "es" {
		return fmt.Sprintf("%d de %s de %d", date.Day(), spanishMonths[date.Month()-1], date.Year())
	}
	return fmt.Sprintf("%s %d, %d", date.Month().String(), date.Day(), date.Year())
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD) in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}
