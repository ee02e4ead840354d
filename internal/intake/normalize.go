// Package intake holds normalization rules applied to data coming from public forms.
package intake

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/umalmyha/imaging-leads/internal/model"
)

const utmSourceParam = "utm_source"

// MaxPhoneDigits is the longest phone kept after normalization
const MaxPhoneDigits = 20

var imagingTypeAliases = map[string]model.ImagingType{
	"x-ray": model.ImagingTypeXRay,
	"x ray": model.ImagingTypeXRay,
}

// NormalizePhone strips all non-digit characters
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeImagingType lower-cases imaging type and resolves known aliases.
// Second value is false when result is not one of supported imaging types.
func NormalizeImagingType(s string) (model.ImagingType, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := imagingTypeAliases[norm]; ok {
		return alias, true
	}

	t := model.ImagingType(norm)
	for _, known := range model.ImagingTypes {
		if t == known {
			return t, true
		}
	}
	return t, false
}

// OptionalText trims s and returns nil for blank strings
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimFunc(*s, unicode.IsSpace)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// UtmSource extracts utm_source from referrer url, missing or malformed url gives nil
func UtmSource(referrer string) *string {
	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		return nil
	}

	var rawQuery string
	if u, err := url.Parse(referrer); err == nil {
		rawQuery = u.RawQuery
	} else if i := strings.IndexByte(referrer, '?'); i >= 0 {
		rawQuery = referrer[i+1:]
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil && len(values) == 0 {
		return nil
	}

	src := strings.TrimSpace(values.Get(utmSourceParam))
	if src == "" {
		return nil
	}
	return &src
}

// LastFour returns last four digits of card number, nil if there are no digits
func LastFour(cardNumber string) *string {
	digits := NormalizePhone(cardNumber)
	if digits == "" {
		return nil
	}

	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return &digits
}
