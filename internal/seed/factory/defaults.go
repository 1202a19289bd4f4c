package factory

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	e "github.com/gartstein/obotseed/internal/seed/errors"
	"github.com/gartstein/obotseed/internal/seed/models"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type localeConventions struct {
	decimalMark  string
	thousandsSep string
	percentFirst bool
	weekStart    time.Weekday
	dateFormat   string
}

// conventions is keyed by base language.
var conventions = map[string]localeConventions{
	"pt": {",", ".", false, time.Sunday, "DD/MM/YYYY"},
	"es": {",", ".", false, time.Monday, "DD/MM/YYYY"},
	"de": {",", ".", false, time.Monday, "DD.MM.YYYY"},
	"en": {".", ",", false, time.Sunday, "MM/DD/YYYY"},
}

// companyDefaults resolves the currency and locale pair of a company.
func companyDefaults(currencyCode, locale string) (models.CompanyDefaults, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return models.CompanyDefaults{}, fmt.Errorf("%w: currency %q: %v", e.ErrInvalidInput, currencyCode, err)
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return models.CompanyDefaults{}, fmt.Errorf("%w: locale %q: %v", e.ErrInvalidInput, locale, err)
	}

	base, _ := tag.Base()
	conv, ok := conventions[base.String()]
	if !ok {
		conv = conventions["en"]
	}
	scale, _ := currency.Standard.Rounding(unit)

	return models.CompanyDefaults{
		Currency:          unit.String(),
		Locale:            tag.String(),
		CurrencyPrecision: scale,
		DecimalMark:       conv.decimalMark,
		ThousandsSep:      conv.thousandsSep,
		PercentFirst:      conv.percentFirst,
		WeekStart:         conv.weekStart,
		DateFormat:        conv.dateFormat,
	}, nil
}

// slug folds name to lower case ASCII letters and digits joined by sep.
func slug(name, sep string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	words := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(words, sep)
}

// baseLanguage returns the base language of a BCP 47 tag, "en" when the tag
// does not parse.
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
