package domain

// Locale identifies a display language selected from the URL path prefix.
type Locale string

// Supported locales. DefaultLocale is served unprefixed under the
// "as-needed" policy; every other locale carries a path prefix.
const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
	LocaleJA Locale = "ja"
	LocaleKO Locale = "ko"
	LocaleFR Locale = "fr"
	LocaleDE Locale = "de"
	LocaleES Locale = "es"
	LocaleIT Locale = "it"
	LocalePT Locale = "pt"
	LocaleRU Locale = "ru"
	LocaleAR Locale = "ar"
)

// DefaultLocale is used when the path carries no valid locale prefix.
const DefaultLocale = LocaleEN

// Locales lists every supported locale in a fixed order.
var Locales = []Locale{
	LocaleEN, LocaleZH, LocaleJA, LocaleKO, LocaleFR, LocaleDE,
	LocaleES, LocaleIT, LocalePT, LocaleRU, LocaleAR,
}

// ParseLocale returns the locale matching s and whether it is supported.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == s {
			return l, true
		}
	}
	return DefaultLocale, false
}

func (l Locale) String() string { return string(l) }
