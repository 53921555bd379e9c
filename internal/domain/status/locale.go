package status

import "strings"

// Locale idioma soportado por las etiquetas.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
	LocaleAR Locale = "ar"
)

// DefaultLocale idioma del back-office cuando no se indica otro.
const DefaultLocale = LocaleFR

// SupportedLocales en orden de preferencia.
var SupportedLocales = []Locale{LocaleFR, LocaleEN, LocaleES, LocaleAR}

// ParseLocale normaliza "FR", " es " etc. Devuelve false si el idioma no está soportado.
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LocaleFR, LocaleEN, LocaleES, LocaleAR:
		return l, true
	}
	return "", false
}

// Labels una etiqueta por idioma soportado.
type Labels struct {
	FR string `json:"fr"`
	EN string `json:"en"`
	ES string `json:"es"`
	AR string `json:"ar"`
}

// Get devuelve la etiqueta del idioma; false si el idioma no existe o la etiqueta está vacía.
func (l Labels) Get(loc Locale) (string, bool) {
	var s string
	switch loc {
	case LocaleFR:
		s = l.FR
	case LocaleEN:
		s = l.EN
	case LocaleES:
		s = l.ES
	case LocaleAR:
		s = l.AR
	}
	return s, s != ""
}
