package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// Orden = preferencia ante empate; el primero es el respaldo del matcher.
var localeTags = []language.Tag{language.French, language.English, language.Spanish, language.Arabic}

var localeMatcher = language.NewMatcher(localeTags)

// LocaleResolver decide el idioma de las etiquetas: ?locale= explícito, luego Accept-Language,
// luego el idioma por defecto configurado.
type LocaleResolver struct {
	fallback status.Locale
}

// NewLocaleResolver construye el resolver. Un idioma por defecto no soportado cae a francés.
func NewLocaleResolver(defaultLocale string) *LocaleResolver {
	loc, ok := status.ParseLocale(defaultLocale)
	if !ok {
		loc = status.DefaultLocale
	}
	return &LocaleResolver{fallback: loc}
}

// Resolve idioma de la petición.
func (r *LocaleResolver) Resolve(c *fiber.Ctx) status.Locale {
	if q := c.Query("locale"); q != "" {
		if loc, ok := status.ParseLocale(q); ok {
			return loc
		}
	}
	header := c.Get(fiber.HeaderAcceptLanguage)
	if header == "" {
		return r.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return r.fallback
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return r.fallback
	}
	base, _ := localeTags[idx].Base()
	if loc, ok := status.ParseLocale(base.String()); ok {
		return loc
	}
	return r.fallback
}
