package messages

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/aalemi-dev/convert-lab/converter"
)

// locales lists the supported locales; the first one is the catalog fallback.
var locales = []string{"en-US", "de-DE", "es-ES"}

// Renderer turns converter errors into localized, user-facing text.
//
// Errors built by converters with converter.Fail carry their own message,
// which is rendered verbatim. Errors that are not *converter.Error render as
// their Error() text.
type Renderer struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
	fallback  language.Tag
}

// NewRenderer builds the catalog for every supported locale.
func NewRenderer(cfg Config) (*Renderer, error) {
	supported := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		supported = append(supported, language.MustParse(l))
	}

	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for i, l := range locales {
		for kind, text := range translations[l] {
			if err := b.SetString(supported[i], kind.Code(), text); err != nil {
				return nil, fmt.Errorf("set %s message %s: %w", l, kind.Code(), err)
			}
		}
	}

	r := &Renderer{
		catalog:   b,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		fallback:  supported[0],
	}

	if cfg.DefaultLocale != "" {
		tag, err := language.Parse(cfg.DefaultLocale)
		if err != nil {
			return nil, fmt.Errorf("parse default locale %q: %w", cfg.DefaultLocale, err)
		}
		_, idx, confidence := r.matcher.Match(tag)
		if confidence == language.No {
			return nil, fmt.Errorf("default locale %q is not supported", cfg.DefaultLocale)
		}
		r.fallback = supported[idx]
	}

	return r, nil
}

// Supported returns the locales the renderer has messages for.
func (r *Renderer) Supported() []language.Tag {
	out := make([]language.Tag, len(r.supported))
	copy(out, r.supported)
	return out
}

// Tag resolves a BCP 47 locale, or an Accept-Language header value, to the
// closest supported tag. Unknown or malformed input yields the default
// locale.
func (r *Renderer) Tag(locale string) language.Tag {
	if locale == "" {
		return r.fallback
	}

	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return r.fallback
	}

	_, idx, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.fallback
	}
	return r.supported[idx]
}

// Render localizes err for locale. A nil err renders as "".
func (r *Renderer) Render(err error, locale string) string {
	if err == nil {
		return ""
	}

	var classified *converter.Error
	if !errors.As(err, &classified) {
		return err.Error()
	}
	if classified.Message != "" {
		return classified.Message
	}
	if _, ok := translations[locales[0]][classified.Kind]; !ok {
		return classified.Error()
	}

	p := message.NewPrinter(r.Tag(locale), message.Catalog(r.catalog))
	return p.Sprintf(classified.Kind.Code(), arguments(classified)...)
}

func name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
