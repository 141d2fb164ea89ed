package wordlist

import (
	"slices"
	"sort"
	"strings"

	"github.com/abhisek/lexis/internal/difficulty"
)

// DefaultLanguage is used when a requested language has no lists.
const DefaultLanguage = "es"

// Lists is the vocabulary available for one language.
type Lists struct {
	// Tiers holds the top frequency words per difficulty, most frequent first.
	Tiers map[difficulty.Level][]string
	// Emergency is a short list that is always available.
	Emergency []string
}

// Catalog provides read-only frequency word lists.
type Catalog interface {
	// Tiers returns the frequency-tiered words for lang, or nil.
	Tiers(lang string) map[difficulty.Level][]string
	// Emergency returns the emergency list for lang, falling back to
	// DefaultLanguage for unsupported languages.
	Emergency(lang string) []string
	// Languages returns the supported language codes in sorted order.
	Languages() []string
}

// StaticCatalog is a Catalog over an in-memory table.
type StaticCatalog struct {
	lists map[string]Lists
}

var _ Catalog = (*StaticCatalog)(nil)

// NewStaticCatalog builds a catalog from lists keyed by language code.
// Keys are lower-cased.
func NewStaticCatalog(lists map[string]Lists) *StaticCatalog {
	c := &StaticCatalog{lists: make(map[string]Lists, len(lists))}
	for lang, l := range lists {
		c.lists[normalizeLang(lang)] = l
	}
	return c
}

// Builtin returns the catalog of bundled word lists.
func Builtin() *StaticCatalog {
	return builtin
}

func (c *StaticCatalog) Tiers(lang string) map[difficulty.Level][]string {
	l, ok := c.lists[normalizeLang(lang)]
	if !ok {
		return nil
	}
	return l.Tiers
}

func (c *StaticCatalog) Emergency(lang string) []string {
	if l, ok := c.lists[normalizeLang(lang)]; ok && len(l.Emergency) > 0 {
		return l.Emergency
	}
	return c.lists[DefaultLanguage].Emergency
}

func (c *StaticCatalog) Languages() []string {
	langs := make([]string, 0, len(c.lists))
	for lang := range c.lists {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Supports reports whether lang has its own lists.
func (c *StaticCatalog) Supports(lang string) bool {
	return slices.Contains(c.Languages(), normalizeLang(lang))
}

// normalizeLang reduces a locale such as "es-MX" or "pt_BR" to its
// language code.
func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
