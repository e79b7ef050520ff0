// Package catalog provides a file-backed localization resolver for
// xgx-status. It maps (kind, locale) pairs to message templates loaded from
// TOML, with BCP 47 best-match locale resolution.
//
// Catalog file shape:
//
//	default = "en-US"
//
//	[locale.en-US]
//	not_found   = "File {path} not found"
//	config_load = "Could not load configuration for {profile}"
//
//	[locale.pt-BR]
//	not_found = "Arquivo {path} nao encontrado"
//
// Keeping catalogs outside the binary lets deployments update phrasing
// without recompiling. The zero policy of the core still holds: a Catalog is
// a plain Resolver capability passed explicitly to Render, never ambient
// process state.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// Error definitions for the catalog package.
var (
	// ErrMissingDefault is returned when a catalog file declares no default
	// locale.
	ErrMissingDefault = errors.New("catalog: missing default locale")

	// ErrNoLocales is returned when a catalog file declares no locale tables.
	ErrNoLocales = errors.New("catalog: no locale tables")
)

// Catalog is an in-memory template store implementing xgxstatus.Resolver.
// It is immutable once handed to concurrent readers; Set calls must happen
// before sharing.
type Catalog struct {
	def      language.Tag
	tags     []language.Tag
	tables   []map[xgxstatus.Kind]string
	tagIndex map[string]int
	matcher  language.Matcher
}

var _ xgxstatus.Resolver = (*Catalog)(nil)

// New creates an empty catalog with the given default locale. Templates are
// added with Set.
func New(defaultLocale language.Tag) *Catalog {
	return &Catalog{
		def:      defaultLocale,
		tagIndex: make(map[string]int),
	}
}

// Set records a template for (locale, kind), replacing any previous one,
// and returns the catalog for chaining.
func (c *Catalog) Set(loc language.Tag, kind xgxstatus.Kind, template string) *Catalog {
	idx, ok := c.tagIndex[loc.String()]
	if !ok {
		idx = len(c.tags)
		c.tagIndex[loc.String()] = idx
		c.tags = append(c.tags, loc)
		c.tables = append(c.tables, make(map[xgxstatus.Kind]string))
		c.matcher = language.NewMatcher(c.tags)
	}
	c.tables[idx][kind] = template
	return c
}

// Lookup implements xgxstatus.Resolver. The requested locale is resolved to
// the best-matching catalog locale per BCP 47 matching (so en-GB finds an en
// table); no match at all reports false.
func (c *Catalog) Lookup(kind xgxstatus.Kind, loc language.Tag) (string, bool) {
	if c == nil || c.matcher == nil {
		return "", false
	}
	_, idx, conf := c.matcher.Match(loc)
	if conf == language.No {
		return "", false
	}
	tmpl, ok := c.tables[idx][kind]
	return tmpl, ok
}

// DefaultLocale implements xgxstatus.Resolver.
func (c *Catalog) DefaultLocale() language.Tag { return c.def }

// Locales returns the catalog's locales, default first, the rest in a
// stable order.
func (c *Catalog) Locales() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// catalogFile mirrors the TOML document shape.
type catalogFile struct {
	Default string                       `toml:"default"`
	Locales map[string]map[string]string `toml:"locale"`
}

// Load reads a TOML catalog. The default locale is mandatory and every
// locale key must be a well-formed BCP 47 tag.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}

	var cf catalogFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if cf.Default == "" {
		return nil, ErrMissingDefault
	}
	if len(cf.Locales) == 0 {
		return nil, ErrNoLocales
	}

	def, err := language.Parse(cf.Default)
	if err != nil {
		return nil, fmt.Errorf("catalog: default locale %q: %w", cf.Default, err)
	}

	// Deterministic table order: default first, the rest sorted by name.
	names := make([]string, 0, len(cf.Locales))
	for name := range cf.Locales {
		names = append(names, name)
	}
	sort.Strings(names)

	c := New(def)
	add := func(name string) error {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("catalog: locale %q: %w", name, err)
		}
		for kind, tmpl := range cf.Locales[name] {
			c.Set(tag, xgxstatus.Kind(kind), tmpl)
		}
		return nil
	}
	if table, ok := cf.Locales[cf.Default]; ok && len(table) > 0 {
		if err := add(cf.Default); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		if name == cf.Default {
			continue
		}
		if err := add(name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile reads a TOML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}
