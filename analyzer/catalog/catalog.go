// Package catalog holds the host-facing text of every diagnostic kind, per
// locale, and renders diagnostics into messages.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"

	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

const (
	// BaseLocale is the locale every other locale falls back to.
	BaseLocale = "en-US"
)

//go:embed locales/*.toml
var embeddedLocalesFS embed.FS

var defaultCatalog = mustLoadEmbedded()

type localeFile struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

// Catalog is a set of message templates keyed by diagnostic kind.
type Catalog struct {
	builder *xcatalog.Builder
	matcher language.Matcher
	tags    []language.Tag
	locales []string
}

// Default returns the process-wide embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// LoadEmbedded loads the locale files embedded in this package.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocalesFS)
}

// LoadFromFS loads locales/*.toml from fsys. Each file must declare the
// locale its name carries and may only define known message ids. The base
// locale must define all of them; other locales inherit what they omit.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	known := make(map[string]bool, len(validator.Kinds))
	for _, k := range validator.Kinds {
		known[string(k)] = true
	}

	files := make([]localeFile, 0, len(paths))
	var base map[string]string
	for _, p := range paths {
		file, err := readLocaleFile(fsys, p)
		if err != nil {
			return nil, err
		}
		for id := range file.Messages {
			if !known[id] {
				return nil, fmt.Errorf("locale file %s: unknown message id %q", p, id)
			}
		}
		if file.Locale == BaseLocale {
			base = file.Messages
		}
		files = append(files, file)
	}

	if base == nil {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	for _, k := range validator.Kinds {
		if _, ok := base[string(k)]; !ok {
			return nil, fmt.Errorf("base locale %s: missing message %q", BaseLocale, k)
		}
	}

	baseTag := language.MustParse(BaseLocale)
	c := &Catalog{
		builder: xcatalog.NewBuilder(xcatalog.Fallback(baseTag)),
		// The matcher falls back to its first tag.
		tags: []language.Tag{baseTag},
	}

	for _, file := range files {
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", file.Locale, err)
		}

		for _, k := range validator.Kinds {
			text, ok := file.Messages[string(k)]
			if !ok {
				text = base[string(k)]
			}
			if err := c.builder.SetString(tag, string(k), text); err != nil {
				return nil, fmt.Errorf("locale %s: set %q: %w", file.Locale, k, err)
			}
		}

		if file.Locale != BaseLocale {
			c.tags = append(c.tags, tag)
		}
		c.locales = append(c.locales, file.Locale)
	}

	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func readLocaleFile(fsys fs.FS, p string) (localeFile, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return localeFile{}, fmt.Errorf("read locale file %s: %w", p, err)
	}

	var file localeFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return localeFile{}, fmt.Errorf("locale file %s: failed to parse TOML: %w", p, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return localeFile{}, fmt.Errorf("locale file %s: unknown key %q", p, undecoded[0].String())
	}

	file.Locale = strings.TrimSpace(file.Locale)
	if file.Locale == "" {
		return localeFile{}, fmt.Errorf("locale file %s: locale is required", p)
	}
	if want := strings.TrimSuffix(path.Base(p), ".toml"); file.Locale != want {
		return localeFile{}, fmt.Errorf("locale file %s: locale %q must match file name %q", p, file.Locale, want)
	}
	if len(file.Messages) == 0 {
		return localeFile{}, fmt.Errorf("locale file %s: messages are required", p)
	}

	return file, nil
}

// Locales returns the loaded locale identifiers, sorted.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	sort.Strings(out)
	return out
}

// Printer returns a renderer for the locale best matching the requested
// one. Unknown or empty locales get the base locale.
func (c *Catalog) Printer(locale string) *Printer {
	_, i := language.MatchStrings(c.matcher, locale)
	tag := c.tags[i]
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(c.builder)),
	}
}

// Printer renders diagnostics for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// Locale returns the BCP 47 tag the printer renders in.
func (p *Printer) Locale() string {
	return p.tag.String()
}

// Message renders the template of kind, substituting {{ key }} tokens with
// data. Tokens without data are kept verbatim.
func (p *Printer) Message(kind validator.Kind, data map[string]string) string {
	text := p.p.Sprintf(string(kind))
	return validator.ReplacePlaceholders(text, func(name string) (string, bool) {
		v, ok := data[name]
		return v, ok
	})
}

// Render flattens d into a ValidationResult with its rendered message.
func (p *Printer) Render(d validator.Diagnostic) validator.ValidationResult {
	return d.Result(p.Message(d.Kind, d.Data))
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}
