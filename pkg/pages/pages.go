package pages

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/qrgen/pkg/payload"
)

//go:embed pages.yaml
var defaultTable []byte

// Page is a generator landing page.
type Page struct {
	Slug          string              `yaml:"slug"`
	ContentType   payload.ContentType `yaml:"content_type"`
	Title         string              `yaml:"title"`
	Subtitle      string              `yaml:"subtitle"`
	Description   string              `yaml:"description"`
	MetadataTitle string              `yaml:"metadata_title"`
}

// Path returns the URL path of the page.
func (p Page) Path() string {
	return "/" + p.Slug
}

// Catalog is an immutable set of pages.
type Catalog struct {
	home  Page
	list  []Page
	slugs map[string]Page
}

type table struct {
	Home       Page   `yaml:"home"`
	Generators []Page `yaml:"generators"`
}

// Load parses a page table.
func Load(data []byte) (*Catalog, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	home, err := normalize(t.Home)
	if err != nil {
		return nil, fmt.Errorf("home: %w", err)
	}
	home.Slug = ""

	c := &Catalog{
		home:  home,
		list:  make([]Page, 0, len(t.Generators)),
		slugs: make(map[string]Page, len(t.Generators)),
	}
	for i, p := range t.Generators {
		p, err := normalize(p)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		if p.Slug == "" {
			return nil, fmt.Errorf("%w: generator %d has no slug", ErrInvalidPage, i)
		}
		if _, dup := c.slugs[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		c.slugs[p.Slug] = p
		c.list = append(c.list, p)
	}
	return c, nil
}

func normalize(p Page) (Page, error) {
	ct, err := payload.ParseContentType(string(p.ContentType))
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	p.ContentType = ct
	if p.Title == "" {
		return p, fmt.Errorf("%w: missing title", ErrInvalidPage)
	}
	if p.MetadataTitle == "" {
		p.MetadataTitle = p.Title
	}
	return p, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
// It panics if the embedded table is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultTable)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Home returns the page served at "/".
func (c *Catalog) Home() Page {
	return c.home
}

// Lookup returns the generator page for slug.
func (c *Catalog) Lookup(slug string) (Page, bool) {
	p, ok := c.slugs[slug]
	return p, ok
}

// Generators returns all generator pages in table order.
func (c *Catalog) Generators() []Page {
	out := make([]Page, len(c.list))
	copy(out, c.list)
	return out
}
