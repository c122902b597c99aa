// Package sites holds the per-site page templates. Each template knows the
// fixed CSS selectors of one site's release pages and parses a fetched
// document into neutral page data. Parsing is tuned to the known templates;
// unknown markup yields empty fields, never an error.
package sites

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/ratelimit"
)

// Template is one site's page contract.
//
// Parse must be a pure function of the document and page URL; fetching,
// rate limiting and caching are the caller's concern.
type Template interface {
	Name() string
	Match(u *url.URL) bool
	Parse(doc *goquery.Document, pageURL string) domain.PageData
}

// Registry resolves URLs to templates.
type Registry struct {
	templates []Template
}

// NewRegistry creates a registry with the built-in templates.
func NewRegistry() *Registry {
	return &Registry{templates: []Template{Kartei{}, Shop{}}}
}

// NewRegistryWith creates a registry over the given templates.
func NewRegistryWith(templates ...Template) *Registry {
	return &Registry{templates: templates}
}

// Find returns the template responsible for rawURL.
func (r *Registry) Find(rawURL string) (Template, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Validationf("invalid page url %q", rawURL).WithCause(err)
	}
	for _, t := range r.templates {
		if t.Match(u) {
			return t, nil
		}
	}
	return nil, errors.Validationf("no template for %q", rawURL)
}

// FindByName returns the template with the given name.
func (r *Registry) FindByName(name string) (Template, error) {
	for _, t := range r.templates {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, errors.Validationf("unknown template %q", name)
}

// Templates lists the registered templates.
func (r *Registry) Templates() []Template {
	return r.templates
}

// Scraper fetches release pages and runs the matching template. Fetches are
// paced per host so scraping stays polite toward the source sites.
type Scraper struct {
	registry   *Registry
	httpClient *http.Client
	limiter    *ratelimit.KeyedRateLimiter
}

// NewScraper creates a scraper over the registry.
func NewScraper(registry *Registry) *Scraper {
	return &Scraper{
		registry: registry,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: ratelimit.New(1, 2),
	}
}

// Scrape fetches rawURL and parses it with the template matching its host.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (domain.PageData, string, error) {
	tmpl, err := s.registry.Find(rawURL)
	if err != nil {
		return domain.PageData{}, "", err
	}

	u, _ := url.Parse(rawURL)
	if err := s.limiter.Wait(ctx, u.Host); err != nil {
		return domain.PageData{}, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.PageData{}, "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.PageData{}, "", errors.Upstream("fetch release page").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.PageData{}, "", errors.Upstreamf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return domain.PageData{}, "", errors.Upstream("read release page").WithCause(err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.PageData{}, "", errors.Validation("parse release page html").WithCause(err)
	}

	return tmpl.Parse(doc, rawURL), tmpl.Name(), nil
}

// ParseHTML parses an already fetched page. The template is picked by name
// when given, otherwise by the page URL.
func (s *Scraper) ParseHTML(html, templateName, pageURL string) (domain.PageData, string, error) {
	var tmpl Template
	var err error
	if templateName != "" {
		tmpl, err = s.registry.FindByName(templateName)
	} else {
		tmpl, err = s.registry.Find(pageURL)
	}
	if err != nil {
		return domain.PageData{}, "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return domain.PageData{}, "", errors.Validation("parse release page html").WithCause(err)
	}

	return tmpl.Parse(doc, pageURL), tmpl.Name(), nil
}
