// Package pipeline wires the directive engine to mdd's configuration and
// caches rendered output by source content.
package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"

	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/pkg/md"
)

// Options configures a Pipeline.
type Options struct {
	DisableGFM bool
	UnsafeHTML bool
	NoTipIDs   bool

	// CacheTTL is how long a rendered document stays cached. Zero or
	// negative keeps entries until the process exits.
	CacheTTL time.Duration
}

// OptionsFromConfig maps the user configuration onto pipeline options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DisableGFM: cfg.DisableGFM,
		UnsafeHTML: cfg.UnsafeHTML,
		NoTipIDs:   cfg.TipIDs == config.TipIDsNone,
		CacheTTL:   cfg.CacheExpiration(),
	}
}

// Pipeline renders, scans and exports markdown with one configured goldmark
// instance. It is safe for concurrent use.
type Pipeline struct {
	md     goldmark.Markdown
	cache  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a pipeline.
func New(opts Options) *Pipeline {
	mdOpts := []md.Option{
		md.WithGFM(!opts.DisableGFM),
		md.WithUnsafeHTML(opts.UnsafeHTML),
	}
	if opts.NoTipIDs {
		mdOpts = append(mdOpts, md.WithTipIDs(nil))
	}

	expiration, cleanup := gocache.NoExpiration, time.Duration(0)
	if opts.CacheTTL > 0 {
		expiration, cleanup = opts.CacheTTL, 2*opts.CacheTTL
	}

	return &Pipeline{
		md:    md.New(mdOpts...),
		cache: gocache.New(expiration, cleanup),
	}
}

// Markdown returns the underlying goldmark instance.
func (p *Pipeline) Markdown() goldmark.Markdown {
	return p.md
}

// Render converts src to an HTML fragment. Identical sources are served from
// the cache, so tooltip ids stay stable across re-renders of unchanged input.
func (p *Pipeline) Render(src []byte) (string, error) {
	key := cacheKey(src)
	if cached, found := p.cache.Get(key); found {
		if html, ok := cached.(string); ok {
			p.hits.Add(1)
			return html, nil
		}
	}
	p.misses.Add(1)

	html, err := md.Convert(p.md, src)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	p.cache.Set(key, html, gocache.DefaultExpiration)
	return html, nil
}

// RenderPage renders src as a complete HTML document with the directive
// stylesheet and client script inlined.
func (p *Pipeline) RenderPage(title string, src []byte) (string, error) {
	body, err := p.Render(src)
	if err != nil {
		return "", err
	}
	return md.StandalonePage(title, body), nil
}

// Scan lists the directives in src.
func (p *Pipeline) Scan(src []byte) *md.ScanResult {
	return md.ScanWith(p.md, src)
}

// Export renders src and converts the result back to portable markdown with
// directive widgets flattened.
func (p *Pipeline) Export(src []byte, opts md.ExportOptions) (string, error) {
	html, err := p.Render(src)
	if err != nil {
		return "", err
	}

	out, err := md.FromHTMLWithOptions(html, opts)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}
	return out, nil
}

// CacheStats returns the number of cache hits and misses so far.
func (p *Pipeline) CacheStats() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}

// Flush empties the render cache.
func (p *Pipeline) Flush() {
	p.cache.Flush()
}

func cacheKey(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}
