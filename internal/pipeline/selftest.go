package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/open-cli-collective/markdown-directives/pkg/md"
)

// SelfTestDocument nests every directive family once.
const SelfTestDocument = `:::folding open #409EFF
mdd self test
:::hidden display=Reveal
{hide}inline{/hide} and {tip text=hover content=tooltip}{/tip}
:::
:::
`

// Check is the outcome of one self-test step.
type Check struct {
	Name string
	Err  error
}

// OK reports whether the step passed.
func (c Check) OK() bool { return c.Err == nil }

var selfTestMarkers = []struct {
	name   string
	marker string
}{
	{"folding block", `<details class="folding-tag`},
	{"hidden block", `data-reveal="block"`},
	{"hide span", `data-reveal="inline"`},
	{"tooltip", `class="anzhiyu-tip-wrapper"`},
}

// SelfTest renders SelfTestDocument and checks that each widget appears,
// that the cache serves a repeat render, and that export flattens the
// widgets again.
func (p *Pipeline) SelfTest() []Check {
	html, err := p.Render([]byte(SelfTestDocument))
	if err != nil {
		return []Check{{Name: "render", Err: err}}
	}

	checks := []Check{{Name: "render"}}
	for _, m := range selfTestMarkers {
		c := Check{Name: m.name}
		if !strings.Contains(html, m.marker) {
			c.Err = fmt.Errorf("rendered output is missing %s", m.marker)
		}
		checks = append(checks, c)
	}

	hits, _ := p.CacheStats()
	again, err := p.Render([]byte(SelfTestDocument))
	cacheCheck := Check{Name: "render cache", Err: err}
	if err == nil {
		after, _ := p.CacheStats()
		if after != hits+1 || again != html {
			cacheCheck.Err = errors.New("repeat render was not served from the cache")
		}
	}
	checks = append(checks, cacheCheck)

	exportCheck := Check{Name: "export"}
	out, err := p.Export([]byte(SelfTestDocument), md.ExportOptions{})
	switch {
	case err != nil:
		exportCheck.Err = err
	case strings.Contains(out, ":::") || strings.Contains(out, "{hide}"):
		exportCheck.Err = errors.New("exported markdown still contains directive syntax")
	}
	return append(checks, exportCheck)
}

// FirstFailure returns the first failed check's error, or nil.
func FirstFailure(checks []Check) error {
	for _, c := range checks {
		if c.Err != nil {
			return fmt.Errorf("%s: %w", c.Name, c.Err)
		}
	}
	return nil
}
