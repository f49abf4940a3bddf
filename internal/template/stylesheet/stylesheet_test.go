package stylesheet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacer/slate/internal/template"
	"github.com/pacer/slate/internal/template/stylesheet"
)

// mapLoader serves includes from an in-memory name to source map.
func mapLoader(sources map[string]string) stylesheet.Loader {
	return func(name string) (string, error) {
		src, ok := sources[name]
		if !ok {
			return "", errors.New("not found")
		}
		return src, nil
	}
}

func TestCollect_DirectDirectives(t *testing.T) {
	source := `{% stylesheet "/css/site.css" %}
<p>body</p>
{% stylesheet "/css/print.css" %}`

	hrefs, err := stylesheet.Collect(template.DefaultConfig(), source, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/css/site.css", "/css/print.css"}, hrefs)
}

func TestCollect_FollowsIncludes(t *testing.T) {
	sources := map[string]string{
		"base.html":   `{% stylesheet "/css/base.css" %}{% include "nav.html" %}`,
		"nav.html":    `{% stylesheet "/css/nav.css" %}`,
		"unused.html": `{% stylesheet "/css/unused.css" %}`,
	}

	page := `{% include "base.html" %}{% stylesheet "/css/page.css" %}`

	hrefs, err := stylesheet.Collect(template.DefaultConfig(), page, mapLoader(sources))
	require.NoError(t, err)

	assert.Equal(t, []string{"/css/base.css", "/css/nav.css", "/css/page.css"}, hrefs)
}

func TestCollect_IncludeCycleTerminates(t *testing.T) {
	sources := map[string]string{
		"a.html": `{% stylesheet "/css/a.css" %}{% include "b.html" %}`,
		"b.html": `{% stylesheet "/css/b.css" %}{% include "a.html" %}`,
	}

	hrefs, err := stylesheet.Collect(template.DefaultConfig(), `{% include "a.html" %}`, mapLoader(sources))
	require.NoError(t, err)

	assert.Equal(t, []string{"/css/a.css", "/css/b.css"}, hrefs)
}

func TestCollect_IgnoresOtherDirectives(t *testing.T) {
	source := `{% if dark %}{% stylesheet "/css/dark.css" %}{% endif %}{{ body }}`

	hrefs, err := stylesheet.Collect(template.DefaultConfig(), source, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/css/dark.css"}, hrefs)
}

func TestCollect_IncludeNeedsStringLiteral(t *testing.T) {
	// A dynamic include target cannot be followed statically.
	source := `{% include partial %}{% stylesheet "/css/page.css" %}`

	hrefs, err := stylesheet.Collect(template.DefaultConfig(), source, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/css/page.css"}, hrefs)
}

func TestCollect_MissingLoaderFails(t *testing.T) {
	_, err := stylesheet.Collect(template.DefaultConfig(), `{% include "base.html" %}`, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loader configured")
}

func TestCollect_LoaderErrorPropagates(t *testing.T) {
	_, err := stylesheet.Collect(template.DefaultConfig(), `{% include "gone.html" %}`,
		mapLoader(nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `include "gone.html"`)
}

func TestCollect_ParseErrorPropagates(t *testing.T) {
	_, err := stylesheet.Collect(template.DefaultConfig(), `{% stylesheet`, nil)

	require.Error(t, err)
}

func TestLinkTags(t *testing.T) {
	got := stylesheet.LinkTags([]string{"/css/a.css", "/css/b.css"})

	want := `<link rel="stylesheet" href="/css/a.css" />
<link rel="stylesheet" href="/css/b.css" />`
	assert.Equal(t, want, got)

	assert.Empty(t, stylesheet.LinkTags(nil))
}
