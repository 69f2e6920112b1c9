package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travel-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestTemplateCacheLoadAndRender(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "price.html", `{{formatRupiah .Price}}`)
	writeTemplate(t, dir, "cart.html", `{{formatRupiah (subtotal .Items)}}`)

	tc := NewTemplateCache()
	require.NoError(t, tc.Load(dir))

	var sb strings.Builder
	tmpl := tc.Get("price.html")
	require.NotNil(t, tmpl)
	require.NoError(t, tmpl.Execute(&sb, map[string]any{"Price": 1250000.0}))
	assert.Equal(t, "Rp 1.250.000", sb.String())

	sb.Reset()
	items := []models.CartItem{{Activity: models.Activity{Price: 100000}, Quantity: 2}}
	require.NoError(t, tc.Get("cart.html").Execute(&sb, map[string]any{"Items": items}))
	assert.Equal(t, "Rp 200.000", sb.String())
}

func TestTemplateCacheUnknownName(t *testing.T) {
	tc := NewTemplateCache()
	require.NoError(t, tc.Load(t.TempDir()))
	assert.Nil(t, tc.Get("missing.html"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("traveler@example.com"))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("missing@tld"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validPhone("0812-3456-789"))
	assert.True(t, validPhone("+62 812 3456 7890"))
	assert.False(t, validPhone("12345"))
}
