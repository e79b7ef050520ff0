package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	xgxstatus "github.com/xgx-io/xgx-status"
)

const sampleTOML = `
default = "en-US"

[locale.en-US]
not_found   = "File {path} not found"
config_load = "Could not load configuration for {profile}"

[locale.pt-BR]
not_found = "Arquivo {path} nao encontrado"
`

func TestLoad_LookupExactLocale(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(sampleTOML))
	require.NoError(t, err)

	tmpl, ok := c.Lookup("not_found", language.MustParse("pt-BR"))
	require.True(t, ok)
	assert.Equal(t, "Arquivo {path} nao encontrado", tmpl)

	assert.Equal(t, language.MustParse("en-US"), c.DefaultLocale())
}

func TestLoad_BestMatchLocale(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(sampleTOML))
	require.NoError(t, err)

	// en-GB has no table of its own; BCP 47 matching lands on en-US.
	tmpl, ok := c.Lookup("not_found", language.MustParse("en-GB"))
	require.True(t, ok)
	assert.Equal(t, "File {path} not found", tmpl)
}

func TestLookup_UnknownKind(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(sampleTOML))
	require.NoError(t, err)

	_, ok := c.Lookup("quota_exceeded", language.MustParse("en-US"))
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		toml string
		want error
	}{
		{"missing default", "[locale.en-US]\nnot_found = \"x\"\n", ErrMissingDefault},
		{"no locales", "default = \"en-US\"\n", ErrNoLocales},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tc.toml))
			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()
		_, err := Load(strings.NewReader("default = "))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("bad locale tag", func(t *testing.T) {
		t.Parallel()
		bad := "default = \"en-US\"\n[locale.\"!!\"]\nnot_found = \"x\"\n"
		_, err := Load(strings.NewReader(bad))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "messages.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	tmpl, ok := c.Lookup("config_load", language.MustParse("en-US"))
	require.True(t, ok)
	assert.Equal(t, "Could not load configuration for {profile}", tmpl)

	_, err = LoadFile(filepath.Join(dir, "absent.toml"))
	require.Error(t, err)
}

func TestSet_BuilderUsage(t *testing.T) {
	t.Parallel()

	en := language.MustParse("en")
	c := New(en).
		Set(en, "timeout", "Timed out after {elapsed_ms}ms").
		Set(en, "timeout", "Took too long")

	tmpl, ok := c.Lookup("timeout", en)
	require.True(t, ok)
	assert.Equal(t, "Took too long", tmpl, "Set replaces prior templates")

	assert.Equal(t, []language.Tag{en}, c.Locales())
}

func TestCatalog_AsRenderResolver(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(sampleTOML))
	require.NoError(t, err)

	s := xgxstatus.New("not_found").WithString("path", "/etc/x")
	got := xgxstatus.Render(s, language.MustParse("en-US"), c)
	assert.Equal(t, "File /etc/x not found", got)

	// A locale the catalog cannot match at all falls back to the default.
	got = xgxstatus.Render(s, language.MustParse("ja-JP"), c)
	assert.Equal(t, "File /etc/x not found", got)
}

func TestEmptyCatalog_LookupIsSafe(t *testing.T) {
	t.Parallel()

	c := New(language.MustParse("en"))
	_, ok := c.Lookup("anything", language.MustParse("en"))
	assert.False(t, ok)
}
