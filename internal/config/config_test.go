package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "yyyy-MM-dd'T'HH:mm:ssZZZZZ", cfg.DateFormat)
	assert.False(t, cfg.UseReferenceDate)
	assert.False(t, cfg.ExactNumbers)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		expect      *Config
		expectErr   bool
	}{
		{
			description: "all settings",
			content:     "date_format: \"dd/MM/yyyy\"\nuse_reference_date: true\nexact_numbers: true\n",
			expect:      &Config{DateFormat: "dd/MM/yyyy", UseReferenceDate: true, ExactNumbers: true},
		},
		{
			description: "partial settings keep defaults",
			content:     "use_reference_date: true\n",
			expect:      &Config{DateFormat: "yyyy-MM-dd'T'HH:mm:ssZZZZZ", UseReferenceDate: true},
		},
		{
			description: "empty date format restores default",
			content:     "date_format: \"\"\n",
			expect:      &Config{DateFormat: "yyyy-MM-dd'T'HH:mm:ssZZZZZ"},
		},
		{
			description: "invalid yaml",
			content:     "date_format: [\n",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		path := filepath.Join(t.TempDir(), "arrow.yml")
		require.NoError(t, os.WriteFile(path, []byte(testCase.content), 0644))
		cfg, err := LoadConfig(path)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, cfg, testCase.description)
	}
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	assert.Equal(t, "", FindConfigFile(nested))

	path := filepath.Join(root, ".arrow.yml")
	require.NoError(t, os.WriteFile(path, []byte("use_reference_date: true\n"), 0644))
	assert.Equal(t, path, FindConfigFile(nested))
}

func TestConfig_ArrowConfig(t *testing.T) {
	cfg := &Config{DateFormat: "dd/MM/yyyy", UseReferenceDate: true}
	arrowConfig := cfg.ArrowConfig()
	assert.Equal(t, "dd/MM/yyyy", arrowConfig.DateFormat())
	assert.True(t, arrowConfig.UseReferenceDate())
}
