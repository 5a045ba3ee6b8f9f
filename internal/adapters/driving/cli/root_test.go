package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/config/file"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
)

func TestBuildLexicon_Defaults(t *testing.T) {
	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	lex := buildLexicon(cfg)

	defaults := dataset.DefaultLexicon()
	assert.Equal(t, defaults.AspectTerms, lex.AspectTerms)
	assert.Equal(t, defaults.PositiveCues, lex.PositiveCues)
	assert.Equal(t, defaults.NegativeCues, lex.NegativeCues)
}

func TestBuildLexicon_ConfigOverrides(t *testing.T) {
	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cfg.Set("dataset.aspect_terms", []string{"zero-day", "supply chain"}))
	require.NoError(t, cfg.Set("dataset.positive_cues", []string{"hardened"}))
	require.NoError(t, cfg.Set("dataset.negative_cues", []string{"pwned"}))
	require.NoError(t, cfg.Set("dataset.window", 5))

	lex := buildLexicon(cfg)

	assert.Equal(t, []string{"zero-day", "supply chain"}, lex.AspectTerms)
	assert.Equal(t, []string{"hardened"}, lex.PositiveCues)
	assert.Equal(t, []string{"pwned"}, lex.NegativeCues)
	assert.Equal(t, 5, lex.Window)
}
