package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localization/pkg/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
		ok        bool
	}{
		{
			name:      "empty header",
			header:    "",
			available: []string{"en", "de"},
		},
		{
			name:      "no available languages",
			header:    "en",
			available: nil,
		},
		{
			name:      "exact match",
			header:    "de",
			available: []string{"en", "de"},
			expected:  "de",
			ok:        true,
		},
		{
			name:      "regional variant matches base language",
			header:    "de-AT",
			available: []string{"en", "de"},
			expected:  "de",
			ok:        true,
		},
		{
			name:      "quality values ordered",
			header:    "en;q=0.4,de;q=0.9",
			available: []string{"en", "de"},
			expected:  "de",
			ok:        true,
		},
		{
			name:      "skips unavailable languages",
			header:    "fr-FR,fr;q=0.9,de;q=0.5",
			available: []string{"en", "de"},
			expected:  "de",
			ok:        true,
		},
		{
			name:      "nothing available",
			header:    "ja,zh;q=0.8",
			available: []string{"en", "de"},
		},
		{
			name:      "malformed header",
			header:    "en;q=abc;;;==",
			available: []string{"en", "de"},
		},
		{
			name:      "malformed entry skipped",
			header:    "xx-invalid-!!,de",
			available: []string{"en", "de"},
			expected:  "de",
			ok:        true,
		},
		{
			name:      "quality kept around malformed entry",
			header:    "en;q=0.3,!!bad,de;q=0.7",
			available: []string{"en", "de"},
			expected:  "de",
			ok:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lang, ok := i18n.MatchAcceptLanguage(tt.header, tt.available)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, lang)
		})
	}
}

func TestMatchAcceptLanguage_OversizedHeader(t *testing.T) {
	t.Parallel()

	header := strings.Repeat("x", 10000)
	_, ok := i18n.MatchAcceptLanguage(header, []string{"en"})
	require.False(t, ok)
}
