package urlcodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localization/pkg/urlcodec"
)

func TestInjectLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		host       string
		locale     string
		baseDomain string
		expected   string
	}{
		{
			name:     "replaces subdomain",
			host:     "foo.example.com",
			locale:   "en",
			expected: "en.example.com",
		},
		{
			name:     "replaces existing locale",
			host:     "en.example.com",
			locale:   "de",
			expected: "de.example.com",
		},
		{
			name:     "adds locale to apex",
			host:     "example.com",
			locale:   "de",
			expected: "de.example.com",
		},
		{
			name:     "single label host keeps whole host",
			host:     "localhost",
			locale:   "de",
			expected: "de.localhost",
		},
		{
			name:     "deep host without base domain keeps last two labels",
			host:     "a.b.example.com",
			locale:   "en",
			expected: "en.example.com",
		},
		{
			name:       "configured base domain handles public suffix",
			host:       "foo.example.co.uk",
			locale:     "de",
			baseDomain: "example.co.uk",
			expected:   "de.example.co.uk",
		},
		{
			name:       "configured base domain on apex",
			host:       "example.co.uk",
			locale:     "en",
			baseDomain: "example.co.uk",
			expected:   "en.example.co.uk",
		},
		{
			name:     "ipv4 literal unchanged",
			host:     "127.0.0.1",
			locale:   "en",
			expected: "127.0.0.1",
		},
		{
			name:     "ipv6 literal unchanged",
			host:     "::1",
			locale:   "en",
			expected: "::1",
		},
		{
			name:       "ip literal with base domain",
			host:       "127.0.0.1",
			locale:     "en",
			baseDomain: "example.com",
			expected:   "en.example.com",
		},
		{
			name:     "empty locale strips subdomain",
			host:     "foo.example.com",
			expected: "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, urlcodec.InjectLocale(tt.host, tt.locale, tt.baseDomain))
		})
	}
}

func TestInjectLocale_AnySubdomain(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{"foo", "en", "de", "www", "x1"} {
		for _, locale := range []string{"en", "de", "fr"} {
			require.Equal(t, locale+".domain.tld", urlcodec.InjectLocale(sub+".domain.tld", locale, ""))
		}
	}
}

func TestFirstLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "de", urlcodec.FirstLabel("de.example.com"))
	require.Equal(t, "localhost", urlcodec.FirstLabel("localhost"))
	require.Empty(t, urlcodec.FirstLabel(""))
}

func TestIsIP(t *testing.T) {
	t.Parallel()

	require.True(t, urlcodec.IsIP("127.0.0.1"))
	require.True(t, urlcodec.IsIP("::1"))
	require.True(t, urlcodec.IsIP("[2001:db8::1]"))
	require.False(t, urlcodec.IsIP("127.0.0.1.nip.io"))
	require.False(t, urlcodec.IsIP("localhost"))
	require.False(t, urlcodec.IsIP(""))

	require.False(t, urlcodec.CarriesLocale("10.0.0.1", ""))
	require.True(t, urlcodec.CarriesLocale("10.0.0.1", "example.com"))
	require.True(t, urlcodec.CarriesLocale("de.example.com", ""))
}
