package internal_test

import (
	"crypto/tls"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localization/internal"
	"github.com/dmitrymomot/localization/pkg/routes"
)

// localized mirrors the localization middleware without the redirect.
func localized(svc *internal.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := svc.Localize(r)
			l.DetectLocale(w)
			ctx := internal.WithLocalize(r.Context(), l)
			ctx = internal.WithRouter(ctx, svc.Router(r, l))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TestRouter_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []internal.Option
		target   string
		locale   string
		route    string
		params   map[string]string
		expected string
		ok       bool
	}{
		{
			name:     "translated path on other subdomain",
			target:   "http://en.example.com/hello/sam",
			locale:   "de",
			route:    "hello_user",
			params:   map[string]string{"username": "sam"},
			expected: "http://de.example.com/hallo/sam",
			ok:       true,
		},
		{
			name:     "current locale by default",
			target:   "http://de.example.com/",
			route:    "good_morning",
			expected: "http://de.example.com/guten-morgen",
			ok:       true,
		},
		{
			name:     "unmatched optional segment removed",
			target:   "http://en.example.com/",
			route:    "archive",
			params:   map[string]string{"other": "x"},
			expected: "http://en.example.com/blog/archive",
			ok:       true,
		},
		{
			name:     "optional segment filled",
			target:   "http://de.example.com/",
			route:    "archive",
			params:   map[string]string{"year": "2024"},
			expected: "http://de.example.com/blog/archiv/2024",
			ok:       true,
		},
		{
			name:     "params are escaped",
			target:   "http://en.example.com/",
			route:    "hello_user",
			params:   map[string]string{"username": "a b/c"},
			expected: "http://en.example.com/hello/a%20b%2Fc",
			ok:       true,
		},
		{
			name:     "port kept",
			target:   "http://en.localhost:8080/",
			opts:     []internal.Option{internal.WithDomain("localhost")},
			locale:   "de",
			route:    "good_morning",
			expected: "http://de.localhost:8080/guten-morgen",
			ok:       true,
		},
		{
			name:     "configured scheme",
			target:   "http://en.example.com/",
			opts:     []internal.Option{internal.WithScheme("https")},
			route:    "home",
			expected: "https://en.example.com/",
			ok:       true,
		},
		{
			name:     "configured base domain with deep host",
			target:   "http://en.shop.example.co.uk/",
			opts:     []internal.Option{internal.WithDomain("shop.example.co.uk")},
			locale:   "de",
			route:    "good_morning",
			expected: "http://de.shop.example.co.uk/guten-morgen",
			ok:       true,
		},
		{
			name:     "ip host keeps its address",
			target:   "http://127.0.0.1:8080/",
			locale:   "de",
			route:    "good_morning",
			expected: "http://127.0.0.1:8080/guten-morgen",
			ok:       true,
		},
		{
			name:   "unknown route",
			target: "http://en.example.com/",
			route:  "missing",
		},
		{
			name:   "unknown locale",
			target: "http://en.example.com/",
			locale: "fr",
			route:  "good_morning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, tt.opts...)
			r := newRequest(tt.target)
			rt := svc.Router(r, nil)

			got, ok := rt.LocalizedURL(tt.locale, tt.route, tt.params)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, got)

			if tt.locale == "" {
				got, ok = rt.URL(tt.route, tt.params)
				require.Equal(t, tt.ok, ok)
				require.Equal(t, tt.expected, got)
			}
		})
	}

	t.Run("tls request", func(t *testing.T) {
		t.Parallel()

		r := newRequest("http://en.example.com/")
		r.TLS = &tls.ConnectionState{}
		got, ok := newService(t).Router(r, nil).URL("good_morning", nil)
		require.True(t, ok)
		require.Equal(t, "https://en.example.com/good-morning", got)
	})

	t.Run("uses applied locale", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		r := newRequest("http://foo.example.com/")
		l := svc.Localize(r)
		l.Apply(nil, "de")

		got, ok := svc.Router(r, l).URL("good_morning", nil)
		require.True(t, ok)
		require.Equal(t, "http://de.example.com/guten-morgen", got)
	})
}

func TestRouter_RedirectURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []internal.Option
		target   string
		expected string
	}{
		{
			name:     "unknown subdomain replaced",
			target:   "http://foo.example.com/path?q=1",
			expected: "http://en.example.com/path?q=1",
		},
		{
			name:     "apex gets locale",
			opts:     []internal.Option{internal.WithDomain("example.com")},
			target:   "http://example.com:8443/a/b?x=y&z=1",
			expected: "http://en.example.com:8443/a/b?x=y&z=1",
		},
		{
			name:     "single label host",
			target:   "http://localhost/",
			expected: "http://en.localhost/",
		},
		{
			name:     "escaped path kept",
			target:   "http://foo.example.com/caf%C3%A9",
			expected: "http://en.example.com/caf%C3%A9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, tt.opts...)
			r := newRequest(tt.target)
			l := svc.Localize(r)
			require.True(t, l.ShouldRedirect())
			l.DetectLocale(httptest.NewRecorder())

			require.Equal(t, tt.expected, svc.Router(r, l).RedirectURL())
		})
	}
}

func TestRouter_Resolve(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	rt := svc.Router(newRequest("http://de.example.com/"), nil)

	_, ok := rt.RouteNameByPath("/hallo/{username}")
	require.False(t, ok, "unresolved routes are unknown")

	path, ok := rt.Resolve("hello_user")
	require.True(t, ok)
	require.Equal(t, "hallo/{username}", path)

	name, ok := rt.RouteNameByPath("/hallo/{username}")
	require.True(t, ok)
	require.Equal(t, "hello_user", name)

	_, ok = rt.Resolve("missing")
	require.False(t, ok)

	path, ok = rt.RoutePathByName("hello_user", "en")
	require.True(t, ok)
	require.Equal(t, "hello/{username}", path)

	path, ok = rt.RoutePathByName("good_morning", "")
	require.True(t, ok)
	require.Equal(t, "guten-morgen", path)

	t.Run("cache is per router", func(t *testing.T) {
		t.Parallel()

		other := svc.Router(newRequest("http://de.example.com/"), nil)
		_, ok := other.RouteNameByPath("/hallo/{username}")
		require.False(t, ok)
	})
}

func TestService_Handle(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	r := chi.NewRouter()
	r.Use(localized(svc))

	versions := func(w http.ResponseWriter, r *http.Request) {
		rt := internal.RouterFromContext(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"locale":   internal.LocaleFromContext(r.Context()),
			"versions": rt.CurrentVersions(),
		})
	}
	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "hello_user", versions))
	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "archive", versions))
	require.ErrorIs(t, svc.HandleFunc(r, http.MethodGet, "missing", versions), internal.ErrRouteNotTranslated)

	type response struct {
		Locale   string            `json:"locale"`
		Versions map[string]string `json:"versions"`
	}

	serve := func(t *testing.T, target string) (*httptest.ResponseRecorder, response) {
		t.Helper()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(target))
		var resp response
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		}
		return rec, resp
	}

	t.Run("current versions keep params", func(t *testing.T) {
		t.Parallel()

		rec, resp := serve(t, "http://de.example.com/hallo/sam")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "de", resp.Locale)
		require.Equal(t, map[string]string{
			"en": "http://en.example.com/hello/sam",
			"de": "http://de.example.com/hallo/sam",
		}, resp.Versions)
	})

	t.Run("optional variants registered", func(t *testing.T) {
		t.Parallel()

		rec, resp := serve(t, "http://en.example.com/blog/archive")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "http://de.example.com/blog/archiv", resp.Versions["de"])

		rec, resp = serve(t, "http://en.example.com/blog/archive/2024")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "http://de.example.com/blog/archiv/2024", resp.Versions["de"])
	})

	t.Run("path of other locale is not found", func(t *testing.T) {
		t.Parallel()

		rec, _ := serve(t, "http://en.example.com/hallo/sam")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestService_Handle_SharedShapes(t *testing.T) {
	t.Parallel()

	table := routes.NewTable(routes.Entries{
		"en": {
			"user":    "users/{username}",
			"about":   "info",
			"contact": "contact",
		},
		"de": {
			"user":    "users/{name}",
			"about":   "ueber-uns",
			"contact": "info",
		},
	})
	svc, err := internal.New(table)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(localized(svc))

	echo := func(route string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			name, _ := internal.RouterFromContext(r.Context()).CurrentRouteName()
			_, _ = w.Write([]byte(route + ":" + name + ":" + chi.URLParam(r, "username") + chi.URLParam(r, "name")))
		}
	}
	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "user", echo("user")))
	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "about", echo("about")))
	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "contact", echo("contact")))

	tests := []struct {
		target string
		code   int
		body   string
	}{
		{"http://en.example.com/users/sam", http.StatusOK, "user:user:sam"},
		{"http://de.example.com/users/sam", http.StatusOK, "user:user:sam"},
		{"http://en.example.com/info", http.StatusOK, "about:about:"},
		{"http://de.example.com/info", http.StatusOK, "contact:contact:"},
		{"http://de.example.com/ueber-uns", http.StatusOK, "about:about:"},
		{"http://en.example.com/contact", http.StatusOK, "contact:contact:"},
		{"http://en.example.com/ueber-uns", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, newRequest(tt.target))
			require.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				require.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestService_Handle_ParamsRenamedPerLocale(t *testing.T) {
	t.Parallel()

	table := routes.NewTable(routes.Entries{
		"en": {"user": "users/{username}"},
		"de": {"user": "users/{name}"},
	})
	svc, err := internal.New(table)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(localized(svc))
	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "user", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(internal.RouterFromContext(r.Context()).CurrentParams())
	}))

	for target, expected := range map[string]map[string]string{
		"http://en.example.com/users/sam": {"username": "sam"},
		"http://de.example.com/users/sam": {"name": "sam"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(target))
		require.Equal(t, http.StatusOK, rec.Code, target)

		var params map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))
		require.Equal(t, expected, params, target)
	}
}

func TestService_Handle_Conflict(t *testing.T) {
	t.Parallel()

	table := routes.NewTable(routes.Entries{
		"en": {"about": "info", "imprint": "info", "news": "news/{slug}", "post": "news/{id}"},
		"de": {"about": "ueber-uns", "imprint": "impressum", "news": "neues/{slug}", "post": "beitrag/{id}"},
	})
	svc, err := internal.New(table)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(localized(svc))
	noop := func(http.ResponseWriter, *http.Request) {}

	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "about", noop))
	require.ErrorIs(t, svc.HandleFunc(r, http.MethodGet, "imprint", noop), internal.ErrRouteConflict)
	require.NoError(t, svc.HandleFunc(r, http.MethodPost, "imprint", noop), "other methods do not collide")

	require.NoError(t, svc.HandleFunc(r, http.MethodGet, "news", noop))
	require.ErrorIs(t, svc.HandleFunc(r, http.MethodGet, "post", noop), internal.ErrRouteConflict)
	require.ErrorIs(t, svc.HandleFunc(r, http.MethodGet, "news", noop), internal.ErrRouteConflict)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newRequest("http://de.example.com/beitrag/1"))
	require.Equal(t, http.StatusNotFound, rec.Code, "a rejected route registers none of its paths")
}

func TestRouter_IPHostWithoutDomain(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := svc.Localize(r)
			if l.ShouldRedirect() {
				http.Redirect(w, r, svc.Router(r, l).RedirectURL(), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newRequest("http://127.0.0.1:8080/"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestRouter_CurrentWithoutHandle(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	r := chi.NewRouter()
	r.Use(localized(svc))
	r.Get("/guten-morgen", func(w http.ResponseWriter, r *http.Request) {
		rt := internal.RouterFromContext(r.Context())

		_, ok := rt.Current("en")
		require.False(t, ok, "route unknown before resolve")

		_, ok = rt.Resolve("good_morning")
		require.True(t, ok)

		u, ok := rt.Current("en")
		require.True(t, ok)
		_, _ = w.Write([]byte(u))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newRequest("http://de.example.com/guten-morgen"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://en.example.com/good-morning", rec.Body.String())
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	r := newRequest("http://de.example.com/")
	require.Nil(t, internal.LocalizeFromContext(r.Context()))
	require.Nil(t, internal.RouterFromContext(r.Context()))
	require.Empty(t, internal.LocaleFromContext(r.Context()))

	svc := newService(t)
	l := svc.Localize(r)
	rt := svc.Router(r, l)
	ctx := internal.WithRouter(internal.WithLocalize(r.Context(), l), rt)

	require.Same(t, l, internal.LocalizeFromContext(ctx))
	require.Same(t, rt, internal.RouterFromContext(ctx))
	require.Same(t, l, rt.Localize())
	require.Equal(t, "de", internal.LocaleFromContext(ctx))
}
