package internal

import "context"

type localizeKey struct{}

type routerKey struct{}

// WithLocalize returns a copy of ctx carrying l.
func WithLocalize(ctx context.Context, l *Localize) context.Context {
	return context.WithValue(ctx, localizeKey{}, l)
}

// WithRouter returns a copy of ctx carrying rt.
func WithRouter(ctx context.Context, rt *Router) context.Context {
	return context.WithValue(ctx, routerKey{}, rt)
}

// LocalizeFromContext returns the request's detector, or nil when the
// localization middleware did not run.
func LocalizeFromContext(ctx context.Context) *Localize {
	l, _ := ctx.Value(localizeKey{}).(*Localize)
	return l
}

// RouterFromContext returns the request's router, or nil when the
// localization middleware did not run.
func RouterFromContext(ctx context.Context) *Router {
	rt, _ := ctx.Value(routerKey{}).(*Router)
	return rt
}

// LocaleFromContext returns the active locale of the request, or "".
func LocaleFromContext(ctx context.Context) string {
	if l := LocalizeFromContext(ctx); l != nil {
		return l.Current()
	}
	return ""
}
