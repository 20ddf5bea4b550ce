package lingo

import (
	"context"
	"sync"
)

type resolverCtxKey struct{}
type languageCtxKey struct{}

// NewContext returns a child context carrying a resolver bound to lang
// (empty means the catalog default) along with the resolved language.
// Nested bindings shadow outer ones; consumers observe the nearest.
func (c *Catalog) NewContext(ctx context.Context, lang string) context.Context {
	r := c.Resolver(lang)
	ctx = context.WithValue(ctx, resolverCtxKey{}, r)
	return context.WithValue(ctx, languageCtxKey{}, r.lang)
}

// FromContext returns the nearest bound resolver. When no binding exists it
// returns a pass-through resolver bound to the system-detected language,
// which reassembles the original text without consulting any table.
func FromContext(ctx context.Context) *Resolver {
	if r, ok := ctx.Value(resolverCtxKey{}).(*Resolver); ok {
		return r
	}
	return passthroughResolver()
}

// LanguageFromContext returns the language bound by NewContext, or empty.
func LanguageFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(languageCtxKey{}).(string)
	return lang
}

// Detected once; the pass-through resolver never translates, so only the
// reported language matters.
var passthroughResolver = sync.OnceValue(func() *Resolver {
	return &Resolver{lang: DetectSystemLanguage()}
})
