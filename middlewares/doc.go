// Package middlewares provides HTTP middleware for lingo catalogs.
//
// # Language
//
// Language middleware resolves the request's language and binds a resolver
// into the request context, so handlers translate via lingo.FromContext
// without threading the catalog explicitly:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Language(catalog,
//	    middlewares.WithQueryParam("lang"),
//	))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    tr := lingo.FromContext(r.Context())
//	    fmt.Fprint(w, tr.T([]string{"Hello ", "!"}, name))
//	})
//
// Resolution order: query parameter (when configured), the "lang" cookie,
// the Accept-Language header matched against the catalog's languages, and
// finally the catalog's default language.
//
// The middleware uses the standard func(http.Handler) http.Handler shape and
// composes with chi or any net/http router.
package middlewares
