// Package lingo resolves user-facing message strings into a target language
// at render time, using the source-language text itself as the lookup key.
//
// Application authors write copy directly in a base language and supply
// translations later without restructuring call sites. A message is expressed
// as its literal fragments plus substitution values, mirroring a tagged
// template; the fragments joined by the %% marker form a canonical key that
// is stable across different substitution values.
//
// # Basic Usage
//
// Build an immutable catalog and resolve messages through a bound resolver:
//
//	catalog, err := lingo.New(
//		lingo.WithKeyLanguage("en"),
//		lingo.WithEntry("Hello %%", lingo.Entry{
//			"es": "Hola %%",
//			"jp": "こんにちは %%",
//		}),
//	)
//
//	tr := catalog.Resolver("es")
//	msg := tr.T([]string{"Hello ", ""}, "Mundo")
//	// Output: "Hola Mundo"
//
// # Graceful Degradation
//
// Resolution never fails on missing data. An absent row or an absent
// language falls back to the original text, and an advisory diagnostic is
// logged:
//
//	No i18n entries for "Unknown %%"
//	No es translation for "Hello %%"
//
// When the active language equals the key language, the original text is
// authoritative: no lookup happens and no diagnostics fire.
//
// # Context Carrier
//
// Bind a resolver into a context so nested code can translate without
// re-threading the catalog or language:
//
//	ctx := catalog.NewContext(r.Context(), "es")
//	...
//	tr := lingo.FromContext(ctx)
//	greeting := tr.T([]string{"Hello ", "!"}, name)
//
// Without a binding, FromContext returns a pass-through resolver bound to
// the system-detected language. The middlewares package provides an HTTP
// middleware that resolves the request language and installs the binding.
//
// # File-Based Catalogs
//
// Load translations from JSON or YAML files in an fs.FS, one flat file per
// language named {lang}.json or {lang}.yaml:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	catalog, err := lingo.New(
//		lingo.WithKeyLanguage("en"),
//		lingo.WithYAMLDir(subFS),
//	)
//
// # Thread Safety
//
// The Catalog is immutable after creation and resolution is a pure
// computation, so any number of concurrent resolver invocations against the
// same catalog are safe without synchronization.
package lingo
