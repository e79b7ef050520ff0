// doc.go — package documentation for xgx-status
//
// Package xgxstatus provides a small, policy-free status container for
// fallible operations: a stable machine-readable Kind, an ordered append-only
// Context of typed values, an optional literal message override, and a
// singly-owned causal chain. It is designed to be:
//   - Reportable low and enriched high (context accumulates per frame)
//   - Machine-inspectable (callers branch on Kind, never on message text)
//   - Localizable (rendering goes through an external Resolver)
//   - Transport-safe (a self-describing, versioned wire envelope)
//
// # Kind vs Context
//
// A Kind is a static description of WHAT failed, drawn from a closed set the
// consuming application defines. Everything runtime-specific (paths, ids,
// attempts) belongs in Context, keyed by short stable tokens:
//
//	st := xgxstatus.New(KindNotFound).
//	          WithString("path", "/etc/app.toml").
//	          WithInt("attempt", 3)
//
// Higher frames append more context or re-classify by wrapping:
//
//	st = xgxstatus.Wrap(KindConfigLoad, st).WithString("profile", "prod")
//
// # Context Semantics
//
// Context is append-only with deterministic order. Duplicate keys are allowed
// and represent successive refinements; nothing is ever deleted or mutated in
// place. Resolving a single value for a key is an explicit, separately named
// operation with last-write-wins semantics:
//
//	v, ok := st.Context().Value("path") // last entry for "path"
//	all := st.Context().Values("path")  // full history, oldest first
//
// Builders mutate the receiver and return it for chaining; a Status is a
// single-owner value until it is published (logged, rendered, encoded, or
// attached as a cause), after which it must be treated as read-only. The
// package provides no synchronized mutation.
//
// # Rendering
//
// Render never fails and never returns an empty string. It prefers the
// literal message override, then the Resolver's template for the requested
// locale, then the Resolver's default locale, and finally a generic
// structural dump of the Kind and context keys. Template placeholders use
// {key} syntax and resolve last-write-wins; an absent key renders an explicit
// unknown marker rather than erroring. See Render and RenderChain.
//
// # Wire Form
//
// Encode produces a versioned, self-describing byte envelope that preserves
// context order and value types exactly; Decode reverses it or reports a
// *DecodeError. A well-formed Kind identifier outside the decoder's KindSet
// is not an error: it maps to the KindUnrecognized sentinel while retaining
// the raw identifier, so re-encoding reproduces the original bytes and newer
// producers stay compatible with older consumers.
//
// # Minimal Surface, No Policy
//
// The core carries no logging, HTTP, retry, or JSON opinions; adapters
// belong in sibling modules. The catalog subpackage ships a ready-made
// TOML-backed Resolver for applications that want file-based message
// catalogs.
package xgxstatus
