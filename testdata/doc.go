// Package cases holds lint case files. They are embedded and type-checked
// by the analyzer test directly, never built with
//
//	go build
//
// Every case file is self-contained: helpers a case needs are declared in
// the same file. Expected diagnostics are spelled in trailing
//
//	// want "…"
//
// comments on the offending lines.
package cases
