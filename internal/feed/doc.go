// Package feed parses tracker export documents and extracts normalised
// issues from them. It contains the namespace-agnostic tree navigator,
// the HTML sanitiser, and the per-field extractors. Everything here is
// pure: extractors always return a value and only document parsing can
// fail.
package feed
