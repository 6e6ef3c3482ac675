// Package orchestrator coordinates the pipeline from an editable session to
// rendered output: validate the document, compose and serialize it, then hand
// the YAML to a render client. It provides dependency-injection friendly
// helpers for consumers that prefer a single entry point.
package orchestrator
