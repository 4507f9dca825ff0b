// Package orchestrator drives one filtered-submission run: it resolves the
// subset directories of the input submission, converts every representation
// file with the configured filter and mirrors the result under
//
//	<output>/<filter_kind>/<window_tag>/<submission_dirname>/phonetic/<subset>/<name>.txt
package orchestrator
