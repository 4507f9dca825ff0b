// Package submission reads and writes the on-disk layout of a phonetic
// submission: per-subset directories of per-utterance text matrices and an
// optional meta.yaml at the submission root.
package submission
