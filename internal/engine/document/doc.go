// Package document holds an open buffer: its text, per-view selections and
// the optional syntax and diff information text objects consult.
//
// A Document owns:
//
//   - A uuid identity and an optional file path
//   - The current text snapshot and a revision counter
//   - One Selection per view
//   - An optional language, whose syntax tree is parsed lazily and cached
//     per revision
//   - An optional diff handle comparing the text against a baseline
//
// Reads hand out immutable snapshots. Edits go through Commit, which sets
// the acting view's selection and then applies the content change as one
// step under the document lock.
//
// Thread Safety:
//
// All methods are safe for concurrent use.
package document
