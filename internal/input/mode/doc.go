// Package mode defines the editing modes of an editor session.
//
//   - Normal: commands and text-object requests
//   - Insert: entered by change operations at the deletion point
//   - Select: selections extend instead of replace
//   - Browse: a directory-listing buffer is focused
//
// The Manager tracks the current and previous mode and notifies
// callbacks on every transition.
package mode
