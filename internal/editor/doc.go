// Package editor ties documents, modes, registers and the text-object
// engine into an editing session.
//
// # Text objects
//
// A text-object command such as SelectTextObjectInner records a pending
// Request (span, operation, count) and shows a help overlay. The next
// character key delivered to HandleKey is the object code. The driver
// resolves it against every range of the current selection, compares
// each range with its original, and hands the new selection to the
// operation dispatcher (select, change, delete or yank).
//
// When nothing changed and the code is a literal delimiter, the driver
// searches forward for the delimiter and retries from there:
//
//	(foo) bar         cursor on "bar", "mi(" finds no pair
//	^                 the search lands on the next "(" ...
//
// For quotes, the cursor line must hold at least two of them.
//
// Non-character keys leave the request pending. The session is
// single-threaded; per-range resolution may fan out over goroutines above
// Config.ParallelThreshold since resolution only reads a snapshot.
package editor
