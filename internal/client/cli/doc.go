// Package cli implements the interactive Event Hub shell: a long-lived
// read–eval–print loop over the composite client state (session, current
// search results, favorites view, last error). All work is triggered by
// discrete user commands; a command runs to completion before the next
// prompt, so no two network calls are ever in flight together.
package cli
