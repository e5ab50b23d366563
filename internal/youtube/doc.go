// Package youtube is a minimal YouTube Data API v3 client covering the
// read paths the scan pipeline needs: resolving a channel's uploads
// playlist, walking it for video IDs, fetching video snippets with live
// streaming details, and flattening comment threads. It never writes.
package youtube
