// Package musiclookup backfills missing artist credits for title-only
// entries via the iTunes Search API.
//
// A keyword screen rejects titles that are clearly not songs before any
// network call, and requests are spaced by a minimum interval so bulk
// scans stay inside the API's informal rate limits. Lookups are optional
// sugar: failures and misses leave entries as they were.
package musiclookup
