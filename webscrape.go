// Package webscrape provides a small HTTP service that fetches a single web
// page and returns its textual content, trimmed and size-bounded, for use as
// language model context.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, http/).
package webscrape
