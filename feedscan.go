// Package feedscan extracts job postings from heterogeneous XML feed files
// whose schemas are not known in advance, and searches the extracted records
// by team and by job identifier. Fields are resolved with a tolerant,
// multi-alias, namespace-agnostic tag lookup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, fs/).
package feedscan
