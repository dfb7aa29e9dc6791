// Package sanitize holds the text transformations used by object types:
// HTML cleaning, URL sanitizing, whitespace collapsing, and a guard for raw
// input documents (size limit and UTF-8 validation).
//
// Every function is pure and safe for concurrent use.
package sanitize
