// Package sqlite implements the collection and company repositories on an
// embedded SQLite database (modernc.org/sqlite). It mirrors the postgresql
// package query for query so either backend can serve the API.
package sqlite
