// Package sqlite provides the persistent DocumentStore backed by SQLite
// via the pure-Go modernc.org/sqlite driver. The schema lives in
// embedded migrations; the core never sees SQL.
package sqlite
