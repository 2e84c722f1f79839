// Package kv implements the on-device key/value engine on top of SQLite.
//
// All values live in a single table partitioned by namespace; a Repository
// instance is bound to one namespace and never sees the rows of another.
// The schema is created by Migrate from the embedded goose migrations.
//
// Get returns common.ErrorNotFound for a missing key so that an empty value
// and an absent one are never confused.
package kv
