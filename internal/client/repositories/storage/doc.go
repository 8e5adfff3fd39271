// Package storage provides the client-side key/value store.
//
// # Overview
//
// Repository is an opaque, persistent, string-keyed store with single and
// batched operations. The session layer keeps the token and the serialized
// user in it under fixed keys (see internal/common).
//
// Batched writes and removes are atomic: SQLiteRepository runs them in one
// transaction, so either every key changes or none does.
//
// Typical Usage
//
//	repo := storage.NewSQLiteRepository(db)
//	_ = repo.MultiSet(ctx, []storage.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})
//	values, _ := repo.MultiGet(ctx, "a", "b")
package storage
