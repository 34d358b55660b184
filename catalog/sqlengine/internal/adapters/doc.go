// Package adapters provide database adapter implementations for the catalog SQL store.
//
// The store works with three database libraries: pgx.Pool, sql.DB, and sqlx.DB.
// All of them are wrapped behind the DBAdapter interface so that the store only ever
// sees plain SQL strings, rows, and results. Transactions are exposed through WithTx,
// which hands a Querier bound to the open transaction to the callback.
package adapters
