// Package store persists resolved N-Triples statements as a deduplicated
// set over a pluggable key-value storage backend.
package store

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrTransactionRO = errors.New("transaction is read-only")
)

// Storage is the interface for the underlying key-value store
type Storage interface {
	// Begin starts a new transaction
	Begin(writable bool) (Transaction, error)

	// Close closes the storage
	Close() error

	// Sync flushes writes to disk
	Sync() error
}

// Transaction represents a storage transaction with snapshot isolation
type Transaction interface {
	// Get retrieves a value by key
	Get(table Table, key []byte) ([]byte, error)

	// Set stores a key-value pair
	Set(table Table, key, value []byte) error

	// Delete removes a key
	Delete(table Table, key []byte) error

	// Scan iterates over every key in the table, in key order
	Scan(table Table) (Iterator, error)

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error
}

// Iterator iterates over key-value pairs
type Iterator interface {
	// Next advances to the next item
	Next() bool

	// Key returns the current key
	Key() []byte

	// Value returns the current value
	Value() ([]byte, error)

	// Close closes the iterator
	Close() error
}

// Table represents a logical table/column family in the storage
type Table byte

const (
	// Node text table: hash -> string
	TableID2Str Table = iota

	// Statement indexes (3 permutations)
	TableSPO
	TablePOS
	TableOSP

	// Total number of tables
	TableCount
)

func (t Table) String() string {
	switch t {
	case TableID2Str:
		return "id2str"
	case TableSPO:
		return "spo"
	case TablePOS:
		return "pos"
	case TableOSP:
		return "osp"
	default:
		return "unknown"
	}
}

// TablePrefix returns the single-byte key prefix for a table.
func TablePrefix(table Table) []byte {
	return []byte{byte(table)}
}

// PrefixKey prepends the table prefix to a key.
func PrefixKey(table Table, key []byte) []byte {
	prefixed := make([]byte, 0, len(key)+1)
	prefixed = append(prefixed, byte(table))
	return append(prefixed, key...)
}
