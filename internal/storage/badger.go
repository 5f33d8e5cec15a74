// Package storage provides the BadgerDB implementation of the store's
// Storage interface.
package storage

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/semweb-go/ntkit/pkg/store"
)

// BadgerStorage implements store.Storage using BadgerDB
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage creates a new BadgerDB-backed storage
func NewBadgerStorage(path string) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &BadgerStorage{db: db}, nil
}

// Begin starts a new transaction
func (s *BadgerStorage) Begin(writable bool) (store.Transaction, error) {
	txn := s.db.NewTransaction(writable)
	return &BadgerTransaction{
		txn:      txn,
		writable: writable,
	}, nil
}

// Close closes the storage
func (s *BadgerStorage) Close() error {
	return s.db.Close()
}

// Sync flushes writes to disk
func (s *BadgerStorage) Sync() error {
	return s.db.Sync()
}

// BadgerTransaction implements store.Transaction using BadgerDB
type BadgerTransaction struct {
	txn      *badger.Txn
	writable bool
}

// Get retrieves a value by key
func (t *BadgerTransaction) Get(table store.Table, key []byte) ([]byte, error) {
	item, err := t.txn.Get(store.PrefixKey(table, key))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	var value []byte
	err = item.Value(func(val []byte) error {
		value = append([]byte{}, val...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores a key-value pair
func (t *BadgerTransaction) Set(table store.Table, key, value []byte) error {
	if !t.writable {
		return store.ErrTransactionRO
	}
	return t.txn.Set(store.PrefixKey(table, key), value)
}

// Delete removes a key
func (t *BadgerTransaction) Delete(table store.Table, key []byte) error {
	if !t.writable {
		return store.ErrTransactionRO
	}
	return t.txn.Delete(store.PrefixKey(table, key))
}

// Scan iterates over every key in the table. Statement keys are
// fixed-width, so a plain prefix scan in key order is sufficient.
func (t *BadgerTransaction) Scan(table store.Table) (store.Iterator, error) {
	prefix := store.TablePrefix(table)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := t.txn.NewIterator(opts)

	return &BadgerIterator{
		it:     it,
		prefix: prefix,
	}, nil
}

// Commit commits the transaction
func (t *BadgerTransaction) Commit() error {
	return t.txn.Commit()
}

// Rollback rolls back the transaction
func (t *BadgerTransaction) Rollback() error {
	t.txn.Discard()
	return nil
}

// BadgerIterator implements store.Iterator using BadgerDB
type BadgerIterator struct {
	it       *badger.Iterator
	prefix   []byte
	started  bool
	hasValue bool
}

// Next advances to the next item
func (i *BadgerIterator) Next() bool {
	if !i.started {
		i.it.Seek(i.prefix)
		i.started = true
	} else {
		i.it.Next()
	}

	i.hasValue = i.it.Valid()
	return i.hasValue
}

// Key returns the current key (without the table prefix)
func (i *BadgerIterator) Key() []byte {
	if !i.hasValue {
		return nil
	}

	key := i.it.Item().Key()
	if len(key) > len(i.prefix) {
		return key[len(i.prefix):]
	}
	return nil
}

// Value returns the current value
func (i *BadgerIterator) Value() ([]byte, error) {
	if !i.hasValue {
		return nil, store.ErrNotFound
	}

	var value []byte
	err := i.it.Item().Value(func(val []byte) error {
		value = append([]byte{}, val...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Close closes the iterator
func (i *BadgerIterator) Close() error {
	i.it.Close()
	return nil
}
