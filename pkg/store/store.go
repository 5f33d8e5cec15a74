package store

import (
	"fmt"

	"github.com/semweb-go/ntkit/internal/encoding"
	"github.com/semweb-go/ntkit/pkg/rdf"
)

// StatementStore is a persistent, deduplicated set of resolved
// statements, indexed in three permutations (SPO, POS, OSP) with node
// text held in an id2str side table.
type StatementStore struct {
	storage Storage
	encoder *encoding.NodeEncoder
	decoder *encoding.NodeDecoder
}

// NewStatementStore creates a statement store on top of storage.
func NewStatementStore(storage Storage) *StatementStore {
	return &StatementStore{
		storage: storage,
		encoder: encoding.NewNodeEncoder(),
		decoder: encoding.NewNodeDecoder(),
	}
}

// Close closes the underlying storage.
func (s *StatementStore) Close() error {
	return s.storage.Close()
}

// Insert adds a statement to the store. It reports false when an equal
// statement was already present.
func (s *StatementStore) Insert(stmt rdf.Statement) (bool, error) {
	txn, err := s.storage.Begin(true)
	if err != nil {
		return false, err
	}
	defer txn.Rollback()

	inserted, err := s.insertInTxn(txn, stmt)
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}
	return true, txn.Commit()
}

// InsertBatch adds statements in one transaction and returns how many
// were not already present.
func (s *StatementStore) InsertBatch(stmts []rdf.Statement) (int, error) {
	txn, err := s.storage.Begin(true)
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()

	inserted := 0
	for _, stmt := range stmts {
		ok, err := s.insertInTxn(txn, stmt)
		if err != nil {
			return 0, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, txn.Commit()
}

func (s *StatementStore) insertInTxn(txn Transaction, stmt rdf.Statement) (bool, error) {
	subjEnc, subjStr := s.encoder.EncodeNode(stmt.Subject)
	relEnc, relStr := s.encoder.EncodeNode(stmt.Relation)
	objEnc, objStr := s.encoder.EncodeNode(stmt.Object)

	spoKey := s.encoder.EncodeStatementKey(subjEnc, relEnc, objEnc)
	if _, err := txn.Get(TableSPO, spoKey); err == nil {
		return false, nil
	} else if err != ErrNotFound {
		return false, err
	}

	if err := s.storeString(txn, subjEnc, subjStr); err != nil {
		return false, err
	}
	if err := s.storeString(txn, relEnc, relStr); err != nil {
		return false, err
	}
	if err := s.storeString(txn, objEnc, objStr); err != nil {
		return false, err
	}

	emptyValue := []byte{}
	if err := txn.Set(TableSPO, spoKey, emptyValue); err != nil {
		return false, err
	}
	if err := txn.Set(TablePOS, s.encoder.EncodeStatementKey(relEnc, objEnc, subjEnc), emptyValue); err != nil {
		return false, err
	}
	if err := txn.Set(TableOSP, s.encoder.EncodeStatementKey(objEnc, subjEnc, relEnc), emptyValue); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StatementStore) storeString(txn Transaction, enc encoding.EncodedNode, str *string) error {
	if str == nil {
		return nil
	}
	return txn.Set(TableID2Str, enc[:], []byte(*str))
}

// Contains reports whether an equal statement is in the store.
func (s *StatementStore) Contains(stmt rdf.Statement) (bool, error) {
	txn, err := s.storage.Begin(false)
	if err != nil {
		return false, err
	}
	defer txn.Rollback()

	subjEnc, _ := s.encoder.EncodeNode(stmt.Subject)
	relEnc, _ := s.encoder.EncodeNode(stmt.Relation)
	objEnc, _ := s.encoder.EncodeNode(stmt.Object)

	_, err = txn.Get(TableSPO, s.encoder.EncodeStatementKey(subjEnc, relEnc, objEnc))
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of stored statements.
func (s *StatementStore) Count() (int64, error) {
	txn, err := s.storage.Begin(false)
	if err != nil {
		return 0, err
	}
	defer txn.Rollback()

	it, err := txn.Scan(TableSPO)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	var count int64
	for it.Next() {
		count++
	}
	return count, nil
}

// All returns an iterator over every stored statement in SPO key order.
func (s *StatementStore) All() (*StatementIterator, error) {
	txn, err := s.storage.Begin(false)
	if err != nil {
		return nil, err
	}
	it, err := txn.Scan(TableSPO)
	if err != nil {
		txn.Rollback()
		return nil, err
	}
	return &StatementIterator{store: s, txn: txn, it: it}, nil
}

// StatementIterator iterates over stored statements, decoding index keys
// back into resolved nodes through the id2str table.
type StatementIterator struct {
	store *StatementStore
	txn   Transaction
	it    Iterator
}

// Next advances to the next statement
func (si *StatementIterator) Next() bool {
	return si.it.Next()
}

// Statement decodes the statement at the current position.
func (si *StatementIterator) Statement() (rdf.Statement, error) {
	nodes, err := encoding.SplitStatementKey(si.it.Key())
	if err != nil {
		return rdf.Statement{}, err
	}
	if len(nodes) != 3 {
		return rdf.Statement{}, fmt.Errorf("statement key has %d nodes, want 3", len(nodes))
	}

	subject, err := si.decodeNode(nodes[0])
	if err != nil {
		return rdf.Statement{}, err
	}
	relation, err := si.decodeNode(nodes[1])
	if err != nil {
		return rdf.Statement{}, err
	}
	object, err := si.decodeNode(nodes[2])
	if err != nil {
		return rdf.Statement{}, err
	}
	return rdf.Statement{Subject: subject, Relation: relation, Object: object}, nil
}

func (si *StatementIterator) decodeNode(enc encoding.EncodedNode) (rdf.Node, error) {
	var stored string
	if enc.Kind() != encoding.KindInlineURL {
		val, err := si.txn.Get(TableID2Str, enc[:])
		if err != nil {
			return rdf.Node{}, fmt.Errorf("failed to resolve node text: %w", err)
		}
		stored = string(val)
	}
	return si.store.decoder.DecodeNode(enc, stored)
}

// Close releases the iterator and its read transaction.
func (si *StatementIterator) Close() error {
	si.it.Close()
	return si.txn.Rollback()
}
