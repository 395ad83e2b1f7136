// Package store archives spell verification records. The engine itself is
// stateless; callers that want to keep results and proof commitments around
// use a RecordStore. An in-memory implementation serves tests, a bbolt
// implementation serves persistence.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmsorg/libcharms-go/spell"
)

// Record is one archived verification outcome: which transaction was checked
// for which application, the full result, and the proof commitment if one
// was produced.
type Record struct {
	TxID       [32]byte
	AppTag     string
	Result     spell.CheckResult
	Commitment []byte // nil if the result was not proven
}

// RecordStore persists verification records keyed by (txid, app tag).
type RecordStore interface {
	// PutRecord stores a record. Storing a second record for the same txid
	// and tag returns ErrDuplicateRecord.
	PutRecord(rec *Record) error

	// GetRecord retrieves the record for a txid and app tag.
	GetRecord(txID [32]byte, appTag string) (*Record, error)

	// ListByApp returns all records for an application tag.
	ListByApp(appTag string) ([]*Record, error)

	// DeleteRecord removes the record for a txid and app tag.
	DeleteRecord(txID [32]byte, appTag string) error

	// ListRecords returns all stored records (for backup/export).
	ListRecords() ([]*Record, error)
}

// recordKey is the primary key: txid bytes followed by the tag bytes.
func recordKey(txID [32]byte, appTag string) string {
	return string(txID[:]) + appTag
}

// MemRecordStore is an in-memory implementation of RecordStore for testing.
type MemRecordStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// Compile-time interface check.
var _ RecordStore = (*MemRecordStore)(nil)

// NewMemRecordStore creates a new in-memory record store.
func NewMemRecordStore() *MemRecordStore {
	return &MemRecordStore{records: make(map[string]*Record)}
}

// PutRecord stores a record.
func (s *MemRecordStore) PutRecord(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParam)
	}
	if rec.AppTag == "" {
		return ErrEmptyAppTag
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey(rec.TxID, rec.AppTag)
	if _, exists := s.records[key]; exists {
		return ErrDuplicateRecord
	}
	cp := *rec
	s.records[key] = &cp
	return nil
}

// GetRecord retrieves a record by txid and app tag.
func (s *MemRecordStore) GetRecord(txID [32]byte, appTag string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[recordKey(txID, appTag)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

// ListByApp returns all records for an application tag, ordered by txid.
func (s *MemRecordStore) ListByApp(appTag string) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Record
	for _, rec := range s.records {
		if rec.AppTag == appTag {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sortRecords(out)
	return out, nil
}

// DeleteRecord removes a record.
func (s *MemRecordStore) DeleteRecord(txID [32]byte, appTag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey(txID, appTag)
	if _, ok := s.records[key]; !ok {
		return ErrRecordNotFound
	}
	delete(s.records, key)
	return nil
}

// ListRecords returns all stored records, ordered by txid then tag.
func (s *MemRecordStore) ListRecords() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		out = append(out, &cp)
	}
	sortRecords(out)
	return out, nil
}

func sortRecords(recs []*Record) {
	sort.Slice(recs, func(i, j int) bool {
		return recordKey(recs[i].TxID, recs[i].AppTag) < recordKey(recs[j].TxID, recs[j].AppTag)
	})
}
