package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	bucketRecords    = []byte("records")
	bucketRecordsApp = []byte("records_app")
)

// BoltRecordStore persists verification records in a bbolt database.
type BoltRecordStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ RecordStore = (*BoltRecordStore)(nil)

// OpenBoltRecordStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltRecordStore(dbPath string) (*BoltRecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketRecordsApp} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create buckets: %w", err)
	}

	return &BoltRecordStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltRecordStore) Close() error { return s.db.Close() }

// appIndexKey builds the secondary index key: tag, a zero separator (tags
// never contain NUL), then the primary key for prefix scanning.
func appIndexKey(appTag string, primary []byte) []byte {
	k := make([]byte, 0, len(appTag)+1+len(primary))
	k = append(k, appTag...)
	k = append(k, 0)
	k = append(k, primary...)
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// PutRecord stores a record. Returns ErrDuplicateRecord if a record for the
// txid and tag already exists.
func (s *BoltRecordStore) PutRecord(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParam)
	}
	if rec.AppTag == "" {
		return ErrEmptyAppTag
	}

	primary := []byte(recordKey(rec.TxID, rec.AppTag))
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		if b.Get(primary) != nil {
			return ErrDuplicateRecord
		}
		data, err := encodeGob(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		if err := b.Put(primary, data); err != nil {
			return fmt.Errorf("boltstore: put record: %w", err)
		}
		if err := tx.Bucket(bucketRecordsApp).Put(appIndexKey(rec.AppTag, primary), []byte{}); err != nil {
			return fmt.Errorf("boltstore: put app index: %w", err)
		}
		return nil
	})
}

// GetRecord retrieves a record by txid and app tag.
func (s *BoltRecordStore) GetRecord(txID [32]byte, appTag string) (*Record, error) {
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecords).Get([]byte(recordKey(txID, appTag)))
		if data == nil {
			return ErrRecordNotFound
		}
		if err := decodeGob(data, &rec); err != nil {
			return fmt.Errorf("boltstore: decode record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByApp returns all records for an application tag.
func (s *BoltRecordStore) ListByApp(appTag string) ([]*Record, error) {
	prefix := appIndexKey(appTag, nil)

	var recs []*Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		idx := tx.Bucket(bucketRecordsApp)
		records := tx.Bucket(bucketRecords)

		c := idx.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			primary := k[len(prefix):]
			data := records.Get(primary)
			if data == nil {
				continue // stale index entry
			}
			var rec Record
			if err := decodeGob(data, &rec); err != nil {
				return fmt.Errorf("boltstore: decode record by app: %w", err)
			}
			recs = append(recs, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: list by app: %w", err)
	}
	return recs, nil
}

// DeleteRecord removes a record and its app index entry.
func (s *BoltRecordStore) DeleteRecord(txID [32]byte, appTag string) error {
	primary := []byte(recordKey(txID, appTag))
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		if b.Get(primary) == nil {
			return ErrRecordNotFound
		}
		if err := b.Delete(primary); err != nil {
			return fmt.Errorf("boltstore: delete record: %w", err)
		}
		if err := tx.Bucket(bucketRecordsApp).Delete(appIndexKey(appTag, primary)); err != nil {
			return fmt.Errorf("boltstore: delete app index: %w", err)
		}
		return nil
	})
}

// ListRecords returns all stored records.
func (s *BoltRecordStore) ListRecords() ([]*Record, error) {
	var recs []*Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(k, v []byte) error {
			var rec Record
			if err := decodeGob(v, &rec); err != nil {
				return fmt.Errorf("boltstore: decode record in list: %w", err)
			}
			recs = append(recs, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: list records: %w", err)
	}
	return recs, nil
}
