package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmsorg/libcharms-go/spell"
)

func testTxID(seed byte) [32]byte {
	var txid [32]byte
	txid[0] = seed
	return txid
}

func testRecord(seed byte, appTag string) *Record {
	in, out := uint64(500), uint64(500)
	return &Record{
		TxID:   testTxID(seed),
		AppTag: appTag,
		Result: spell.CheckResult{
			Valid:     true,
			Type:      spell.AppTypeToken,
			InputSum:  &in,
			OutputSum: &out,
		},
		Commitment: []byte{0x01, 0x02, 0x03},
	}
}

func openStores(t *testing.T) map[string]RecordStore {
	t.Helper()

	bolt, err := OpenBoltRecordStore(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	return map[string]RecordStore{
		"mem":  NewMemRecordStore(),
		"bolt": bolt,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			rec := testRecord(1, "token:gold")
			require.NoError(t, s.PutRecord(rec))

			got, err := s.GetRecord(rec.TxID, rec.AppTag)
			require.NoError(t, err)
			assert.Equal(t, rec.TxID, got.TxID)
			assert.Equal(t, rec.AppTag, got.AppTag)
			assert.Equal(t, rec.Commitment, got.Commitment)
			assert.True(t, got.Result.Valid)
			require.NotNil(t, got.Result.InputSum)
			assert.Equal(t, uint64(500), *got.Result.InputSum)
		})
	}
}

func TestPutDuplicate(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			rec := testRecord(1, "token:gold")
			require.NoError(t, s.PutRecord(rec))
			assert.ErrorIs(t, s.PutRecord(rec), ErrDuplicateRecord)

			// Same txid under another tag is a distinct record.
			other := testRecord(1, "nft:punk")
			assert.NoError(t, s.PutRecord(other))
		})
	}
}

func TestPutInvalid(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.PutRecord(nil), ErrNilParam)
			assert.ErrorIs(t, s.PutRecord(&Record{TxID: testTxID(1)}), ErrEmptyAppTag)
		})
	}
}

func TestGetMissing(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.GetRecord(testTxID(9), "token:gold")
			assert.ErrorIs(t, err, ErrRecordNotFound)
		})
	}
}

func TestListByApp(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.PutRecord(testRecord(1, "token:gold")))
			require.NoError(t, s.PutRecord(testRecord(2, "token:gold")))
			require.NoError(t, s.PutRecord(testRecord(3, "nft:punk")))

			recs, err := s.ListByApp("token:gold")
			require.NoError(t, err)
			require.Len(t, recs, 2)
			assert.Equal(t, testTxID(1), recs[0].TxID)
			assert.Equal(t, testTxID(2), recs[1].TxID)

			recs, err = s.ListByApp("escrow:none")
			require.NoError(t, err)
			assert.Empty(t, recs)
		})
	}
}

func TestDeleteRecord(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			rec := testRecord(1, "token:gold")
			require.NoError(t, s.PutRecord(rec))
			require.NoError(t, s.DeleteRecord(rec.TxID, rec.AppTag))

			_, err := s.GetRecord(rec.TxID, rec.AppTag)
			assert.ErrorIs(t, err, ErrRecordNotFound)
			assert.ErrorIs(t, s.DeleteRecord(rec.TxID, rec.AppTag), ErrRecordNotFound)

			// The app index no longer lists the deleted record.
			recs, err := s.ListByApp(rec.AppTag)
			require.NoError(t, err)
			assert.Empty(t, recs)
		})
	}
}

func TestListRecords(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.PutRecord(testRecord(2, "token:gold")))
			require.NoError(t, s.PutRecord(testRecord(1, "nft:punk")))

			recs, err := s.ListRecords()
			require.NoError(t, err)
			require.Len(t, recs, 2)
			assert.Equal(t, testTxID(1), recs[0].TxID)
			assert.Equal(t, testTxID(2), recs[1].TxID)
		})
	}
}

func TestBoltReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "records.db")

	s, err := OpenBoltRecordStore(dbPath)
	require.NoError(t, err)
	rec := testRecord(1, "token:gold")
	require.NoError(t, s.PutRecord(rec))
	require.NoError(t, s.Close())

	s, err = OpenBoltRecordStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetRecord(rec.TxID, rec.AppTag)
	require.NoError(t, err)
	assert.Equal(t, rec.AppTag, got.AppTag)
}
