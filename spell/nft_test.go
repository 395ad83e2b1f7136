package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmsorg/libcharms-go/charm"
)

// nftTx builds a transaction carrying one Bytes charm value per input and
// output id under tag.
func nftTx(tag string, inputIDs, outputIDs [][]byte) *charm.Transaction {
	tx := charm.NewTransaction(makeTxID(0x06))
	for i, id := range inputIDs {
		tx.AddInput(charm.TxInput{
			UTXORef:    charm.UTXORef{Vout: uint32(i)},
			CharmState: charm.NewCharmState().WithApp(tag, charm.Bytes(id)),
		})
	}
	for i, id := range outputIDs {
		tx.AddOutput(charm.TxOutput{
			Index:      uint32(i),
			Value:      546,
			CharmState: charm.NewCharmState().WithApp(tag, charm.Bytes(id)),
		})
	}
	return tx
}

func TestCheckNFT_Transfer(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	id := []byte{0xab, 0x12}
	tx := nftTx(app.Tag, [][]byte{id}, [][]byte{id})

	result := CheckNFT(app, tx, charm.Empty{}, charm.Empty{})

	assert.True(t, result.Valid)
	assert.Equal(t, []string{"ab12"}, result.NFTIDs)
	assert.Empty(t, result.DuplicateNFTs)
}

func TestCheckNFT_DuplicateOutputs(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	id := []byte{0xab, 0x12}
	tx := nftTx(app.Tag, nil, [][]byte{id, id})

	result := CheckNFT(app, tx, charm.Bytes{0x01}, charm.Empty{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"ab12"}, result.DuplicateNFTs)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Duplicate NFT in outputs: ab12", result.Errors[0])
}

func TestCheckNFT_TripleDuplicate(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	id := []byte{0xcc}
	tx := nftTx(app.Tag, nil, [][]byte{id, id, id})

	result := CheckNFT(app, tx, charm.Bytes{0x01}, charm.Empty{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"cc", "cc"}, result.DuplicateNFTs)
}

func TestCheckNFT_AuthorizedMint(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	tx := nftTx(app.Tag, nil, [][]byte{{0x01, 0x02}})

	result := CheckNFT(app, tx, charm.Bytes{0x30, 0x44}, charm.Empty{})

	assert.True(t, result.Valid)
	assert.Equal(t, []string{"0102"}, result.NFTIDs)
}

func TestCheckNFT_UnauthorizedMint(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	tx := nftTx(app.Tag, nil, [][]byte{{0x01, 0x02}})

	result := CheckNFT(app, tx, charm.Empty{}, charm.Empty{})

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "NFT mint without authorization: 0102", result.Errors[0])
}

func TestCheckNFT_MixedTransferAndMint(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	existing := []byte{0xaa}
	minted := []byte{0xbb}
	tx := nftTx(app.Tag, [][]byte{existing}, [][]byte{existing, minted})

	// Without authorization only the new id is rejected.
	result := CheckNFT(app, tx, charm.Empty{}, charm.Empty{})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "NFT mint without authorization: bb", result.Errors[0])

	// With authorization the whole transaction passes.
	result = CheckNFT(app, tx, charm.Bytes{0x01}, charm.Empty{})
	assert.True(t, result.Valid)
	assert.Equal(t, []string{"aa", "bb"}, result.NFTIDs)
}

func TestCheckNFT_OrderPreserved(t *testing.T) {
	app := charm.NewApp("nft:art", makeVK(0))
	ids := [][]byte{{0x03}, {0x01}, {0x02}}
	tx := nftTx(app.Tag, ids, ids)

	result := CheckNFT(app, tx, charm.Empty{}, charm.Empty{})

	assert.True(t, result.Valid)
	assert.Equal(t, []string{"03", "01", "02"}, result.NFTIDs)
}
