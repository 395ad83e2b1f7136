// Command spellcheck verifies a Charms spell from a JSON request.
//
// It reads {"app": ..., "tx": ..., "x": ..., "w": ...} from stdin (or a
// file), runs the checker for the app's namespace, and writes the check
// result as JSON to stdout. With -prove the result is wrapped in a
// deterministic proof commitment under the configured verification key, and
// with -archive the record is stored in the bbolt database under the
// configured data directory.
//
// Exit status: 0 if the spell is valid, 1 if invalid, 2 on malformed input
// or I/O failure.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmsorg/libcharms-go/charm"
	"github.com/charmsorg/libcharms-go/config"
	"github.com/charmsorg/libcharms-go/prove"
	"github.com/charmsorg/libcharms-go/spell"
	"github.com/charmsorg/libcharms-go/store"
)

type request struct {
	App charm.App         `json:"app"`
	Tx  charm.Transaction `json:"tx"`
	X   json.RawMessage   `json:"x,omitempty"`
	W   json.RawMessage   `json:"w,omitempty"`
}

type response struct {
	Result spell.CheckResult `json:"result"`
	Proof  *proofJSON        `json:"proof,omitempty"`
}

type proofJSON struct {
	TxID       string `json:"txid"`
	Commitment string `json:"commitment"`
}

func main() {
	var (
		inputPath  = flag.String("input", "-", "request file, '-' for stdin")
		configPath = flag.String("config", "", "configuration file")
		doProve    = flag.Bool("prove", false, "wrap the result in a proof commitment")
		doArchive  = flag.Bool("archive", false, "store the verification record")
	)
	flag.Parse()

	if err := run(*inputPath, *configPath, *doProve, *doArchive); err != nil {
		if errors.Is(err, errInvalidSpell) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "spellcheck: %v\n", err)
		os.Exit(2)
	}
}

// errInvalidSpell signals a well-formed request whose spell failed checking.
var errInvalidSpell = errors.New("spell is invalid")

func run(inputPath, configPath string, doProve, doArchive bool) error {
	raw, err := readInput(inputPath)
	if err != nil {
		return err
	}

	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	x, err := charm.UnmarshalData(req.X)
	if err != nil {
		return fmt.Errorf("decode x: %w", err)
	}
	w, err := charm.UnmarshalData(req.W)
	if err != nil {
		return fmt.Errorf("decode w: %w", err)
	}

	result := spell.Check(req.App, &req.Tx, x, w)
	resp := response{Result: result}

	cfg := config.DefaultConfig()
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := config.ValidateConfig(cfg); err != nil {
			return err
		}
	}

	var commitment []byte
	if doProve {
		vk, err := cfg.VKHash()
		if err != nil {
			return err
		}
		proof, err := prove.NewProver(vk).Prove(req.Tx.TxID, &result)
		if err != nil {
			return fmt.Errorf("prove: %w", err)
		}
		commitment = proof.Commitment
		resp.Proof = &proofJSON{
			TxID:       charm.HashHex(proof.TxID),
			Commitment: proof.CommitmentHex(),
		}
	}

	if doArchive {
		if err := archive(cfg, &req, result, commitment); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	if !result.Valid {
		return errInvalidSpell
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

func archive(cfg config.Config, req *request, result spell.CheckResult, commitment []byte) error {
	db, err := store.OpenBoltRecordStore(filepath.Join(cfg.DataDir, "records.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	rec := &store.Record{
		TxID:       req.Tx.TxID,
		AppTag:     req.App.Tag,
		Result:     result,
		Commitment: commitment,
	}
	if err := db.PutRecord(rec); err != nil && !errors.Is(err, store.ErrDuplicateRecord) {
		return err
	}
	return nil
}
