package movetx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/smartcontractkit/movetx/sdk"
	"github.com/smartcontractkit/movetx/types"
)

const nodeURLEnv = "APTOS_NODE_URL"

func (o *rootOptions) logger() sdk.Logger {
	if !o.verbose {
		return sdk.NopLogger()
	}

	return zap.Must(zap.NewDevelopment()).Sugar()
}

// loadNodeURL returns flagValue if set, otherwise APTOS_NODE_URL from the environment or the
// .env file.
func loadNodeURL(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	nodeURL := os.Getenv(nodeURLEnv)
	if nodeURL == "" {
		return "", errors.New(nodeURLEnv + " not found in environment or .env file")
	}

	return nodeURL, nil
}

// decodeArgs decodes a JSON array of call arguments. Numbers are kept as json.Number so that
// u64 and wider values do not lose precision.
func decodeArgs(raw string) ([]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var values []any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode arguments: %w", err)
	}
	if dec.More() {
		return nil, errors.New("failed to decode arguments: trailing data after JSON array")
	}

	return values, nil
}

// readABIDocuments reads serialized ABIs from files, either raw or as 0x prefixed hex.
func readABIDocuments(paths []string) ([][]byte, error) {
	documents := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read ABI file: %w", err)
		}

		if trimmed := bytes.TrimSpace(data); bytes.HasPrefix(trimmed, []byte("0x")) {
			data, err = hexutil.Decode(string(trimmed))
			if err != nil {
				return nil, fmt.Errorf("failed to decode ABI file %s: %w", path, err)
			}
		}
		documents = append(documents, data)
	}

	return documents, nil
}

func encodePayload(tx types.TxV1, transaction bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if transaction {
		wrapped := types.NewTransactionV1(tx)
		data, err = types.Serialize(&wrapped)
	} else {
		data, err = types.Serialize(&tx)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	return hexutil.Encode(data), nil
}
