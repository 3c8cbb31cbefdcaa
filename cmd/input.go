package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gnolang/shrink/codec"
	"github.com/gnolang/shrink/types"
)

// readValue decodes the JSON document at path, or stdin when path is empty
// or "-".
func readValue(stdin io.Reader, path string, cdc codec.Codec) (types.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading input %s: %w", displayName(path), err)
	}

	v, err := cdc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error reading input %s: %w", displayName(path), err)
	}
	return v, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}
