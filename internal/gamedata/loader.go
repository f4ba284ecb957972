package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes an embedded table. Unknown keys are rejected so a misspelled
// stat fails at startup instead of silently reading as zero.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := tables.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read table %s: %w", filename, err)
	}
	if err := decodeStrict(content, &result); err != nil {
		return result, fmt.Errorf("decode table %s: %w", filename, err)
	}
	return result, nil
}

// MustLoad is Load for tables the game cannot start without.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

func decodeStrict(content []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
