package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// DecodeStrict декодирует JSON-данные в out, запрещая неизвестные поля
// и мусор после первого значения.
func DecodeStrict(data []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level JSON value")
	}
	return nil
}
