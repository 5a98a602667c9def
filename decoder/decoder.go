package decoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/michalsrutek/arrow"
)

// ErrEmptyInput is returned when the input holds no JSON text
var ErrEmptyInput = errors.New("empty input")

// ErrMalformedInput is returned when the input is not a single JSON value
var ErrMalformedInput = errors.New("malformed json")

// Decode decodes JSON text into a root Value
func Decode(data []byte, opts ...Option) (arrow.Value, error) {
	options := resolveOptions(opts)
	node, err := decodeNode(data, options.ExactNumbers)
	if err != nil {
		return options.Config.Absent(), err
	}
	return options.Config.Value(node), nil
}

// DecodeReader reads r fully and decodes it
func DecodeReader(r io.Reader, opts ...Option) (arrow.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return arrow.Absent(), fmt.Errorf("failed to read input: %w", err)
	}
	return Decode(data, opts...)
}

// Unmarshal decodes JSON text and populates model
func Unmarshal(data []byte, model arrow.Model, opts ...Option) error {
	value, err := Decode(data, opts...)
	if err != nil {
		return err
	}
	model.Populate(value)
	return nil
}

func decodeNode(data []byte, exactNumbers bool) (interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	if exactNumbers {
		return decodeExact(data)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to decode json: %w", ErrMalformedInput)
	}
	var node interface{}
	if err := gojay.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	return node, nil
}

func decodeExact(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var node interface{}
	if err := decoder.Decode(&node); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w: %v", ErrMalformedInput, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to decode json: %w: unexpected data after top-level value", ErrMalformedInput)
	}
	return node, nil
}
