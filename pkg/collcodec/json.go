// Package collcodec provides value codecs for cosmossdk.io/collections backed
// by plain JSON encoding, for state types that have no protobuf definition.
package collcodec

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	"github.com/pkg/errors"
)

type jsonValue[V any] struct {
	typeName string
}

// JSONValue returns a collections value codec that stores V as JSON.
// typeName is used for schema introspection and must be unique per store.
func JSONValue[V any](typeName string) collcodec.ValueCodec[V] {
	return jsonValue[V]{typeName: typeName}
}

func (c jsonValue[V]) Encode(value V) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", c.typeName)
	}
	return b, nil
}

func (c jsonValue[V]) Decode(b []byte) (V, error) {
	var value V
	if err := json.Unmarshal(b, &value); err != nil {
		return value, errors.Wrapf(err, "failed to decode %s", c.typeName)
	}
	return value, nil
}

func (c jsonValue[V]) EncodeJSON(value V) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValue[V]) DecodeJSON(b []byte) (V, error) {
	return c.Decode(b)
}

func (c jsonValue[V]) Stringify(value V) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValue[V]) ValueType() string {
	return "json(" + c.typeName + ")"
}
