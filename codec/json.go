package codec

import "github.com/goccy/go-json"

// NewJSONCodec returns a Codec backed by github.com/goccy/go-json.
func NewJSONCodec[T any]() Codec[T] {
	return Codec[T]{encode: JSONEncode[T], decode: JSONDecode[T], tag: "json"}
}

// JSONEncode encodes value as JSON.
func JSONEncode[T any](value T) ([]byte, error) {
	return json.Marshal(value)
}

// JSONDecode decodes JSON data into a T.
func JSONDecode[T any](data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
