// Package codec provides pluggable encoders used to persist list snapshots.
package codec

type (
	// Encode serializes a value.
	Encode[T any] func(value T) ([]byte, error)
	// Decode deserializes a value.
	Decode[T any] func(data []byte) (T, error)
)

// Codec pairs an encoder with its decoder. Tag names the struct tag the
// underlying format reads field names from.
type Codec[T any] struct {
	encode Encode[T]
	decode Decode[T]
	tag    string
}

// New builds a Codec from an encoder, a decoder and a struct tag name.
func New[T any](encode Encode[T], decode Decode[T], tag string) Codec[T] {
	return Codec[T]{encode: encode, decode: decode, tag: tag}
}

// Encode serializes value.
func (c Codec[T]) Encode(value T) ([]byte, error) {
	return c.encode(value)
}

// Decode deserializes data.
func (c Codec[T]) Decode(data []byte) (T, error) {
	return c.decode(data)
}

// Tag returns the struct tag name of the format.
func (c Codec[T]) Tag() string {
	return c.tag
}
