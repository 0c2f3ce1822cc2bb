package codec

import "gopkg.in/mgo.v2/bson"

// BSONEncode encodes value as a BSON document, so T must be a struct or a
// map.
func BSONEncode[T any](value T) ([]byte, error) {
	return bson.Marshal(value)
}

// BSONDecode decodes a BSON document into a T.
func BSONDecode[T any](data []byte) (T, error) {
	var v T
	err := bson.Unmarshal(data, &v)
	return v, err
}

// NewBSONCodec returns a Codec backed by gopkg.in/mgo.v2/bson.
func NewBSONCodec[T any]() Codec[T] {
	return Codec[T]{encode: BSONEncode[T], decode: BSONDecode[T], tag: "bson"}
}
