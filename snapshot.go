package arraylist

import (
	"bytes"
	"fmt"

	"github.com/pavanmanishd/arraylist/codec"
	"golang.org/x/exp/slices"
)

// Snapshot is an encodable copy of a List.
type Snapshot[T any] struct {
	Capacity int `json:"capacity" bson:"capacity"`
	Elements []T `json:"elements" bson:"elements"`
}

// RawSnapshot is an encodable copy of a ByteList. Data holds the live
// elements back to back.
type RawSnapshot struct {
	ElementSize int    `json:"element_size" bson:"element_size"`
	Capacity    int    `json:"capacity" bson:"capacity"`
	Data        []byte `json:"data" bson:"data"`
}

// Snapshot copies the live elements and capacity of l.
func (l *List[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Capacity: len(l.data),
		Elements: slices.Clone(l.live()),
	}
}

// FromSnapshot builds a List holding the elements of s. The recorded
// capacity is a hint, bounded by restoreCapacity.
func FromSnapshot[T comparable](s Snapshot[T], cmp func(a, b T) int, opts ...Option) (*List[T], error) {
	l, err := NewList(cmp, restoreCapacity(s.Capacity, len(s.Elements)), opts...)
	if err != nil {
		return nil, err
	}
	l.size = copy(l.data, s.Elements)
	return l, nil
}

// EncodeList encodes a snapshot of l with c.
func EncodeList[T comparable](l *List[T], c codec.Codec[Snapshot[T]]) ([]byte, error) {
	data, err := c.Encode(l.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encoding %s snapshot: %w", c.Tag(), err)
	}
	return data, nil
}

// DecodeList restores a List encoded by EncodeList.
func DecodeList[T comparable](data []byte, c codec.Codec[Snapshot[T]], cmp func(a, b T) int, opts ...Option) (*List[T], error) {
	s, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrCorruptSnapshot, c.Tag(), err)
	}
	return FromSnapshot(s, cmp, opts...)
}

// Snapshot copies the live elements, element size and capacity of l.
func (l *ByteList) Snapshot() RawSnapshot {
	l.panicIfReleased()
	return RawSnapshot{
		ElementSize: l.elemSize,
		Capacity:    l.capacity,
		Data:        bytes.Clone(l.data[:l.size*l.elemSize]),
	}
}

// FromRawSnapshot builds a ByteList holding the elements of s. The recorded
// capacity is a hint, bounded by restoreCapacity.
func FromRawSnapshot(s RawSnapshot, cmp Comparator, opts ...Option) (*ByteList, error) {
	if s.ElementSize <= 0 || len(s.Data)%s.ElementSize != 0 {
		return nil, fmt.Errorf("%w: %d data bytes with element size %d", ErrCorruptSnapshot, len(s.Data), s.ElementSize)
	}
	n := len(s.Data) / s.ElementSize
	l, err := New(cmp, restoreCapacity(s.Capacity, n), s.ElementSize, opts...)
	if err != nil {
		return nil, err
	}
	copy(l.data, s.Data)
	l.size = n
	return l, nil
}

// EncodeBytes encodes a snapshot of l with c.
func EncodeBytes(l *ByteList, c codec.Codec[RawSnapshot]) ([]byte, error) {
	data, err := c.Encode(l.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encoding %s snapshot: %w", c.Tag(), err)
	}
	return data, nil
}

// DecodeBytes restores a ByteList encoded by EncodeBytes.
func DecodeBytes(data []byte, c codec.Codec[RawSnapshot], cmp Comparator, opts ...Option) (*ByteList, error) {
	s, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrCorruptSnapshot, c.Tag(), err)
	}
	return FromRawSnapshot(s, cmp, opts...)
}

// restoreCapacity returns the capacity for a list restored with n elements.
// The recorded capacity comes from encoded input, so it is kept only up to
// twice max(n, DefaultCapacity) and never below n.
func restoreCapacity(recorded, n int) int {
	limit := 2 * max(n, DefaultCapacity)
	return max(n, min(recorded, limit))
}
