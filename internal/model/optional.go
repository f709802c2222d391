package model

import (
	"bytes"
	"encoding/json"
)

// Optional はJSONのフィールドについて「省略」「null」「値あり」を区別して保持します。
// PATCH的な部分更新で、指定されたフィールドだけを反映するために使います。
type Optional[T any] struct {
	Value T
	Set   bool // JSONにキーが存在した
	Null  bool // 値が null だった
}

// Some は値ありの Optional を返します
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null は明示的に null が指定された Optional を返します
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
