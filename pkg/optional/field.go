package optional

import (
	"bytes"
	"encoding/json"
)

// Field значение для частичного обновления (PATCH)
// Различает три состояния:
//   - поле отсутствует в запросе (Set == false)
//   - поле передано как null (Set == true, Null == true)
//   - поле передано со значением (Set == true, Null == false)
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of создает заданное поле со значением
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null создает поле, явно выставленное в null
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// IsSet возвращает true, если поле присутствовало в запросе
func (f Field[T]) IsSet() bool {
	return f.Set
}

// HasValue возвращает true, если поле передано и не равно null
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// Ptr возвращает значение как указатель: nil для null
// Вызывать только для заданного поля
func (f Field[T]) Ptr() *T {
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// UnmarshalJSON реализует json.Unmarshaler
// Вызывается только если ключ присутствует в теле запроса
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON реализует json.Marshaler
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
