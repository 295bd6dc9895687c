package optional

import (
	"bytes"
	"encoding/json"
)

// Value представляет поле частичного обновления с явным признаком присутствия.
//
// Для PATCH-запросов важно различать три состояния поля:
//   - поле отсутствует в JSON — значение базовой записи сохраняется;
//   - поле равно null — значение явно сбрасывается (для nullable-полей);
//   - поле задано — значение явно перезаписывается.
//
// Обычный указатель (*T) не отличает первые два случая, поэтому поля
// PATCH-контрактов оборачиваются в Value[T].
type Value[T any] struct {
	value   T
	set     bool
	present bool // false, если поле присутствовало, но было null
}

// Of возвращает присутствующее значение.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true, present: true}
}

// Null возвращает явно сброшенное значение (поле было null).
func Null[T any]() Value[T] {
	return Value[T]{set: true}
}

// IsSet возвращает true, если поле присутствовало в запросе
// (в том числе со значением null).
func (v Value[T]) IsSet() bool {
	return v.set
}

// IsNull возвращает true, если поле присутствовало и было равно null.
func (v Value[T]) IsNull() bool {
	return v.set && !v.present
}

// Get возвращает значение и признак того, что оно было задано не-null.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set && v.present
}

// UnmarshalJSON вызывается encoding/json только для присутствующих полей,
// что и фиксирует признак set.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(data, []byte("null")) {
		v.present = false
		var zero T
		v.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &v.value); err != nil {
		return err
	}
	v.present = true
	return nil
}

// MarshalJSON сериализует значение; отсутствующее поле сериализуется как null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
