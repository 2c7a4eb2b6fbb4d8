package data

import (
	"errors"
	"fmt"
	"reflect"
)

var NotFoundError = errors.New("not found")

// findID reads the exported ID field of entity. The second result reports
// whether the id is the zero value.
func findID[T any, ID comparable](entity T) (ID, bool) {
	valueOfEntity := reflect.ValueOf(entity)
	if !valueOfEntity.IsValid() {
		panic("Entity is nil")
	}
	if valueOfEntity.Type().Kind() == reflect.Pointer {
		if valueOfEntity.IsNil() {
			panic(fmt.Sprintf("Entity '%s' is nil", valueOfEntity.Type()))
		}
		valueOfEntity = reflect.Indirect(valueOfEntity)
	}
	if valueOfEntity.Type().Kind() != reflect.Struct {
		panic(fmt.Sprintf("Entity '%s' is not struct type", valueOfEntity.Type()))
	}
	value := valueOfEntity.FieldByName("ID")
	if !value.IsValid() {
		panic(fmt.Sprintf("Entity '%s' has not ID field", valueOfEntity.Type()))
	}
	if !value.Comparable() {
		panic(fmt.Sprintf("ID field type '%s' of '%s' is not comparable", value.Type(), valueOfEntity.Type()))
	}
	v := value.Interface()
	switch id := v.(type) {
	case ID:
		return id, value.IsZero()
	default:
		panic("Entity's ID field type is different from ID type constraint")
	}
}

// FieldID is the default IDFunc. It reads the entity's ID field by reflection
// and panics when T has no ID field of type ID.
func FieldID[T any, ID comparable](entity T) ID {
	id, _ := findID[T, ID](entity)
	return id
}
