package dataaggregator

import (
	"reflect"
)

// DataSource produces values of the types it advertises through Supports.
// Lookup receives the query struct and returns a value of one of those
// types; queries the source does not recognise return
// source.UnsupportedSourceError.
type DataSource interface {
	GetName() string
	Supports() []reflect.Type
	Lookup(any) (interface{}, error)
}
