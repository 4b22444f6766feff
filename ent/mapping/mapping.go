// Code generated by ent, DO NOT EDIT.

package mapping

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mapping type in the database.
	Label = "mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCollectionID holds the string denoting the collection_id field in the database.
	FieldCollectionID = "collection_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldAttemptsStore holds the string denoting the attempts_store field in the database.
	FieldAttemptsStore = "attempts_store"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// Table holds the table name of the mapping in the database.
	Table = "mappings"
)

// Columns holds all SQL columns for mapping fields.
var Columns = []string{
	FieldID,
	FieldCollectionID,
	FieldDomain,
	FieldTitle,
	FieldFingerprint,
	FieldAttemptsStore,
	FieldConfirmedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CollectionIDValidator is a validator for the "collection_id" field. It is called by the builders before save.
	CollectionIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// DefaultAttemptsStore holds the default value on creation for the "attempts_store" field.
	DefaultAttemptsStore bool
)

// OrderOption defines the ordering options for the Mapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCollectionID orders the results by the collection_id field.
func ByCollectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectionID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByAttemptsStore orders the results by the attempts_store field.
func ByAttemptsStore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsStore, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}
