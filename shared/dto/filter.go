package dto

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterRawQuery          = "raw"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is one predicate on a document field.
type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq raw is_null is_not_null"`
}

// ToBSON renders the predicate as a MongoDB query document. Unknown operators render as an empty
// document, which matches everything. A raw filter expects Value to already be a bson.D.
func (f *Filter) ToBSON() bson.D {
	switch f.Operator {
	case FilterOperatorEq:
		return bson.D{{Key: f.Field, Value: f.Value}}
	case FilterOperatorLike:
		pattern, _ := f.Value.(string)

		return bson.D{{Key: f.Field, Value: bson.Regex{Pattern: regexp.QuoteMeta(pattern), Options: "i"}}}
	case FilterOperatorIn:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$in", Value: f.Value}}}}
	case FilterOperatorNotEq:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$ne", Value: f.Value}}}}
	case FilterOperatorLessEq:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$lte", Value: f.Value}}}}
	case FilterOperatorGreaterEq:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$gte", Value: f.Value}}}}
	case FilterRawQuery:
		query, _ := f.Value.(bson.D)

		return query
	case FilterIsNotNull:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$ne", Value: nil}}}}
	case FilterIsNull:
		return bson.D{{Key: f.Field, Value: nil}}
	default:
		return bson.D{}
	}
}

// FilterGroup joins filters and nested groups with AND (the default) or OR.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// ToBSON renders the group as {"$and": [...]} or {"$or": [...]}. An empty group renders as an
// empty document.
func (f *FilterGroup) ToBSON() bson.D {
	clauses := bson.A{}

	for _, filter := range f.Filters {
		var clause bson.D

		switch fill := filter.(type) {
		case Filter:
			clause = fill.ToBSON()
		case FilterGroup:
			clause = fill.ToBSON()
		}

		if len(clause) > 0 {
			clauses = append(clauses, clause)
		}
	}

	if len(clauses) == 0 {
		return bson.D{}
	}

	operator := "$and"
	if f.Operator == FilterGroupOperatorOr {
		operator = "$or"
	}

	return bson.D{{Key: operator, Value: clauses}}
}

// Add appends filters to the group.
func (f *FilterGroup) Add(filters ...any) {
	f.Filters = append(f.Filters, filters...)
}
