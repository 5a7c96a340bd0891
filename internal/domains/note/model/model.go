package model

import (
	"organise/shared/constant"
	"organise/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CollectionName = "notes"
	EntityName     = "note"

	FieldTitle      = "title"
	FieldContent    = "content"
	FieldTags       = "tags"
	FieldIsArchived = "is_archived"
)

// SortableFields are the fields a list may be sorted by.
var SortableFields = []string{FieldTitle, FieldIsArchived, constant.FieldCreatedAt, constant.FieldUpdatedAt}

type Note struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Title          string        `bson:"title"`
	Content        string        `bson:"content"`
	Tags           []string      `bson:"tags"`
	IsArchived     bool          `bson:"is_archived"`
	model.Metadata `bson:",inline"`
}
