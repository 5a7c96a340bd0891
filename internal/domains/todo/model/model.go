package model

import (
	"organise/shared/constant"
	"organise/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CollectionName = "todos"
	EntityName     = "todo"

	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldPriority    = "priority"
)

// SortableFields are the fields a list may be sorted by.
var SortableFields = []string{FieldTitle, FieldCompleted, FieldPriority, constant.FieldCreatedAt, constant.FieldUpdatedAt}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Todo struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Title          string        `bson:"title"`
	Description    string        `bson:"description"`
	Completed      bool          `bson:"completed"`
	Priority       string        `bson:"priority"`
	model.Metadata `bson:",inline"`
}
