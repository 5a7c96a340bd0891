package dto_test

import (
	"organise/internal/domains/todo/model"
	"organise/internal/domains/todo/model/dto"
	"organise/shared/failure"
	"organise/shared/validator"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func validRequest() dto.TodoRequest {
	return dto.TodoRequest{
		Title:       "Buy groceries",
		Description: "Milk, eggs and bread",
		Priority:    model.PriorityMedium,
	}
}

func TestTodoRequest_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *dto.TodoRequest)
		wantField string
	}{
		{name: "valid", mutate: func(_ *dto.TodoRequest) {}},
		{name: "empty title", mutate: func(req *dto.TodoRequest) { req.Title = "" }, wantField: "title"},
		{name: "blank title", mutate: func(req *dto.TodoRequest) { req.Title = "   " }, wantField: "title"},
		{name: "title of 100 characters", mutate: func(req *dto.TodoRequest) { req.Title = strings.Repeat("a", 100) }},
		{name: "title over 100 characters", mutate: func(req *dto.TodoRequest) { req.Title = strings.Repeat("a", 101) }, wantField: "title"},
		{name: "empty description", mutate: func(req *dto.TodoRequest) { req.Description = "" }, wantField: "description"},
		{name: "description over 500 characters", mutate: func(req *dto.TodoRequest) { req.Description = strings.Repeat("a", 501) }, wantField: "description"},
		{name: "empty priority", mutate: func(req *dto.TodoRequest) { req.Priority = "" }, wantField: "priority"},
		{name: "unknown priority", mutate: func(req *dto.TodoRequest) { req.Priority = "urgent" }, wantField: "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, failure.KindValidation, fail.Kind)
			assert.Contains(t, fail.Fields, tt.wantField)
		})
	}
}

func TestTodoRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.Completed = true

	todo := req.ToModel()

	assert.True(t, todo.ID.IsZero())
	assert.Equal(t, req.Title, todo.Title)
	assert.Equal(t, req.Description, todo.Description)
	assert.True(t, todo.Completed)
	assert.Equal(t, model.PriorityMedium, todo.Priority)
	assert.False(t, todo.CreatedAt.IsZero())
	assert.Equal(t, todo.CreatedAt, todo.UpdatedAt)

	update := req.ToUpdate()
	assert.True(t, update.CreatedAt.IsZero())
}

func TestTodoResponse_FromModel(t *testing.T) {
	id := bson.NewObjectID()
	createdAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	todo := model.Todo{ID: id, Title: "Read", Description: "A book", Priority: model.PriorityLow}
	todo.CreatedAt = createdAt
	todo.UpdatedAt = createdAt.Add(time.Hour)

	res := dto.TodoResponse{}
	res.FromModel(todo)

	assert.Equal(t, id.Hex(), res.ID)
	assert.Equal(t, "Read", res.Title)
	assert.Equal(t, model.PriorityLow, res.Priority)
	assert.NotEmpty(t, res.CreatedAt)
	assert.NotEqual(t, res.CreatedAt, res.UpdatedAt)

	list := dto.FromModels([]model.Todo{})
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
