package dto

import (
	"organise/internal/domains/todo/model"
	gDto "organise/shared/dto"
)

// TodoRequest is the creation and full-update schema.
type TodoRequest struct {
	Title       string `json:"title"       validate:"required,notblank,max=100"      example:"Buy groceries"`
	Description string `json:"description" validate:"required,notblank,max=500"      example:"Milk, eggs and bread"`
	Completed   bool   `json:"completed"   example:"false"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high" example:"medium"`
}

func (c *TodoRequest) ToModel() model.Todo {
	todo := model.Todo{
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
		Priority:    c.Priority,
	}
	todo.Stamp()

	return todo
}

// ToUpdate is the document written by a full update. created_at is left alone.
func (c *TodoRequest) ToUpdate() model.Todo {
	return model.Todo{
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
		Priority:    c.Priority,
	}
}

type CompletionRequest struct {
	Completed *bool `json:"completed" validate:"required" example:"true"`
}

type TodoResponse struct {
	ID          string `json:"id"          example:"683cdb8aa96ad71e8e075bd1"`
	Title       string `json:"title"       example:"Buy groceries"`
	Description string `json:"description" example:"Milk, eggs and bread"`
	Completed   bool   `json:"completed"   example:"false"`
	Priority    string `json:"priority"    example:"medium"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID.Hex()
	r.Title = todo.Title
	r.Description = todo.Description
	r.Completed = todo.Completed
	r.Priority = todo.Priority
	r.Metadata.FromModel(todo.Metadata)
}

func FromModels(todos []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		res[i].FromModel(todo)
	}

	return res
}
