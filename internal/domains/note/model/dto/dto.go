package dto

import (
	"organise/internal/domains/note/model"
	gDto "organise/shared/dto"
)

// NoteRequest is the creation and full-update schema.
type NoteRequest struct {
	Title      string   `json:"title"       validate:"required,notblank,max=100" example:"Meeting notes"`
	Content    string   `json:"content"     validate:"required,notblank"         example:"Discussed the Q3 roadmap"`
	Tags       []string `json:"tags"        validate:"omitempty,dive,notblank"   example:"work,planning"`
	IsArchived bool     `json:"is_archived" example:"false"`
}

func (c *NoteRequest) ToModel() model.Note {
	note := c.ToUpdate()
	note.Stamp()

	return note
}

// ToUpdate is the document written by a full update. created_at is left alone.
func (c *NoteRequest) ToUpdate() model.Note {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Note{
		Title:      c.Title,
		Content:    c.Content,
		Tags:       tags,
		IsArchived: c.IsArchived,
	}
}

type NoteResponse struct {
	ID         string   `json:"id"          example:"683cdb8aa96ad71e8e075bd1"`
	Title      string   `json:"title"       example:"Meeting notes"`
	Content    string   `json:"content"     example:"Discussed the Q3 roadmap"`
	Tags       []string `json:"tags"        example:"work,planning"`
	IsArchived bool     `json:"is_archived" example:"false"`
	gDto.Metadata
}

func (r *NoteResponse) FromModel(note model.Note) {
	r.ID = note.ID.Hex()
	r.Title = note.Title
	r.Content = note.Content
	r.Tags = note.Tags
	r.IsArchived = note.IsArchived
	r.Metadata.FromModel(note.Metadata)

	if r.Tags == nil {
		r.Tags = []string{}
	}
}

func FromModels(notes []model.Note) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i, note := range notes {
		res[i].FromModel(note)
	}

	return res
}
