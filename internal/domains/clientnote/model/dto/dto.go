package dto

import (
	"strings"

	"thorn/internal/domains/clientnote/model"
	"thorn/shared"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateClientNoteRequest struct {
	ClientEmail string `json:"client_email" validate:"required,email,max=255"`
	ClientName  string `json:"client_name"  validate:"omitempty,max=255"`
	Note        string `json:"note"         validate:"required,max=2000"`
	IsAlert     bool   `json:"is_alert"     validate:"omitempty"`
}

func (c *CreateClientNoteRequest) ToModel(user string) model.ClientNote {
	return model.ClientNote{
		ID:          uuid.NewString(),
		ClientEmail: strings.ToLower(c.ClientEmail),
		ClientName:  c.ClientName,
		Note:        c.Note,
		IsAlert:     c.IsAlert,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClientNoteRequest struct {
	ClientName string `db:"client_name" json:"client_name" validate:"omitempty,max=255"`
	Note       string `db:"note"        json:"note"        validate:"omitempty,max=2000"`
	IsAlert    *bool  `db:"is_alert"    json:"is_alert"    validate:"omitempty"`
}

type ClientNoteResponse struct {
	ID          string `json:"id"`
	ClientEmail string `json:"client_email"`
	ClientName  string `json:"client_name"`
	Note        string `json:"note"`
	IsAlert     bool   `json:"is_alert"`
	gDto.Metadata
}

func (r *ClientNoteResponse) FromModel(model model.ClientNote) {
	r.ID = model.ID
	r.ClientEmail = model.ClientEmail
	r.ClientName = model.ClientName
	r.Note = model.Note
	r.IsAlert = model.IsAlert
	r.Metadata.FromModel(model.Metadata)
}

type GetClientNotesResponse struct {
	ClientNotes []ClientNoteResponse `json:"client_notes"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetClientNotesResponse) FromModels(models []model.ClientNote, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ClientNotes = make([]ClientNoteResponse, len(models))
	for i, mod := range models {
		r.ClientNotes[i].FromModel(mod)
	}
}
