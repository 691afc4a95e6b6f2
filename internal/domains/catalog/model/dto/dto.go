package dto

import (
	categoryModel "thorn/internal/domains/category/model"
	"thorn/internal/domains/catalog/model"
	"thorn/shared"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	CategoryID      *string `json:"category_id"      validate:"omitempty,uuid"`
	Name            string  `json:"name"             validate:"required,max=150"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=5,lte=480"`
	Price           float64 `json:"price"            validate:"omitempty,gte=0"`
	Description     string  `json:"description"      validate:"omitempty,max=2000"`
	DisplayOrder    int     `json:"display_order"    validate:"omitempty,gte=0"`
	Active          *bool   `json:"active"           validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		CategoryID:      c.CategoryID,
		Name:            c.Name,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Description:     c.Description,
		DisplayOrder:    c.DisplayOrder,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	CategoryID      *string  `db:"category_id"      json:"category_id"      validate:"omitempty,uuid"`
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=150"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gte=5,lte=480"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,gte=0"`
	Description     *string  `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	DisplayOrder    *int     `db:"display_order"    json:"display_order"    validate:"omitempty,gte=0"`
	Active          *bool    `db:"active"           json:"active"           validate:"omitempty"`
}

type ReorderServicesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	CategoryID      *string `json:"category_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	DisplayOrder    int     `json:"display_order"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.CategoryID = model.CategoryID
	r.Name = model.Name
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price
	r.Description = model.Description
	r.DisplayOrder = model.DisplayOrder
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

// ImportRow is one parsed CSV line, valid or not.
type ImportRow struct {
	Line            int      `json:"line"`
	CategoryName    string   `json:"category_name"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	Errors          []string `json:"errors,omitempty"`
}

type ImportPreviewResponse struct {
	Rows       []ImportRow `json:"rows"`
	ValidCount int         `json:"valid_count"`
	ErrorCount int         `json:"error_count"`
}

type ImportConfirmResponse struct {
	Imported   int    `json:"imported"`
	ArchiveURL string `json:"archive_url,omitempty"`
}

// PublicService is the trimmed service shape served on the booking page.
type PublicService struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
}

type PublicCategory struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Services []PublicService `json:"services"`
}

type PublicCatalogResponse struct {
	BusinessName  string           `json:"business_name"`
	BusinessPhone string           `json:"business_phone"`
	Categories    []PublicCategory `json:"categories"`
}

func (p *PublicCatalogResponse) FromModels(categories []categoryModel.Category, services []model.Service) {
	p.Categories = make([]PublicCategory, 0, len(categories)+1)

	assigned := map[string]bool{}

	for _, cat := range categories {
		publicCategory := PublicCategory{
			ID:       cat.ID,
			Name:     cat.Name,
			Services: []PublicService{},
		}

		for _, svc := range services {
			if svc.CategoryID != nil && *svc.CategoryID == cat.ID {
				publicCategory.Services = append(publicCategory.Services, toPublicService(svc))
				assigned[svc.ID] = true
			}
		}

		if len(publicCategory.Services) > 0 {
			p.Categories = append(p.Categories, publicCategory)
		}
	}

	// Services without a category land in an unnamed trailing group.
	uncategorized := PublicCategory{Name: "Other", Services: []PublicService{}}

	for _, svc := range services {
		if !assigned[svc.ID] {
			uncategorized.Services = append(uncategorized.Services, toPublicService(svc))
		}
	}

	if len(uncategorized.Services) > 0 {
		p.Categories = append(p.Categories, uncategorized)
	}
}

func toPublicService(svc model.Service) PublicService {
	return PublicService{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Description:     svc.Description,
	}
}
