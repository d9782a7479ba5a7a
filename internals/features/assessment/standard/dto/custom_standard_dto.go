// file: internals/features/assessment/standard/dto/custom_standard_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"spsp_backend/internals/features/assessment/standard/model"
)

/* ==============================
   REQUESTS
============================== */

type AspectConfigPayload struct {
	Weight int      `json:"weight" validate:"gte=0,lte=100"`
	Active *bool    `json:"active" validate:"omitempty"`
	Rating *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type SubAspectConfigPayload struct {
	Rating *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Active *bool    `json:"active" validate:"omitempty"`
}

// Create (POST /custom-standards)
type CreateCustomStandardRequest struct {
	CustomStandardInstitutionID uuid.UUID `json:"custom_standard_institution_id" validate:"required"`
	CustomStandardTemplateID    uuid.UUID `json:"custom_standard_template_id" validate:"required"`
	CustomStandardName          string    `json:"custom_standard_name" validate:"required,max=180"`

	CategoryWeights  map[string]int                    `json:"category_weights" validate:"omitempty"`
	AspectConfigs    map[string]AspectConfigPayload    `json:"aspect_configs" validate:"omitempty,dive"`
	SubAspectConfigs map[string]SubAspectConfigPayload `json:"sub_aspect_configs" validate:"omitempty,dive"`
}

// Patch (PATCH /custom-standards/:id) — partial update
type PatchCustomStandardRequest struct {
	CustomStandardName *string `json:"custom_standard_name" validate:"omitempty,max=180"`

	CategoryWeights  map[string]int                    `json:"category_weights" validate:"omitempty"`
	AspectConfigs    map[string]AspectConfigPayload    `json:"aspect_configs" validate:"omitempty,dive"`
	SubAspectConfigs map[string]SubAspectConfigPayload `json:"sub_aspect_configs" validate:"omitempty,dive"`
}

/* ==============================
   RESPONSES
============================== */

type CustomStandardResponse struct {
	CustomStandardID            uuid.UUID `json:"custom_standard_id"`
	CustomStandardInstitutionID uuid.UUID `json:"custom_standard_institution_id"`
	CustomStandardTemplateID    uuid.UUID `json:"custom_standard_template_id"`
	CustomStandardName          string    `json:"custom_standard_name"`

	CategoryWeights  map[string]int                                     `json:"category_weights"`
	AspectConfigs    map[string]model.CustomStandardAspectConfig        `json:"aspect_configs"`
	SubAspectConfigs map[string]model.CustomStandardSubAspectConfig     `json:"sub_aspect_configs"`

	CustomStandardCreatedAt time.Time `json:"custom_standard_created_at"`
	CustomStandardUpdatedAt time.Time `json:"custom_standard_updated_at"`
}

func ToCustomStandardResponse(m *model.CustomStandardModel) CustomStandardResponse {
	return CustomStandardResponse{
		CustomStandardID:            m.CustomStandardID,
		CustomStandardInstitutionID: m.CustomStandardInstitutionID,
		CustomStandardTemplateID:    m.CustomStandardTemplateID,
		CustomStandardName:          m.CustomStandardName,
		CategoryWeights:             m.CategoryWeights(),
		AspectConfigs:               m.AspectConfigs(),
		SubAspectConfigs:            m.SubAspectConfigs(),
		CustomStandardCreatedAt:     m.CustomStandardCreatedAt,
		CustomStandardUpdatedAt:     m.CustomStandardUpdatedAt,
	}
}
