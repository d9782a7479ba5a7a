// file: internals/features/assessment/standard/dto/adjustment_dto.go
package dto

import "github.com/google/uuid"

// Save (PUT /standard-adjustments/:template_id)
// Semua map opsional; key yang tidak dikirim tidak di-override.
type SaveAdjustmentRequest struct {
	CategoryWeights  map[string]int     `json:"category_weights" validate:"omitempty"`
	AspectWeights    map[string]int     `json:"aspect_weights" validate:"omitempty"`
	AspectRatings    map[string]float64 `json:"aspect_ratings" validate:"omitempty"`
	SubAspectRatings map[string]float64 `json:"sub_aspect_ratings" validate:"omitempty"`
	AspectActive     map[string]bool    `json:"aspect_active" validate:"omitempty"`
	SubAspectActive  map[string]bool    `json:"sub_aspect_active" validate:"omitempty"`
}

// Select (PUT /custom-standards/:id/select) tidak butuh body;
// clear selection pakai DELETE /custom-standards/select/:template_id.

// PUT /report-filters/tolerance
type ToleranceRequest struct {
	Tolerance int `json:"tolerance" validate:"gte=0,lte=100"`
}

// PUT /report-filters
type ReportFilterRequest struct {
	EventCode           *string    `json:"event_code" validate:"omitempty,max=64"`
	PositionFormationID *uuid.UUID `json:"position_formation_id" validate:"omitempty"`
}
