// file: internals/features/assessment/scoring/dto/scoring_dto.go
package dto

import "github.com/google/uuid"

/* ==============================
   Hasil per aspek
============================== */

type SubAspectResult struct {
	SubAspectID      uuid.UUID `json:"sub_aspect_id"`
	SubAspectCode    string    `json:"sub_aspect_code"`
	SubAspectName    string    `json:"sub_aspect_name"`
	StandardRating   float64   `json:"standard_rating"`
	IndividualRating float64   `json:"individual_rating"`
	Active           bool      `json:"active"`
}

type AspectResult struct {
	AspectID   uuid.UUID `json:"aspect_id"`
	AspectCode string    `json:"aspect_code"`
	AspectName string    `json:"aspect_name"`
	Weight     int       `json:"weight"`

	IndividualRating float64 `json:"individual_rating"`
	IndividualScore  float64 `json:"individual_score"`

	// standar original (tanpa toleransi)
	StandardRating float64 `json:"standard_rating"`
	StandardScore  float64 `json:"standard_score"`

	// standar setelah toleransi
	AdjustedStandardRating float64 `json:"adjusted_standard_rating"`
	AdjustedStandardScore  float64 `json:"adjusted_standard_score"`

	OriginalGapRating float64 `json:"original_gap_rating"`
	OriginalGapScore  float64 `json:"original_gap_score"`
	GapRating         float64 `json:"gap_rating"`
	GapScore          float64 `json:"gap_score"`

	Conclusion string `json:"conclusion"`

	SubAspects []SubAspectResult `json:"sub_aspects,omitempty"`
}

/* ==============================
   Rollup kategori
============================== */

type CategoryAssessmentResult struct {
	CategoryCode   string `json:"category_code"`
	CategoryName   string `json:"category_name"`
	CategoryWeight int    `json:"category_weight"`

	Aspects []AspectResult `json:"aspects"`

	TotalIndividualRating float64 `json:"total_individual_rating"`
	TotalIndividualScore  float64 `json:"total_individual_score"`

	TotalStandardRating float64 `json:"total_standard_rating"` // original
	TotalStandardScore  float64 `json:"total_standard_score"`

	TotalAdjustedStandardRating float64 `json:"total_adjusted_standard_rating"`
	TotalAdjustedStandardScore  float64 `json:"total_adjusted_standard_score"`

	TotalOriginalGapRating float64 `json:"total_original_gap_rating"`
	TotalOriginalGapScore  float64 `json:"total_original_gap_score"`
	TotalGapRating         float64 `json:"total_gap_rating"`
	TotalGapScore          float64 `json:"total_gap_score"`

	WeightedStandardScore   float64 `json:"weighted_standard_score"`
	WeightedIndividualScore float64 `json:"weighted_individual_score"`
	WeightedGapScore        float64 `json:"weighted_gap_score"`

	Conclusion string `json:"conclusion"`
}

/* ==============================
   Rollup final lintas kategori
============================== */

type FinalAssessmentResult struct {
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`

	Categories []CategoryAssessmentResult `json:"categories"`

	TotalIndividualScore       float64 `json:"total_individual_score"`
	TotalStandardScore         float64 `json:"total_standard_score"` // sudah toleransi
	TotalOriginalStandardScore float64 `json:"total_original_standard_score"`

	OriginalGapScore      float64 `json:"original_gap_score"`
	GapScore              float64 `json:"gap_score"`
	AchievementPercentage float64 `json:"achievement_percentage"`

	Conclusion          string `json:"conclusion"`
	PotentialConclusion string `json:"potential_conclusion"`
}
