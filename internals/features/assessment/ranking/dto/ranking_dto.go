// file: internals/features/assessment/ranking/dto/ranking_dto.go
package dto

import "github.com/google/uuid"

type RankingEntry struct {
	Rank            int       `json:"rank"`
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	TestNumber      string    `json:"test_number"`

	IndividualRating float64 `json:"individual_rating"`
	IndividualScore  float64 `json:"individual_score"`

	OriginalStandardRating float64 `json:"original_standard_rating"`
	OriginalStandardScore  float64 `json:"original_standard_score"`
	AdjustedStandardRating float64 `json:"adjusted_standard_rating"`
	AdjustedStandardScore  float64 `json:"adjusted_standard_score"`

	OriginalGap float64 `json:"original_gap"`
	AdjustedGap float64 `json:"adjusted_gap"`
	Percentage  float64 `json:"percentage"`

	Conclusion string `json:"conclusion"`
}

type CombinedRankingEntry struct {
	Rank            int       `json:"rank"`
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	TestNumber      string    `json:"test_number"`

	PotensiScore    float64 `json:"potensi_score"`
	KompetensiScore float64 `json:"kompetensi_score"`

	PotensiWeight    int `json:"potensi_weight"`
	KompetensiWeight int `json:"kompetensi_weight"`

	TotalScore float64 `json:"total_score"`
	Conclusion string  `json:"conclusion"`
}

// RekapSummary: ringkasan lolos/tidak per (event, formasi, kategori).
// Degradasi kosong = {total:0, passing:0, percentage:0}.
type RekapSummary struct {
	Total       int            `json:"total"`
	Passing     int            `json:"passing"`
	Percentage  float64        `json:"percentage"`
	Conclusions map[string]int `json:"conclusions"`
}

type McMappingEntry struct {
	Rank            int       `json:"rank"`
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	TestNumber      string    `json:"test_number"`

	IndividualScore       float64 `json:"individual_score"`
	AdjustedStandardScore float64 `json:"adjusted_standard_score"`
	Gap                   float64 `json:"gap"`

	Conclusion  string `json:"conclusion"`
	Recommended bool   `json:"recommended"`
}
