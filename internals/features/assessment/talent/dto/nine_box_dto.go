// file: internals/features/assessment/talent/dto/nine_box_dto.go
package dto

import "github.com/google/uuid"

type NineBoxParticipant struct {
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	TestNumber      string    `json:"test_number"`

	PotensiRating float64 `json:"potensi_rating"`
	KinerjaRating float64 `json:"kinerja_rating"`

	PotensiLevel string `json:"potensi_level"` // rendah|sedang|tinggi
	KinerjaLevel string `json:"kinerja_level"`

	Box      int    `json:"box"` // 1..9
	BoxLabel string `json:"box_label"`
}

// AxisBoundary: batas dinamis satu sumbu (mean ± stddev populasi).
type AxisBoundary struct {
	Average    float64 `json:"average"`
	StdDev     float64 `json:"std_dev"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

type NineBoxBoundaries struct {
	Potensi AxisBoundary `json:"potensi"`
	Kinerja AxisBoundary `json:"kinerja"`
}

type NineBoxStatistic struct {
	Box        int     `json:"box"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type NineBoxResult struct {
	Participants []NineBoxParticipant `json:"participants"`
	Boundaries   NineBoxBoundaries    `json:"box_boundaries"`
	Statistics   []NineBoxStatistic   `json:"box_statistics"` // selalu 9 entri, zero-filled
	Total        int                  `json:"total"`
}
