// file: internals/features/assessment/narrative/service/interpretation_service.go
package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"spsp_backend/internals/features/assessment/narrative/model"
)

// placeholder nama aspek/sub-aspek di template kalimat.
const namePlaceholder = "[nama aspek]"

// defaultInterpretations: lima kalimat baku per nilai rating 1–5,
// fallback terakhir kalau DB tidak punya template sama sekali.
var defaultInterpretations = map[int]string{
	1: "Kemampuan [nama aspek] masih sangat kurang dan membutuhkan pengembangan intensif.",
	2: "Kemampuan [nama aspek] masih di bawah harapan dan perlu ditingkatkan.",
	3: "Kemampuan [nama aspek] cukup memadai sesuai tuntutan standar.",
	4: "Kemampuan [nama aspek] baik dan dapat diandalkan dalam pelaksanaan tugas.",
	5: "Kemampuan [nama aspek] sangat menonjol dan menjadi kekuatan utama yang bersangkutan.",
}

// InterpretationService menyusun kalimat interpretasi per rating.
// Rantai lookup: template spesifik (type, name, rating) → template generik
// (type, rating, name NULL) → kalimat baku. Murni lookup + substitusi.
type InterpretationService struct {
	DB *gorm.DB
}

func NewInterpretationService(db *gorm.DB) *InterpretationService {
	return &InterpretationService{DB: db}
}

// Interpret mengembalikan kalimat interpretasi untuk (type, name, rating).
// Rating di-clamp ke 1..5 supaya selalu ada fallback baku.
func (s *InterpretationService) Interpret(interpretationType, name string, rating int) (string, error) {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	template, err := s.lookupTemplate(interpretationType, name, rating)
	if err != nil {
		return "", err
	}
	if template == "" {
		template = defaultInterpretations[rating]
	}
	return strings.ReplaceAll(template, namePlaceholder, name), nil
}

func (s *InterpretationService) lookupTemplate(interpretationType, name string, rating int) (string, error) {
	var row model.RatingInterpretationModel

	// 1) spesifik nama
	err := s.DB.
		Where("rating_interpretation_type = ? AND rating_interpretation_name = ? AND rating_interpretation_rating = ?",
			interpretationType, name, rating).
		First(&row).Error
	if err == nil {
		return row.RatingInterpretationTemplate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	// 2) generik (name NULL)
	err = s.DB.
		Where("rating_interpretation_type = ? AND rating_interpretation_name IS NULL AND rating_interpretation_rating = ?",
			interpretationType, rating).
		First(&row).Error
	if err == nil {
		return row.RatingInterpretationTemplate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return "", nil
}

// NarrativeItem: satu kalimat interpretasi jadi.
type NarrativeItem struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Sentence string `json:"sentence"`
}

// BuildParagraph merangkai kalimat interpretasi beberapa aspek jadi satu
// paragraf (dipakai laporan individu).
func (s *InterpretationService) BuildParagraph(interpretationType string, items []NarrativeItem) (string, []NarrativeItem, error) {
	sentences := make([]string, 0, len(items))
	out := make([]NarrativeItem, 0, len(items))
	for _, item := range items {
		sentence, err := s.Interpret(interpretationType, item.Name, item.Rating)
		if err != nil {
			return "", nil, err
		}
		item.Sentence = sentence
		out = append(out, item)
		sentences = append(sentences, sentence)
	}
	return strings.Join(sentences, " "), out, nil
}
