// file: internals/features/assessment/narrative/controller/interpretation_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "spsp_backend/internals/features/assessment/narrative/model"
	service "spsp_backend/internals/features/assessment/narrative/service"
	helper "spsp_backend/internals/helpers"
)

type InterpretationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInterpretationController(db *gorm.DB) *InterpretationController {
	return &InterpretationController{
		DB:        db,
		Validator: validator.New(),
	}
}

func normalizeInterpretationType(raw string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case model.InterpretationTypeAspect, model.InterpretationTypeSubAspect:
		return t, true
	default:
		return "", false
	}
}

// GET /interpretations?type=aspect|sub_aspect&name=&rating=
func (ctl *InterpretationController) Interpret(c *fiber.Ctx) error {
	interpretationType, ok := normalizeInterpretationType(c.Query("type", model.InterpretationTypeAspect))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "type harus aspect atau sub_aspect")
	}
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "name wajib diisi")
	}
	rating := c.QueryInt("rating", 0)
	if rating < 1 || rating > 5 {
		return helper.JsonError(c, fiber.StatusBadRequest, "rating harus di antara 1 hingga 5")
	}

	svc := service.NewInterpretationService(ctl.DB)
	sentence, err := svc.Interpret(interpretationType, name, rating)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun interpretasi")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"type":     interpretationType,
		"name":     name,
		"rating":   rating,
		"sentence": sentence,
	})
}

type paragraphItemPayload struct {
	Name   string `json:"name" validate:"required,max=180"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

type paragraphRequest struct {
	Type  string                 `json:"type" validate:"required"`
	Items []paragraphItemPayload `json:"items" validate:"required,min=1,dive"`
}

// POST /interpretations/paragraph — rangkai beberapa aspek jadi satu paragraf
func (ctl *InterpretationController) BuildParagraph(c *fiber.Ctx) error {
	var req paragraphRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	interpretationType, ok := normalizeInterpretationType(req.Type)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "type harus aspect atau sub_aspect")
	}

	items := make([]service.NarrativeItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.NarrativeItem{Name: item.Name, Rating: item.Rating})
	}

	svc := service.NewInterpretationService(ctl.DB)
	paragraph, resolved, err := svc.BuildParagraph(interpretationType, items)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun paragraf interpretasi")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"type":      interpretationType,
		"paragraph": paragraph,
		"items":     resolved,
	})
}
