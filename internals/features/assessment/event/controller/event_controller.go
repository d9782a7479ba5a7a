// file: internals/features/assessment/event/controller/event_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "spsp_backend/internals/features/assessment/event/model"
	helper "spsp_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:        db,
		Validator: validator.New(),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// GET /events?institution_id=&year=&code=
func (ctl *EventController) List(c *fiber.Ctx) error {
	query := ctl.DB.Model(&model.EventModel{})
	if raw := strings.TrimSpace(c.Query("institution_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "institution_id tidak valid")
		}
		query = query.Where("event_institution_id = ?", id)
	}
	if year := c.QueryInt("year", 0); year > 0 {
		query = query.Where("event_year = ?", year)
	}
	if code := strings.TrimSpace(c.Query("code")); code != "" {
		query = query.Where("event_code = ?", code)
	}

	paging := helper.ResolvePaging(c, 25, 200)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.EventModel
	err := query.
		Order("event_year DESC, event_code ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	pagination.Count = len(rows)
	return helper.JsonList(c, "", rows, &pagination)
}

// GET /events/:id
func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var row model.EventModel
	if err := ctl.DB.First(&row, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "", row)
}

// GET /events/:id/position-formations
func (ctl *EventController) ListPositionFormations(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var rows []model.PositionFormationModel
	err = ctl.DB.
		Where("position_formation_event_id = ?", id).
		Order("position_formation_name ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "", rows, nil)
}

// GET /events/:id/participants?position_formation_id=
func (ctl *EventController) ListParticipants(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	query := ctl.DB.Model(&model.ParticipantModel{}).Where("participant_event_id = ?", id)
	if raw := strings.TrimSpace(c.Query("position_formation_id")); raw != "" {
		formationID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "position_formation_id tidak valid")
		}
		query = query.Where("participant_position_formation_id = ?", formationID)
	}

	paging := helper.ResolvePaging(c, 50, 500)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ParticipantModel
	err = query.
		Order("participant_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	pagination.Count = len(rows)
	return helper.JsonList(c, "", rows, &pagination)
}
