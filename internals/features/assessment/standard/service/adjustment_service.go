// file: internals/features/assessment/standard/service/adjustment_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spsp_backend/internals/features/assessment/standard/dto"
	stdModel "spsp_backend/internals/features/assessment/standard/model"
	"spsp_backend/internals/helpers/session"
)

// SaveAdjustment memvalidasi lalu menimpa adjustment session untuk template.
// Return: map error validasi (kosong = tersimpan).
func SaveAdjustment(
	db *gorm.DB,
	sess session.Store,
	templateID uuid.UUID,
	req *dto.SaveAdjustmentRequest,
) map[string][]string {
	errs := ValidateStandardPayload(db, templateID,
		req.CategoryWeights, req.AspectWeights, req.AspectRatings, req.SubAspectRatings)
	if len(errs) > 0 {
		return errs
	}

	adjustment := &stdModel.StandardAdjustment{
		CategoryWeights:  req.CategoryWeights,
		AspectWeights:    req.AspectWeights,
		AspectRatings:    req.AspectRatings,
		SubAspectRatings: req.SubAspectRatings,
		AspectActive:     req.AspectActive,
		SubAspectActive:  req.SubAspectActive,
		UpdatedAt:        time.Now(),
	}
	sess.Put(session.AdjustmentKey(templateID), adjustment)
	return nil
}

// ResetAdjustment membuang adjustment session template (kembali ke standard
// terpilih / default).
func ResetAdjustment(sess session.Store, templateID uuid.UUID) {
	sess.Forget(session.AdjustmentKey(templateID))
}

// SelectCustomStandard mengarahkan pointer session ke satu custom standard
// (nil = kembali ke default). Ganti pilihan selalu meng-clear adjustment yang
// sedang hidup untuk template itu.
func SelectCustomStandard(
	db *gorm.DB,
	sess session.Store,
	templateID uuid.UUID,
	standardID *uuid.UUID,
) error {
	if standardID == nil {
		sess.Forget(session.SelectedStandardKey(templateID))
		sess.Forget(session.AdjustmentKey(templateID))
		return nil
	}

	var row stdModel.CustomStandardModel
	err := db.
		Where("custom_standard_id = ? AND custom_standard_template_id = ?", *standardID, templateID).
		First(&row).Error
	if err != nil {
		return fmt.Errorf("custom standard %s: %w", *standardID, err)
	}

	sess.Put(session.SelectedStandardKey(templateID), standardID.String())
	sess.Forget(session.AdjustmentKey(templateID))
	return nil
}

// SaveTolerance menyimpan toleransi (%) laporan individu ke session.
func SaveTolerance(sess session.Store, tolerance int) map[string][]string {
	if tolerance < 0 || tolerance > 100 {
		return map[string][]string{
			"tolerance": {"toleransi harus di antara 0 hingga 100"},
		}
	}
	sess.Put(session.ToleranceKey, tolerance)
	return nil
}
