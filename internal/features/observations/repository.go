package observations

import (
	"errors"
	"fmt"

	"fieldlog/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ObservationRepository struct{}

func (r *ObservationRepository) CreateObservation(observation *Observation) error {
	if err := storage.GetDb().Create(observation).Error; err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}

	return nil
}

func (r *ObservationRepository) GetObservationByID(
	observationID uuid.UUID,
) (*Observation, error) {
	var observation Observation

	err := storage.GetDb().Where("id = ?", observationID).First(&observation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get observation: %w", err)
	}

	return &observation, nil
}

// UpdateObservation rewrites the editable fields. Ownership and workspace
// columns are deliberately not part of the update.
func (r *ObservationRepository) UpdateObservation(observation *Observation) error {
	err := storage.GetDb().
		Model(&Observation{}).
		Where("id = ?", observation.ID).
		Updates(map[string]any{
			"observer":      observation.Observer,
			"station_name":  observation.StationName,
			"obs_date":      observation.ObsDate,
			"start_time":    observation.StartTime,
			"end_time":      observation.EndTime,
			"receiver_no":   observation.ReceiverNo,
			"receiver_name": observation.ReceiverName,
			"height_mode":   observation.HeightMode,
			"memo":          observation.Memo,
			"updated_at":    observation.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update observation: %w", err)
	}

	return nil
}

// ListObservations applies a prebuilt visibility query.
func (r *ObservationRepository) ListObservations(query ListQuery) ([]Observation, error) {
	db := storage.GetDb().
		Model(&Observation{}).
		Where("workspace_id = ?", query.WorkspaceID)

	if query.OwnerOnly {
		db = db.Where("created_by = ?", query.OwnerID)
	}

	var result []Observation
	if err := db.Order(query.OrderBy).Find(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}

	return result, nil
}
