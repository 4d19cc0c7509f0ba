package repositories

import (
	"errors"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeskShareRepository struct {
	db *gorm.DB
}

func NewDeskShareRepository(db *gorm.DB) *DeskShareRepository {
	return &DeskShareRepository{
		db: db,
	}
}

// HasAccess reports whether the user owns the desk or holds a share for
// it. Pure read, no side effects.
func (sr *DeskShareRepository) HasAccess(userID, deskID uuid.UUID) (bool, error) {
	var count int64
	result := sr.db.Model(&models.Desk{}).
		Where("id = ? AND owner_id = ?", deskID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	if count > 0 {
		return true, nil
	}

	result = sr.db.Model(&models.DeskShare{}).
		Where("desk_id = ? AND user_id = ?", deskID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (sr *DeskShareRepository) FindShare(deskID, userID uuid.UUID) (*models.DeskShare, error) {
	var share models.DeskShare
	result := sr.db.Where("desk_id = ? AND user_id = ?", deskID, userID).First(&share)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.ErrShareNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &share, nil
}

func (sr *DeskShareRepository) CreateShare(share *models.DeskShare) (*models.DeskShare, error) {
	result := sr.db.Create(share)
	if result.Error != nil {
		return nil, result.Error
	}
	return share, nil
}

func (sr *DeskShareRepository) DeleteShare(deskID, userID uuid.UUID) error {
	result := sr.db.Where("desk_id = ? AND user_id = ?", deskID, userID).Delete(&models.DeskShare{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrShareNotFound
	}
	return nil
}

func (sr *DeskShareRepository) FindByDeskId(deskID uuid.UUID) ([]models.DeskShare, error) {
	var shares []models.DeskShare
	result := sr.db.Where("desk_id = ?", deskID).Find(&shares)
	if result.Error != nil {
		return nil, result.Error
	}
	return shares, nil
}
