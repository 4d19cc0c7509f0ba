package repositories

import (
	"errors"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeskRepository struct {
	db *gorm.DB
}

func NewDeskRepository(db *gorm.DB) *DeskRepository {
	return &DeskRepository{
		db: db,
	}
}

func (dr *DeskRepository) CreateNewDesk(desk *models.Desk) (*models.Desk, error) {
	result := dr.db.Create(desk)
	if err := result.Error; err != nil {
		return nil, err
	}
	if result.RowsAffected <= 0 {
		return nil, errs.ErrDeskCreationFailed
	}
	return desk, nil
}

func (dr *DeskRepository) FindDeskById(deskID uuid.UUID) (*models.Desk, error) {
	var desk models.Desk
	result := dr.db.Where("id = ?", deskID).First(&desk)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.ErrDeskNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &desk, nil
}

func (dr *DeskRepository) FindOwnedByUser(userID uuid.UUID) ([]models.Desk, error) {
	var desks []models.Desk
	result := dr.db.Where("owner_id = ?", userID).Find(&desks)
	if result.Error != nil {
		return nil, result.Error
	}
	return desks, nil
}

func (dr *DeskRepository) FindSharedWithUser(userID uuid.UUID) ([]models.Desk, error) {
	var desks []models.Desk
	result := dr.db.
		Joins("JOIN desk_shares ON desk_shares.desk_id = desks.id").
		Where("desk_shares.user_id = ?", userID).
		Find(&desks)
	if result.Error != nil {
		return nil, result.Error
	}
	return desks, nil
}

func (dr *DeskRepository) UpdateDeskName(deskID uuid.UUID, name string) (*models.Desk, error) {
	desk, err := dr.FindDeskById(deskID)
	if err != nil {
		return nil, err
	}
	desk.Name = name
	if err := dr.db.Save(desk).Error; err != nil {
		return nil, err
	}
	return desk, nil
}

// DeleteDesk removes the desk with its stickers and shares
func (dr *DeskRepository) DeleteDesk(deskID uuid.UUID) error {
	return dr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("desk_id = ?", deskID).Delete(&models.Sticker{}).Error; err != nil {
			return err
		}
		if err := tx.Where("desk_id = ?", deskID).Delete(&models.DeskShare{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", deskID).Delete(&models.Desk{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrDeskNotFound
		}
		return nil
	})
}
