package repositories

import (
	"errors"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StickerRepository struct {
	db *gorm.DB
}

func NewStickerRepository(db *gorm.DB) *StickerRepository {
	return &StickerRepository{
		db: db,
	}
}

func (sr *StickerRepository) FindByDeskId(deskID uuid.UUID) ([]models.Sticker, error) {
	var stickers []models.Sticker
	result := sr.db.Where("desk_id = ?", deskID).Order("created_at").Find(&stickers)
	if result.Error != nil {
		return nil, result.Error
	}
	return stickers, nil
}

// FindDeskSticker resolves a sticker within the bound desk only. A
// sticker belonging to another desk comes back as not found, never as
// a foreign record.
func (sr *StickerRepository) FindDeskSticker(deskID, stickerID uuid.UUID) (*models.Sticker, error) {
	var sticker models.Sticker
	result := sr.db.Where("id = ? AND desk_id = ?", stickerID, deskID).First(&sticker)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.ErrStickerNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &sticker, nil
}

func (sr *StickerRepository) CreateSticker(sticker *models.Sticker) (*models.Sticker, error) {
	result := sr.db.Create(sticker)
	if result.Error != nil {
		return nil, result.Error
	}
	return sticker, nil
}

func (sr *StickerRepository) SaveSticker(sticker *models.Sticker) (*models.Sticker, error) {
	if err := sr.db.Save(sticker).Error; err != nil {
		return nil, err
	}
	return sticker, nil
}

func (sr *StickerRepository) DeleteSticker(deskID, stickerID uuid.UUID) error {
	result := sr.db.Where("id = ? AND desk_id = ?", stickerID, deskID).Delete(&models.Sticker{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrStickerNotFound
	}
	return nil
}
