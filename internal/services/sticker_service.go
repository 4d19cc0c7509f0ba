package services

import (
	"stickerDesk/internal/models"
	"stickerDesk/internal/repositories"

	"github.com/google/uuid"
)

type StickerService struct {
	stickerRepo *repositories.StickerRepository
}

func NewStickerService(stickerRepo *repositories.StickerRepository) *StickerService {
	return &StickerService{
		stickerRepo: stickerRepo,
	}
}

func (ss *StickerService) ListByDesk(deskID uuid.UUID) ([]models.Sticker, error) {
	return ss.stickerRepo.FindByDeskId(deskID)
}

func (ss *StickerService) Create(sticker *models.Sticker) (*models.Sticker, error) {
	return ss.stickerRepo.CreateSticker(sticker)
}

// Update merges the patch into the sticker resolved within the bound
// desk; fields absent from the patch are left unchanged
func (ss *StickerService) Update(deskID, stickerID uuid.UUID, patch models.StickerPatch) (*models.Sticker, error) {
	sticker, err := ss.stickerRepo.FindDeskSticker(deskID, stickerID)
	if err != nil {
		return nil, err
	}
	sticker.ApplyPatch(patch)
	return ss.stickerRepo.SaveSticker(sticker)
}

func (ss *StickerService) Delete(deskID, stickerID uuid.UUID) error {
	return ss.stickerRepo.DeleteSticker(deskID, stickerID)
}
