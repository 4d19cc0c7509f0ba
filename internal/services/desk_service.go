package services

import (
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"
	"stickerDesk/internal/repositories"

	"github.com/google/uuid"
)

type DeskService struct {
	deskRepo  *repositories.DeskRepository
	shareRepo *repositories.DeskShareRepository
	authRepo  *repositories.AuthenticationRepository
}

func NewDeskService(
	deskRepo *repositories.DeskRepository,
	shareRepo *repositories.DeskShareRepository,
	authRepo *repositories.AuthenticationRepository,
) *DeskService {
	return &DeskService{
		deskRepo:  deskRepo,
		shareRepo: shareRepo,
		authRepo:  authRepo,
	}
}

// HasAccess is the gate for live session entry: desk owner or explicit
// share. Evaluated once at handshake.
func (ds *DeskService) HasAccess(userID, deskID uuid.UUID) (bool, error) {
	return ds.shareRepo.HasAccess(userID, deskID)
}

func (ds *DeskService) CreateDesk(name string, ownerID uuid.UUID) (*models.Desk, error) {
	if name == "" {
		return nil, errs.ErrInvalidRequestBody
	}
	return ds.deskRepo.CreateNewDesk(&models.Desk{
		Name:    name,
		OwnerID: ownerID,
	})
}

func (ds *DeskService) GetDesk(deskID, userID uuid.UUID) (*models.Desk, error) {
	access, err := ds.HasAccess(userID, deskID)
	if err != nil {
		return nil, err
	}
	if !access {
		return nil, errs.ErrDeskNotFound
	}
	return ds.deskRepo.FindDeskById(deskID)
}

// GetUserDesks returns desks the user owns followed by desks shared
// with them
func (ds *DeskService) GetUserDesks(userID uuid.UUID) ([]models.Desk, error) {
	owned, err := ds.deskRepo.FindOwnedByUser(userID)
	if err != nil {
		return nil, err
	}
	shared, err := ds.deskRepo.FindSharedWithUser(userID)
	if err != nil {
		return nil, err
	}
	return append(owned, shared...), nil
}

func (ds *DeskService) UpdateDesk(deskID, userID uuid.UUID, name string) (*models.Desk, error) {
	if name == "" {
		return nil, errs.ErrInvalidRequestBody
	}
	if err := ds.requireOwner(deskID, userID); err != nil {
		return nil, err
	}
	return ds.deskRepo.UpdateDeskName(deskID, name)
}

func (ds *DeskService) DeleteDesk(deskID, userID uuid.UUID) error {
	if err := ds.requireOwner(deskID, userID); err != nil {
		return err
	}
	return ds.deskRepo.DeleteDesk(deskID)
}

// ShareDesk grants a user access to a desk. Only the owner may share;
// sharing with the owner or a duplicate target is rejected.
func (ds *DeskService) ShareDesk(deskID, ownerID, targetUserID uuid.UUID) (*models.DeskShare, error) {
	if err := ds.requireOwner(deskID, ownerID); err != nil {
		return nil, err
	}
	if targetUserID == ownerID {
		return nil, errs.ErrShareAlreadyExists
	}
	if _, err := ds.authRepo.FindUserById(targetUserID); err != nil {
		return nil, err
	}
	if _, err := ds.shareRepo.FindShare(deskID, targetUserID); err == nil {
		return nil, errs.ErrShareAlreadyExists
	}
	return ds.shareRepo.CreateShare(&models.DeskShare{
		DeskID: deskID,
		UserID: targetUserID,
	})
}

func (ds *DeskService) UnshareDesk(deskID, ownerID, targetUserID uuid.UUID) error {
	if err := ds.requireOwner(deskID, ownerID); err != nil {
		return err
	}
	return ds.shareRepo.DeleteShare(deskID, targetUserID)
}

func (ds *DeskService) requireOwner(deskID, userID uuid.UUID) error {
	desk, err := ds.deskRepo.FindDeskById(deskID)
	if err != nil {
		return err
	}
	if desk.OwnerID != userID {
		return errs.ErrForbidden
	}
	return nil
}
