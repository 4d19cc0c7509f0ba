package handlers

import (
	"fmt"
	"log"
	"net/http"
	"stickerDesk/internal/enums"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"
	"stickerDesk/internal/msgs"
	"stickerDesk/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	deskService        *services.DeskService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	deskService *services.DeskService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		deskService:        deskService,
		fileManagerService: fileManagerService,
	}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /auth/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var errors []error

	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		status := http.StatusBadRequest
		if len(registerErrs) == 1 && registerErrs[0] == errs.ErrUserAlreadyExists {
			status = http.StatusConflict
		}
		errors = append(errors, registerErrs...)
		ctx.AbortWithStatusJSON(status, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

// Login godoc
// @Summary      Login and receive an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var errors []error

	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// Refresh godoc
// @Summary      Rotate the token pair using a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      401  {object}  models.Response
// @Router       /auth/refresh [post]
func (rh *RestHandler) Refresh(ctx *gin.Context) {
	var body models.RefreshRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	loginResponse, refreshErrs := rh.authService.Refresh(body.RefreshToken)
	if len(refreshErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  refreshErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// GetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /profile [get]
func (rh *RestHandler) GetProfile(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}
	profile, err := rh.authService.GetProfile(userID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    profile,
	})
}

// UploadProfilePhoto godoc
// @Summary      Upload a profile photo
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /profile/photo [put]
func (rh *RestHandler) UploadProfilePhoto(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	defer file.Close()

	fileName := fmt.Sprintf("%s-%s", userID, fileHeader.Filename)
	photoURL, err := rh.fileManagerService.UploadUserProfilePhoto(
		fileName,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		enums.FILE_BUCKET_USER_PROFILE,
	)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	if err := rh.authService.UpdateProfilePhoto(userID, photoURL); err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    photoURL,
	})
}

// CreateDesk godoc
// @Summary      Create a desk owned by the authenticated user
// @Tags         desks
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Response
// @Router       /desks [post]
func (rh *RestHandler) CreateDesk(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}

	var body models.CreateDeskRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	desk, err := rh.deskService.CreateDesk(body.Name, userID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    desk,
	})
}

// GetDesks godoc
// @Summary      List desks owned by or shared with the user
// @Tags         desks
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /desks [get]
func (rh *RestHandler) GetDesks(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}

	desks, err := rh.deskService.GetUserDesks(userID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    desks,
	})
}

// GetDesk godoc
// @Summary      Get one desk the user can access
// @Tags         desks
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /desks/{deskId} [get]
func (rh *RestHandler) GetDesk(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}
	deskID, ok := rh.deskIdFromPath(ctx)
	if !ok {
		return
	}

	desk, err := rh.deskService.GetDesk(deskID, userID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    desk,
	})
}

// UpdateDesk godoc
// @Summary      Rename a desk (owner only)
// @Tags         desks
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /desks/{deskId} [patch]
func (rh *RestHandler) UpdateDesk(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}
	deskID, ok := rh.deskIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.UpdateDeskRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	desk, err := rh.deskService.UpdateDesk(deskID, userID, body.Name)
	if err != nil {
		rh.abortWithDeskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    desk,
	})
}

// DeleteDesk godoc
// @Summary      Delete a desk with its stickers and shares (owner only)
// @Tags         desks
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /desks/{deskId} [delete]
func (rh *RestHandler) DeleteDesk(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}
	deskID, ok := rh.deskIdFromPath(ctx)
	if !ok {
		return
	}

	if err := rh.deskService.DeleteDesk(deskID, userID); err != nil {
		rh.abortWithDeskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgDeskDeleted,
	})
}

// ShareDesk godoc
// @Summary      Share a desk with another user (owner only)
// @Tags         desks
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Response
// @Router       /desks/{deskId}/share [post]
func (rh *RestHandler) ShareDesk(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}
	deskID, ok := rh.deskIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.ShareDeskRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}
	targetUserID, err := uuid.Parse(body.UserID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	share, err := rh.deskService.ShareDesk(deskID, userID, targetUserID)
	if err != nil {
		status := http.StatusBadRequest
		switch err {
		case errs.ErrForbidden:
			status = http.StatusForbidden
		case errs.ErrDeskNotFound, errs.ErrUserNotFound:
			status = http.StatusNotFound
		case errs.ErrShareAlreadyExists:
			status = http.StatusConflict
		}
		ctx.AbortWithStatusJSON(status, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    share,
	})
}

// UnshareDesk godoc
// @Summary      Revoke a user's share on a desk (owner only)
// @Tags         desks
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /desks/{deskId}/share [delete]
func (rh *RestHandler) UnshareDesk(ctx *gin.Context) {
	userID := rh.mustUserId(ctx)
	if userID == uuid.Nil {
		return
	}
	deskID, ok := rh.deskIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.ShareDeskRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}
	targetUserID, err := uuid.Parse(body.UserID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	if err := rh.deskService.UnshareDesk(deskID, userID, targetUserID); err != nil {
		rh.abortWithDeskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgShareRemoved,
	})
}

func (rh *RestHandler) mustUserId(ctx *gin.Context) uuid.UUID {
	value, exists := ctx.Get("user_id")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgYouMustLoginFirst,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return uuid.Nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgYouMustLoginFirst,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return uuid.Nil
	}
	return userID
}

func (rh *RestHandler) deskIdFromPath(ctx *gin.Context) (uuid.UUID, bool) {
	deskID, err := uuid.Parse(ctx.Param("deskId"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidDeskId},
		})
		return uuid.Nil, false
	}
	return deskID, true
}

func (rh *RestHandler) abortWithDeskError(ctx *gin.Context, err error) {
	status := http.StatusBadRequest
	switch err {
	case errs.ErrForbidden:
		status = http.StatusForbidden
	case errs.ErrDeskNotFound, errs.ErrShareNotFound, errs.ErrUserNotFound:
		status = http.StatusNotFound
	}
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  []error{err},
	})
}
