package handlers

import (
	"net/http"

	"coursehub/internal/application/usecase"
	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	log     *logger.Logger
	profile *usecase.ProfileUseCase
}

func NewProfileHandler(log *logger.Logger, profile *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{log: log.With("handler", "profile"), profile: profile}
}

type profileResponse struct {
	ID         string `json:"_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender"`
	Country    string `json:"country"`
	Language   string `json:"language"`
	Timezone   string `json:"timezone"`
	ProfilePic string `json:"profilePic"`
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Username:   u.Username,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Gender:     u.Gender,
		Country:    u.Country,
		Language:   u.Language,
		Timezone:   u.Timezone,
		ProfilePic: u.ProfilePic,
	}
}

type updateProfileReq struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Gender   *string `json:"gender"`
	Country  *string `json:"country"`
	Language *string `json:"language"`
	Timezone *string `json:"timezone"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.profile.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(user))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	user, err := h.profile.Update(c.Request.Context(), middleware.UserID(c), domain.ProfileUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		Gender:   req.Gender,
		Country:  req.Country,
		Language: req.Language,
		Timezone: req.Timezone,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": toProfileResponse(user)})
}

func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	file, err := formFile(c, "profilePic")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var upload *usecase.Upload
	if file != nil {
		defer file.Close()
		upload = file.upload()
	}

	url, err := h.profile.UpdatePicture(c.Request.Context(), middleware.UserID(c), upload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated", "profilePic": url})
}
