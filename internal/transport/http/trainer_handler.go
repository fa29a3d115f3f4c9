package handlers

import (
	"net/http"

	"coursehub/internal/application/usecase"
	"coursehub/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	log     *logger.Logger
	trainer *usecase.TrainerUseCase
	media   *usecase.MediaUseCase
}

func NewTrainerHandler(log *logger.Logger, trainer *usecase.TrainerUseCase, media *usecase.MediaUseCase) *TrainerHandler {
	return &TrainerHandler{log: log.With("handler", "trainer"), trainer: trainer, media: media}
}

func (h *TrainerHandler) Apply(c *gin.Context) {
	resume, err := formFile(c, "resume")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var upload *usecase.Upload
	if resume != nil {
		defer resume.Close()
		upload = resume.upload()
	}

	_, err = h.trainer.Apply(c.Request.Context(), usecase.TrainerApplicationInput{
		Name:               c.PostForm("name"),
		Email:              c.PostForm("email"),
		Phone:              c.PostForm("phone"),
		TrainingCourses:    c.PostForm("trainingCourses"),
		TrainingExperience: c.PostForm("trainingExperience"),
		LinkedinProfile:    c.PostForm("linkedinProfile"),
	}, upload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully!"})
}

func (h *TrainerHandler) UploadCourseImage(c *gin.Context) {
	file, err := formFile(c, "courseImage")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var upload *usecase.Upload
	if file != nil {
		defer file.Close()
		upload = file.upload()
	}

	url, err := h.media.UploadCourseImage(c.Request.Context(), upload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course image uploaded successfully", "imageUrl": url})
}
