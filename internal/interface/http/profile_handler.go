package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/response"
	"github.com/oksasatya/devconnector-api/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// Optional fields are pointers so an explicitly supplied empty string is
// distinguishable from an absent field.
type upsertProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status" binding:"required"`
	GithubUsername *string `json:"github_username"`
	Skills         *string `json:"skills" binding:"required"`

	Youtube   *string `json:"youtube"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	Linkedin  *string `json:"linkedin"`
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"field_of_study" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.GetByUserID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "there is no profile for this user")
			return
		}
		h.serverError(c, err, "fetch own profile failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Upsert handles POST /api/profile (create or update the caller's profile).
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.Items(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	in := application.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Facebook:       req.Facebook,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
	}
	p, err := h.Svc.Upsert(c.Request.Context(), uid, in)
	if err != nil {
		if h.validationFailed(c, err) {
			return
		}
		h.serverError(c, err, "profile upsert failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handles GET /api/profile.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "list profiles failed")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByUser handles GET /api/profile/user/:user_id.
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID := c.Param("user_id")
	// A malformed id can never match a profile; same response as unknown.
	if _, err := uuid.Parse(userID); err != nil {
		response.Msg(c, http.StatusBadRequest, "profile not found")
		return
	}
	p, err := h.Svc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "profile not found")
			return
		}
		h.serverError(c, err, "fetch profile failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/profile: removes the caller's profile and
// account together.
func (h *ProfileHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteUserAndProfile(c.Request.Context(), uid); err != nil {
		h.serverError(c, err, "delete user and profile failed")
		return
	}
	response.Msg(c, http.StatusOK, "user deleted")
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.Items(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.AddExperience(c.Request.Context(), uid, application.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if h.profileMissing(c, err) || h.validationFailed(c, err) {
			return
		}
		h.serverError(c, err, "add experience failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id. Removing
// an id that does not exist is not an error.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveExperience(c.Request.Context(), uid, c.Param("exp_id"))
	if err != nil {
		if h.profileMissing(c, err) {
			return
		}
		h.serverError(c, err, "remove experience failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.Items(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.AddEducation(c.Request.Context(), uid, application.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		if h.profileMissing(c, err) || h.validationFailed(c, err) {
			return
		}
		h.serverError(c, err, "add education failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveEducation(c.Request.Context(), uid, c.Param("edu_id"))
	if err != nil {
		if h.profileMissing(c, err) {
			return
		}
		h.serverError(c, err, "remove education failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Search handles GET /api/profile/search?q=.
func (h *ProfileHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Errors(c, http.StatusBadRequest, response.Items("q is required"))
		return
	}
	size := 10
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.serverError(c, err, "profile search failed")
		return
	}
	c.JSON(http.StatusOK, hits)
}

func (h *ProfileHandler) validationFailed(c *gin.Context, err error) bool {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		response.Errors(c, http.StatusBadRequest, response.Items(verr.Msgs...))
		return true
	}
	return false
}

func (h *ProfileHandler) profileMissing(c *gin.Context, err error) bool {
	if errors.Is(err, application.ErrProfileNotFound) {
		response.Msg(c, http.StatusBadRequest, "there is no profile for this user")
		return true
	}
	return false
}

func (h *ProfileHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.ServerError(c)
}
