package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

func profileRouter(profiles *fakeProfileRepo) *gin.Engine {
	svc := application.NewProfileService(profiles, nil, nil, "")
	h := NewProfileHandler(svc, nil)
	r := gin.New()
	r.GET("/api/profile", h.List)
	r.POST("/api/profile", asUser(testUserID), h.Upsert)
	r.GET("/api/profile/me", asUser(testUserID), h.Me)
	r.GET("/api/profile/user/:user_id", h.GetByUser)
	r.DELETE("/api/profile", asUser(testUserID), h.Delete)
	r.PUT("/api/profile/experience", asUser(testUserID), h.AddExperience)
	r.DELETE("/api/profile/experience/:exp_id", asUser(testUserID), h.RemoveExperience)
	r.PUT("/api/profile/education", asUser(testUserID), h.AddEducation)
	r.DELETE("/api/profile/education/:edu_id", asUser(testUserID), h.RemoveEducation)
	return r
}

func seedTestProfile(t *testing.T, profiles *fakeProfileRepo) {
	t.Helper()
	require.NoError(t, profiles.Create(context.Background(), &entity.Profile{
		UserID: testUserID,
		User:   entity.ProfileOwner{ID: testUserID, Name: "Ana"},
		Status: "Developer",
		Skills: []string{"go"},
	}))
}

func decodeProfile(t *testing.T, body []byte) entity.Profile {
	t.Helper()
	var p entity.Profile
	require.NoError(t, json.Unmarshal(body, &p))
	return p
}

func TestProfileHandler_UpsertCreate(t *testing.T) {
	profiles := newFakeProfileRepo()
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodPost, "/api/profile", gin.H{
		"status":  "Developer",
		"skills":  "go, sql",
		"company": "Acme",
		"twitter": "https://twitter.com/ana",
	})

	require.Equal(t, http.StatusOK, w.Code)
	p := decodeProfile(t, w.Body.Bytes())
	assert.Equal(t, testUserID, p.UserID)
	assert.Equal(t, []string{"go", "sql"}, p.Skills)
	assert.Equal(t, "https://twitter.com/ana", p.Social[entity.SocialTwitter])
}

func TestProfileHandler_UpsertMissingRequired(t *testing.T) {
	r := profileRouter(newFakeProfileRepo())

	w := doJSON(t, r, http.MethodPost, "/api/profile", gin.H{"company": "Acme"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"status is required", "skills is required"}, errorMsgs(t, w))
}

func TestProfileHandler_MeNoProfile(t *testing.T) {
	r := profileRouter(newFakeProfileRepo())

	w := doJSON(t, r, http.MethodGet, "/api/profile/me", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"there is no profile for this user"}`, w.Body.String())
}

func TestProfileHandler_Me(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodGet, "/api/profile/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	p := decodeProfile(t, w.Body.Bytes())
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, "Ana", p.User.Name)
}

func TestProfileHandler_List(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var list []entity.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, testUserID, list[0].UserID)
	assert.Equal(t, "Ana", list[0].User.Name)
}

func TestProfileHandler_GetByUser(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodGet, "/api/profile/user/"+testUserID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown but well-formed id and malformed id produce the same response.
	unknown := doJSON(t, r, http.MethodGet, "/api/profile/user/22222222-2222-2222-2222-222222222222", nil)
	malformed := doJSON(t, r, http.MethodGet, "/api/profile/user/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
	assert.JSONEq(t, `{"msg":"profile not found"}`, unknown.Body.String())
	assert.Equal(t, unknown.Body.String(), malformed.Body.String())
}

func TestProfileHandler_Delete(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodDelete, "/api/profile", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"user deleted"}`, w.Body.String())
	assert.Empty(t, profiles.byUser)
}

func TestProfileHandler_AddExperience(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodPut, "/api/profile/experience", gin.H{
		"title":   "Senior Dev",
		"company": "Acme",
		"from":    "2021-06-01",
		"current": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	p := decodeProfile(t, w.Body.Bytes())
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Senior Dev", p.Experience[0].Title)
	assert.NotEmpty(t, p.Experience[0].ID)
}

func TestProfileHandler_AddExperienceValidation(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodPut, "/api/profile/experience", gin.H{"location": "Lisbon"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{
		"title is required",
		"company is required",
		"from is required",
	}, errorMsgs(t, w))
}

func TestProfileHandler_AddExperienceNoProfile(t *testing.T) {
	r := profileRouter(newFakeProfileRepo())

	w := doJSON(t, r, http.MethodPut, "/api/profile/experience", gin.H{
		"title": "Dev", "company": "Acme", "from": "2020-01-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"there is no profile for this user"}`, w.Body.String())
}

func TestProfileHandler_RemoveExperience(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodPut, "/api/profile/experience", gin.H{
		"title": "Dev", "company": "Acme", "from": "2020-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	expID := decodeProfile(t, w.Body.Bytes()).Experience[0].ID

	w = doJSON(t, r, http.MethodDelete, "/api/profile/experience/"+expID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProfile(t, w.Body.Bytes()).Experience)

	// Removing an id that is not there still returns the profile unchanged.
	w = doJSON(t, r, http.MethodDelete, "/api/profile/experience/"+expID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileHandler_AddAndRemoveEducation(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodPut, "/api/profile/education", gin.H{
		"school":         "MIT",
		"degree":         "BSc",
		"field_of_study": "CS",
		"from":           "2014-09-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeProfile(t, w.Body.Bytes())
	require.Len(t, p.Education, 1)
	assert.Equal(t, "BSc", p.Education[0].Degree)

	w = doJSON(t, r, http.MethodDelete, "/api/profile/education/"+p.Education[0].ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProfile(t, w.Body.Bytes()).Education)
}

func TestProfileHandler_AddEducationValidation(t *testing.T) {
	profiles := newFakeProfileRepo()
	seedTestProfile(t, profiles)
	r := profileRouter(profiles)

	w := doJSON(t, r, http.MethodPut, "/api/profile/education", gin.H{"school": "MIT"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{
		"degree is required",
		"field_of_study is required",
		"from is required",
	}, errorMsgs(t, w))
}
