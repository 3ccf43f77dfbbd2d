package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	repo "github.com/oksasatya/devconnector-api/internal/domain/repository"
)

// ProfileService is the upsert/merge logic behind the profile routes plus the
// experience/education sub-record operations. Every write persists the whole
// profile row.
type ProfileService struct {
	Profiles repo.ProfileRepository
	Logger   *logrus.Logger

	ES              *elasticsearch.Client
	ESProfilesIndex string
}

func NewProfileService(profiles repo.ProfileRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ProfileService {
	return &ProfileService{Profiles: profiles, Logger: logger, ES: es, ESProfilesIndex: esIndex}
}

// ProfileInput uses pointers so an explicitly supplied empty string is set
// rather than silently dropped; nil means the caller did not send the field.
type ProfileInput struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         *string

	Youtube   *string
	Facebook  *string
	Twitter   *string
	Instagram *string
	Linkedin  *string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// SplitSkills turns a comma-separated skills string into a trimmed slice.
// Empty and whitespace-only elements are dropped.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Upsert creates the caller's profile or updates it in place. Only supplied
// fields are written; on update, untouched fields keep their prior values.
// The social map is rebuilt from the supplied keys on every call.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	create := false
	switch {
	case errors.Is(err, repo.ErrNotFound):
		create = true
		p = &entity.Profile{UserID: userID}
	case err != nil:
		return nil, err
	}

	if create {
		var msgs []string
		if in.Status == nil || strings.TrimSpace(*in.Status) == "" {
			msgs = append(msgs, "status is required")
		}
		if in.Skills == nil || strings.TrimSpace(*in.Skills) == "" {
			msgs = append(msgs, "skills is required")
		}
		if len(msgs) > 0 {
			return nil, validationErr(msgs...)
		}
	}

	applyInput(p, in)

	if create {
		err = s.Profiles.Create(ctx, p)
	} else {
		err = s.Profiles.Update(ctx, p)
	}
	if err != nil {
		return nil, err
	}

	// Re-read so the owner display fields are resolved in the response.
	p, err = s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.index(ctx, p)
	return p, nil
}

func applyInput(p *entity.Profile, in ProfileInput) {
	if in.Company != nil {
		p.Company = *in.Company
	}
	if in.Website != nil {
		p.Website = *in.Website
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.GithubUsername != nil {
		p.GithubUsername = *in.GithubUsername
	}
	if in.Skills != nil {
		p.Skills = SplitSkills(*in.Skills)
	}

	social := map[string]string{}
	setSocial(social, entity.SocialYoutube, in.Youtube)
	setSocial(social, entity.SocialFacebook, in.Facebook)
	setSocial(social, entity.SocialTwitter, in.Twitter)
	setSocial(social, entity.SocialInstagram, in.Instagram)
	setSocial(social, entity.SocialLinkedin, in.Linkedin)
	p.Social = social
}

func setSocial(m map[string]string, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

// ListAll returns every profile with its owner's display fields resolved.
func (s *ProfileService) ListAll(ctx context.Context) ([]entity.Profile, error) {
	return s.Profiles.List(ctx)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// AddExperience inserts the entry at the front of the sequence and persists
// the whole profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*entity.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.Title) == "" {
		msgs = append(msgs, "title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		msgs = append(msgs, "company is required")
	}
	if strings.TrimSpace(in.From) == "" {
		msgs = append(msgs, "from is required")
	}
	if len(msgs) > 0 {
		return nil, validationErr(msgs...)
	}

	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := entity.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = append([]entity.Experience{entry}, p.Experience...)

	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience drops the entry with the given id. An unknown id leaves
// the sequence unchanged; the profile is persisted either way.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*entity.Profile, error) {
	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != experienceID {
			kept = append(kept, e)
		}
	}
	p.Experience = kept

	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddEducation mirrors AddExperience with the education field set.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*entity.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.School) == "" {
		msgs = append(msgs, "school is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		msgs = append(msgs, "degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		msgs = append(msgs, "field_of_study is required")
	}
	if strings.TrimSpace(in.From) == "" {
		msgs = append(msgs, "from is required")
	}
	if len(msgs) > 0 {
		return nil, validationErr(msgs...)
	}

	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := entity.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p.Education = append([]entity.Education{entry}, p.Education...)

	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, educationID string) (*entity.Profile, error) {
	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != educationID {
			kept = append(kept, e)
		}
	}
	p.Education = kept

	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteUserAndProfile removes the caller's profile and account in a single
// transaction.
func (s *ProfileService) DeleteUserAndProfile(ctx context.Context, userID string) error {
	if err := s.Profiles.DeleteWithUser(ctx, userID); err != nil {
		return err
	}
	s.deindex(ctx, userID)
	return nil
}

func (s *ProfileService) index(ctx context.Context, p *entity.Profile) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return
	}
	doc := map[string]any{
		"user_id":    p.UserID,
		"name":       p.User.Name,
		"status":     p.Status,
		"skills":     p.Skills,
		"bio":        p.Bio,
		"location":   p.Location,
		"updated_at": p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProfilesIndex, DocumentID: p.UserID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", p.UserID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", p.UserID).Warn("es index response error")
	}
}

func (s *ProfileService) deindex(ctx context.Context, userID string) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESProfilesIndex, DocumentID: userID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over the indexed profile fields.
func (s *ProfileService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"status^2", "skills", "name", "bio", "location"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESProfilesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
