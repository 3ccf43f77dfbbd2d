package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/domain/repository"
)

// ProfileRepository persists profiles as one row per user. Skills map to a
// text[] column; social, experience, and education are jsonb so the whole
// document round-trips the way the API exposes it.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `
	p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status,
	p.github_username, p.skills, p.social, p.experience, p.education,
	p.created_at, p.updated_at, u.name, u.avatar_url`

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]entity.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	social, experience, education, err := marshalDocs(p)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles
			(user_id, company, website, location, bio, status, github_username,
			 skills, social, experience, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, p.Skills, social, experience, education)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepository) Update(ctx context.Context, p *entity.Profile) error {
	social, experience, education, err := marshalDocs(p)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET company = $1, website = $2, location = $3, bio = $4, status = $5,
		    github_username = $6, skills = $7, social = $8, experience = $9,
		    education = $10, updated_at = $11
		WHERE user_id = $12
	`, p.Company, p.Website, p.Location, p.Bio, p.Status, p.GithubUsername,
		p.Skills, social, experience, education, p.UpdatedAt, p.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func marshalDocs(p *entity.Profile) (social, experience, education []byte, err error) {
	if p.Social == nil {
		p.Social = map[string]string{}
	}
	if p.Experience == nil {
		p.Experience = []entity.Experience{}
	}
	if p.Education == nil {
		p.Education = []entity.Education{}
	}
	if social, err = json.Marshal(p.Social); err != nil {
		return nil, nil, nil, err
	}
	if experience, err = json.Marshal(p.Experience); err != nil {
		return nil, nil, nil, err
	}
	if education, err = json.Marshal(p.Education); err != nil {
		return nil, nil, nil, err
	}
	return social, experience, education, nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	var social, experience, education []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location,
		&p.Bio, &p.Status, &p.GithubUsername, &p.Skills, &social, &experience,
		&education, &p.CreatedAt, &p.UpdatedAt, &p.User.Name, &p.User.Avatar); err != nil {
		return nil, err
	}
	p.User.ID = p.UserID
	if err := json.Unmarshal(social, &p.Social); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
