package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

// UpsertVolunteer создаёт профиль при регистрации и обновляет его при редактировании
func (r *ProfileRepository) UpsertVolunteer(ctx context.Context, p *models.VolunteerProfile) error {
	query := `
		INSERT INTO volunteers (user_id, name, age, blood_group, state, district, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			blood_group = EXCLUDED.blood_group,
			state = EXCLUDED.state,
			district = EXCLUDED.district,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.Name, p.Age, p.BloodGroup, p.State, p.District, p.Address,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert volunteer profile: %w", err)
	}
	return nil
}

// FindVolunteerByName ищет профиль по отображаемому имени, как это делает проверка права присоединиться
func (r *ProfileRepository) FindVolunteerByName(ctx context.Context, name string) (*models.VolunteerProfile, error) {
	query := `
		SELECT id, user_id, name, age, blood_group, state, district, address, created_at
		FROM volunteers
		WHERE name = $1
		ORDER BY created_at
		LIMIT 1;
	`
	p := &models.VolunteerProfile{}
	err := r.db.QueryRow(ctx, query, name).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Age, &p.BloodGroup, &p.State, &p.District, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find volunteer profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) UpsertOrganization(ctx context.Context, p *models.OrganizationProfile) error {
	query := `
		INSERT INTO organizations (name, owner, society_reg_no, address)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner) DO UPDATE SET
			name = EXCLUDED.name,
			society_reg_no = EXCLUDED.society_reg_no,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, p.Name, p.Owner, p.SocietyRegNo, p.Address).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert organization profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindOrganizationByOwner(ctx context.Context, owner string) (*models.OrganizationProfile, error) {
	query := `
		SELECT id, name, owner, society_reg_no, address, created_at
		FROM organizations
		WHERE owner = $1;
	`
	p := &models.OrganizationProfile{}
	err := r.db.QueryRow(ctx, query, owner).Scan(&p.ID, &p.Name, &p.Owner, &p.SocietyRegNo, &p.Address, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization profile: %w", err)
	}
	return p, nil
}
