package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type TeamMemberRepository struct {
	DB *sql.DB
}

func NewTeamMemberRepository(db *sql.DB) *TeamMemberRepository {
	return &TeamMemberRepository{DB: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (name, role, email, phone, commission_percentage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING member_id
	`

	return r.DB.QueryRowContext(ctx, query,
		member.Name,
		nullString(member.Role),
		nullString(member.Email),
		nullString(member.Phone),
		member.CommissionPercentage,
	).Scan(&member.ID)
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]entity.TeamMember, error) {
	query := `
		SELECT member_id, name, role, email, phone, commission_percentage
		FROM team_members
		ORDER BY role, name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entity.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}

// FindFirstByRole pega um membro qualquer com o papel dado. nil sem erro
// quando não existe ninguém com o papel.
func (r *TeamMemberRepository) FindFirstByRole(ctx context.Context, role string) (*entity.TeamMember, error) {
	query := `
		SELECT member_id, name, role, email, phone, commission_percentage
		FROM team_members
		WHERE role = $1
		ORDER BY member_id
		LIMIT 1
	`

	member, err := scanTeamMember(r.DB.QueryRowContext(ctx, query, role))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return member, err
}

func scanTeamMember(row rowScanner) (*entity.TeamMember, error) {
	var (
		member       entity.TeamMember
		role         sql.NullString
		email, phone sql.NullString
		commission   sql.NullFloat64
	)

	err := row.Scan(&member.ID, &member.Name, &role, &email, &phone, &commission)
	if err != nil {
		return nil, err
	}

	member.Role = role.String
	member.Email = email.String
	member.Phone = phone.String
	member.CommissionPercentage = commission.Float64
	return &member, nil
}
