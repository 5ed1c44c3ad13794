package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/brand-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

const (
	dashMembersTable = "dash_members dm"
)

type DashMemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.DashMember, error)
	GetByLoginID(ctx context.Context, loginID string) (*domain.DashMember, error)
	ListMembers(ctx context.Context, availableStatus []domain.DashMemberStatus) ([]*domain.DashMember, error)
	SaveOrUpdate(ctx context.Context, member *domain.DashMember) error
}

type dashMemberRepository struct {
	conn *postgres.Connection
}

func NewDashMemberRepository(conn *postgres.Connection) DashMemberRepository {
	return &dashMemberRepository{
		conn: conn,
	}
}

func (r *dashMemberRepository) GetByID(ctx context.Context, id string) (*domain.DashMember, error) {
	return r.getMember(ctx, squirrel.Eq{"dm.id": id})
}

func (r *dashMemberRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.DashMember, error) {
	return r.getMember(ctx, squirrel.Eq{"dm.login_id": loginID})
}

func (r *dashMemberRepository) getMember(ctx context.Context, whereClause squirrel.Eq) (*domain.DashMember, error) {
	membersSQL, membersArgs, err := squirrel.
		Select("dm.id, dm.login_id, dm.name, dm.role, dm.status, dm.last_login_at, dm.created_at, dm.updated_at").
		From(dashMembersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRowContext(ctx, membersSQL, membersArgs...)

	member, err := deserializeMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return member, nil
}

func (r *dashMemberRepository) ListMembers(ctx context.Context, availableStatus []domain.DashMemberStatus) ([]*domain.DashMember, error) {
	queryBuilder := squirrel.
		Select("dm.id, dm.login_id, dm.name, dm.role, dm.status, dm.last_login_at, dm.created_at, dm.updated_at").
		From(dashMembersTable).
		OrderBy("dm.login_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"dm.status": availableStatus})
	}

	membersSQL, membersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, membersSQL, membersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.DashMember, 0)
	for rows.Next() {
		member, err := deserializeMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// SaveOrUpdate registra o membro no primeiro login e atualiza o último acesso nos seguintes
func (r *dashMemberRepository) SaveOrUpdate(ctx context.Context, member *domain.DashMember) error {
	query := squirrel.StatementBuilder.
		Insert("dash_members").
		Columns("id", "login_id", "name", "role", "status", "last_login_at").
		Values(member.ID, member.LoginID, member.Name, member.Role, member.Status, member.LastLoginAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				login_id = EXCLUDED.login_id,
				name = COALESCE(NULLIF(EXCLUDED.name, ''), dash_members.name),
				status = EXCLUDED.status,
				last_login_at = EXCLUDED.last_login_at,
				updated_at = NOW()
			RETURNING role, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	// o papel é preservado no conflito; o valor gravado volta para o chamador
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&member.Role, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeMember(row rowScanner) (*domain.DashMember, error) {
	member := &domain.DashMember{}
	var lastLoginAt sql.NullTime

	if err := row.Scan(
		&member.ID,
		&member.LoginID,
		&member.Name,
		&member.Role,
		&member.Status,
		&lastLoginAt,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lastLoginAt.Valid {
		t := lastLoginAt.Time
		member.LastLoginAt = &t
	}

	return member, nil
}
