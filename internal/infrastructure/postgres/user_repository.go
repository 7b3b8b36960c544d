package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, name, role, company_name, company_logo, verified,
		members, packages_rate, transaction_id, expiration_date, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL
// (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Valida el rol en la frontera del store:
// cualquier string fuera de la enumeración es domain.ErrInvalidRole.
func (r *UserRepo) Create(user *entity.User) error {
	if !entity.ValidRole(user.Role) {
		return domain.ErrInvalidRole
	}
	query := `
		INSERT INTO users (id, email, name, role, company_name, company_logo, verified,
			members, packages_rate, transaction_id, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.Role, user.CompanyName, user.CompanyLogo,
		user.Verified, user.Members, user.PackagesRate, user.TransactionID,
		user.ExpirationDate, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.CompanyName, &u.CompanyLogo,
		&u.Verified, &u.Members, &u.PackagesRate, &u.TransactionID,
		&u.ExpirationDate, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpsertHRPurchase aplica una compra de paquete HR. Alta y merge aditivo
// viven en el mismo statement: ON CONFLICT acumula members/packages_rate
// sobre la fila existente dentro de PostgreSQL, así que dos compras
// concurrentes del mismo email no pueden pisarse los contadores.
func (r *UserRepo) UpsertHRPurchase(user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, email, name, role, company_name, company_logo, verified,
			members, packages_rate, transaction_id, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (email) DO UPDATE SET
			role            = EXCLUDED.role,
			verified        = true,
			members         = users.members + EXCLUDED.members,
			packages_rate   = users.packages_rate + EXCLUDED.packages_rate,
			transaction_id  = EXCLUDED.transaction_id,
			expiration_date = EXCLUDED.expiration_date,
			company_name    = CASE WHEN EXCLUDED.company_name <> '' THEN EXCLUDED.company_name ELSE users.company_name END,
			company_logo    = CASE WHEN EXCLUDED.company_logo <> '' THEN EXCLUDED.company_logo ELSE users.company_logo END,
			updated_at      = EXCLUDED.updated_at
		RETURNING ` + userColumns
	var u entity.User
	err := r.q.QueryRow(context.Background(), query,
		user.ID, user.Email, user.Name, entity.RoleHR, user.CompanyName,
		user.CompanyLogo, user.Members, user.PackagesRate, user.TransactionID,
		user.ExpirationDate, user.UpdatedAt,
	).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.CompanyName, &u.CompanyLogo,
		&u.Verified, &u.Members, &u.PackagesRate, &u.TransactionID,
		&u.ExpirationDate, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert hr purchase: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario. El rol se revalida: el enum también aplica
// a mutaciones.
func (r *UserRepo) Update(user *entity.User) error {
	if !entity.ValidRole(user.Role) {
		return domain.ErrInvalidRole
	}
	query := `
		UPDATE users SET name = $2, role = $3, company_name = $4, company_logo = $5,
			verified = $6, members = $7, packages_rate = $8, transaction_id = $9,
			expiration_date = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Role, user.CompanyName, user.CompanyLogo,
		user.Verified, user.Members, user.PackagesRate, user.TransactionID,
		user.ExpirationDate, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListHRCompanies devuelve los registros HR (para nombre y logo de empresa).
func (r *UserRepo) ListHRCompanies() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY company_name`
	return r.scanList(query, entity.RoleHR)
}

// ListEmployeesByCompany lista empleados de una empresa; con
// onlyUnverified=true solo los pendientes de verificación.
func (r *UserRepo) ListEmployeesByCompany(companyName string, onlyUnverified bool) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 AND company_name = $2`
	if onlyUnverified {
		query += ` AND verified = false`
	}
	query += ` ORDER BY created_at DESC`
	return r.scanList(query, entity.RoleEmployee, companyName)
}

func (r *UserRepo) scanList(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.Role, &u.CompanyName, &u.CompanyLogo,
			&u.Verified, &u.Members, &u.PackagesRate, &u.TransactionID,
			&u.ExpirationDate, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// DecrementMembers resta uno al contador members del HR de la empresa, en
// un solo statement (sin read-modify-write en la aplicación).
func (r *UserRepo) DecrementMembers(companyName string) error {
	query := `
		UPDATE users SET members = members - 1, updated_at = now()
		WHERE role = $1 AND company_name = $2 AND members > 0`
	_, err := r.q.Exec(context.Background(), query, entity.RoleHR, companyName)
	if err != nil {
		return fmt.Errorf("decrement members: %w", err)
	}
	return nil
}
