package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// UserUseCase operaciones sobre el identity store: roles, registro de HR y
// empleados, verificación y bajas.
type UserUseCase struct {
	repo     repository.UserRepository
	txRunner UserTxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, txRunner UserTxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, txRunner: txRunner}
}

// GetRole devuelve el rol del email, o cadena vacía si el usuario no
// existe. El vacío NO es un error: los callers (en particular el gate
// RBAC) deben distinguirlo de un rol válido.
func (uc *UserUseCase) GetRole(email string) (string, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// GetByEmail obtiene un usuario por email.
func (uc *UserUseCase) GetByEmail(email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// UpsertHR registra una compra de paquete de un HR. Si el email ya existe,
// members y packages_rate se SUMAN al registro (merge aditivo por email) y
// transaction_id / expiration_date se sobreescriben con la compra nueva;
// nunca se crea un registro duplicado. Si no existe, inserta con role=HR y
// verified=true. El merge lo resuelve el store en un solo statement
// atómico: compras concurrentes del mismo email no pierden incrementos.
func (uc *UserUseCase) UpsertHR(in dto.UpsertHRRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	merged, err := uc.repo.UpsertHRPurchase(&entity.User{
		ID:             uuid.New().String(),
		Email:          in.Email,
		Name:           in.Name,
		Role:           entity.RoleHR,
		CompanyName:    in.CompanyName,
		CompanyLogo:    in.CompanyLogo,
		Verified:       true,
		Members:        in.Members,
		PackagesRate:   in.PackagesRate,
		TransactionID:  in.TransactionID,
		ExpirationDate: in.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(merged), nil
}

// RegisterEmployee da de alta un empleado con role=EMPLOYEE y
// verified=false. Si el email ya existe responde un éxito sintético con
// AlreadyExists=true sin tocar el registro: exactamente un registro por
// email.
func (uc *UserUseCase) RegisterEmployee(in dto.RegisterEmployeeRequest) (*dto.RegisterEmployeeResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.RegisterEmployeeResponse{
			AlreadyExists: true,
			Message:       "el usuario ya existe",
		}, nil
	}
	now := time.Now()
	user := &entity.User{
		ID:          uuid.New().String(),
		Email:       in.Email,
		Name:        in.Name,
		Role:        entity.RoleEmployee,
		CompanyName: in.CompanyName,
		Verified:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.RegisterEmployeeResponse{
		User:    toUserResponse(user),
		Message: "empleado registrado",
	}, nil
}

// UpdateProfile actualiza campos de perfil por email (PATCH /users/update).
func (uc *UserUseCase) UpdateProfile(in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.CompanyName != nil {
		user.CompanyName = *in.CompanyName
	}
	if in.CompanyLogo != nil {
		user.CompanyLogo = *in.CompanyLogo
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListCompanies lista nombre y logo de empresa de los registros HR.
func (uc *UserUseCase) ListCompanies() ([]dto.CompanyResponse, error) {
	hrs, err := uc.repo.ListHRCompanies()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(hrs))
	for _, hr := range hrs {
		out = append(out, dto.CompanyResponse{
			CompanyName: hr.CompanyName,
			CompanyLogo: hr.CompanyLogo,
		})
	}
	return out, nil
}

// ListEmployees lista los empleados de la empresa del HR indicado por
// email. Con onlyUnverified=true devuelve solo los pendientes de
// verificación (GET /users/employees-request/:email).
func (uc *UserUseCase) ListEmployees(hrEmail string, onlyUnverified bool) ([]dto.UserResponse, error) {
	hr, err := uc.repo.GetByEmail(hrEmail)
	if err != nil {
		return nil, err
	}
	if hr == nil {
		return nil, domain.ErrUserNotFound
	}
	employees, err := uc.repo.ListEmployeesByCompany(hr.CompanyName, onlyUnverified)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, *toUserResponse(e))
	}
	return out, nil
}

// ToggleVerified invierte el flag verified del registro indicado. No toca
// el contador members del HR: esa responsabilidad quedó separada en
// RemoveEmployee (ver DESIGN.md).
func (uc *UserUseCase) ToggleVerified(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	user.Verified = !user.Verified
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// RemoveEmployee elimina el registro del empleado y descuenta uno del
// contador members del HR de su empresa, en UNA transacción: no existe
// ventana en la que el empleado esté borrado con el contador sin ajustar.
// companyName puede venir vacío; en ese caso se usa la empresa del propio
// registro.
func (uc *UserUseCase) RemoveEmployee(ctx context.Context, id, companyName string) error {
	return uc.txRunner.RunUsers(ctx, func(userRepo repository.UserRepository) error {
		user, err := userRepo.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		company := companyName
		if company == "" {
			company = user.CompanyName
		}
		if err := userRepo.Delete(id); err != nil {
			return err
		}
		return userRepo.DecrementMembers(company)
	})
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		CompanyName:    u.CompanyName,
		CompanyLogo:    u.CompanyLogo,
		Verified:       u.Verified,
		Members:        u.Members,
		PackagesRate:   u.PackagesRate,
		TransactionID:  u.TransactionID,
		ExpirationDate: u.ExpirationDate,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
