package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/internal/domain/entity"
	"github.com/smart-asset/smart-asset-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del identity store
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{byID: m}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) ListHRCompanies() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.Role == entity.RoleHR {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListEmployeesByCompany(companyName string, onlyUnverified bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.Role != entity.RoleEmployee || u.CompanyName != companyName {
			continue
		}
		if onlyUnverified && u.Verified {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// UpsertHRPurchase reproduce el statement atómico del store real: alta y
// merge aditivo bajo el mismo lock, serializados como lo hace PostgreSQL.
func (r *fakeUserRepo) UpsertHRPurchase(u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email != u.Email {
			continue
		}
		existing.Role = entity.RoleHR
		existing.Verified = true
		existing.Members += u.Members
		existing.PackagesRate = existing.PackagesRate.Add(u.PackagesRate)
		existing.TransactionID = u.TransactionID
		existing.ExpirationDate = u.ExpirationDate
		if u.CompanyName != "" {
			existing.CompanyName = u.CompanyName
		}
		if u.CompanyLogo != "" {
			existing.CompanyLogo = u.CompanyLogo
		}
		existing.UpdatedAt = u.UpdatedAt
		copia := *existing
		return &copia, nil
	}
	nuevo := *u
	r.byID[u.ID] = &nuevo
	copia := nuevo
	return &copia, nil
}

func (r *fakeUserRepo) DecrementMembers(companyName string) error {
	for _, u := range r.byID {
		if u.Role == entity.RoleHR && u.CompanyName == companyName && u.Members > 0 {
			u.Members--
			return nil
		}
	}
	return nil
}

// fakeUserTxRunner ejecuta el callback directo sobre el fake.
type fakeUserTxRunner struct {
	repo *fakeUserRepo
}

func (t *fakeUserTxRunner) RunUsers(_ context.Context, fn func(repository.UserRepository) error) error {
	return fn(t.repo)
}

func buildUserUC(repo *fakeUserRepo) *usecase.UserUseCase {
	return usecase.NewUserUseCase(repo, &fakeUserTxRunner{repo: repo})
}

func hrUser(members int) *entity.User {
	return &entity.User{
		ID:           "hr-1",
		Email:        "rrhh@acme.com",
		Name:         "Recursos Humanos",
		Role:         entity.RoleHR,
		CompanyName:  "Acme",
		Verified:     true,
		Members:      members,
		PackagesRate: decimal.NewFromInt(10),
	}
}

func employeeUser(id, email string, verified bool) *entity.User {
	return &entity.User{
		ID:          id,
		Email:       email,
		Name:        "Empleado",
		Role:        entity.RoleEmployee,
		CompanyName: "Acme",
		Verified:    verified,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetRole
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRole_UsuarioInexistente_DevuelveVacioSinError(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo())

	role, err := uc.GetRole("nadie@acme.com")
	require.NoError(t, err, "un email desconocido no es un error")
	assert.Empty(t, role)
}

func TestGetRole_UsuarioExistente(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo(hrUser(3)))

	role, err := uc.GetRole("rrhh@acme.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHR, role)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpsertHR
// ──────────────────────────────────────────────────────────────────────────────

// La compra repetida de paquetes suma members y packages_rate al registro
// existente (merge aditivo por email) en lugar de duplicarlo;
// transaction_id y expiration_date se sobreescriben con la compra nueva.
func TestUpsertHR_MergeAditivo(t *testing.T) {
	repo := newFakeUserRepo(hrUser(3))
	repo.byID["hr-1"].TransactionID = "tx-vieja"
	uc := buildUserUC(repo)

	out, err := uc.UpsertHR(dto.UpsertHRRequest{
		Email:         "rrhh@acme.com",
		CompanyName:   "Acme",
		Members:       2,
		PackagesRate:  decimal.NewFromInt(5),
		TransactionID: "tx-nueva",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Members, "3 members previos + 2 comprados = 5")
	assert.Equal(t, "15", out.PackagesRate.String(), "packages_rate también se acumula")
	assert.Equal(t, "tx-nueva", out.TransactionID, "transaction_id se sobreescribe, no se acumula")
	assert.Len(t, repo.byID, 1, "nunca se duplica el registro por email")
}

// Dos compras simultáneas del mismo email no pueden pisarse los
// contadores: sobre 3 members, dos compras de 1 deben dejar 5, nunca 4.
// El merge vive en el store, no en un read-modify-write de la aplicación.
func TestUpsertHR_ComprasConcurrentesNoPierdenIncrementos(t *testing.T) {
	repo := newFakeUserRepo(hrUser(3))
	uc := buildUserUC(repo)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.UpsertHR(dto.UpsertHRRequest{
				Email:        "rrhh@acme.com",
				CompanyName:  "Acme",
				Members:      1,
				PackagesRate: decimal.NewFromInt(5),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, 5, repo.byID["hr-1"].Members, "3 + 1 + 1 = 5; un 4 delataría un incremento perdido")
	assert.Equal(t, "20", repo.byID["hr-1"].PackagesRate.String())
}

func TestUpsertHR_AltaNueva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildUserUC(repo)

	out, err := uc.UpsertHR(dto.UpsertHRRequest{
		Email:       "rrhh@acme.com",
		CompanyName: "Acme",
		Members:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleHR, out.Role)
	assert.True(t, out.Verified, "un HR nace verificado")
	assert.Equal(t, 3, out.Members)
}

func TestUpsertHR_EntradaInvalida(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo())

	_, err := uc.UpsertHR(dto.UpsertHRRequest{CompanyName: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpsertHR(dto.UpsertHRRequest{Email: "rrhh@acme.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterEmployee
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEmployee_AltaNueva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildUserUC(repo)

	out, err := uc.RegisterEmployee(dto.RegisterEmployeeRequest{
		Email:       "empleado@acme.com",
		Name:        "Empleado",
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	assert.False(t, out.AlreadyExists)
	require.NotNil(t, out.User)
	assert.Equal(t, entity.RoleEmployee, out.User.Role)
	assert.False(t, out.User.Verified, "un empleado nace sin verificar")
}

// El alta repetida es un éxito sintético: no toca el registro existente.
func TestRegisterEmployee_Idempotente(t *testing.T) {
	repo := newFakeUserRepo(employeeUser("emp-1", "empleado@acme.com", true))
	uc := buildUserUC(repo)

	out, err := uc.RegisterEmployee(dto.RegisterEmployeeRequest{
		Email: "empleado@acme.com",
		Name:  "Otro Nombre",
	})
	require.NoError(t, err, "el alta repetida no es un error")

	assert.True(t, out.AlreadyExists)
	assert.Nil(t, out.User)
	assert.Len(t, repo.byID, 1)
	assert.True(t, repo.byID["emp-1"].Verified, "el registro existente queda intacto")
	assert.Equal(t, "Empleado", repo.byID["emp-1"].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación y bajas
// ──────────────────────────────────────────────────────────────────────────────

// ToggleVerified solo invierte el flag: el contador members del HR no cambia.
func TestToggleVerified_NoTocaMembers(t *testing.T) {
	repo := newFakeUserRepo(hrUser(3), employeeUser("emp-1", "empleado@acme.com", false))
	uc := buildUserUC(repo)

	out, err := uc.ToggleVerified("emp-1")
	require.NoError(t, err)
	assert.True(t, out.Verified)
	assert.Equal(t, 3, repo.byID["hr-1"].Members)

	out, err = uc.ToggleVerified("emp-1")
	require.NoError(t, err)
	assert.False(t, out.Verified, "el toggle es reversible")
}

func TestRemoveEmployee_BorraYDescuentaMembers(t *testing.T) {
	repo := newFakeUserRepo(hrUser(3), employeeUser("emp-1", "empleado@acme.com", true))
	uc := buildUserUC(repo)

	err := uc.RemoveEmployee(context.Background(), "emp-1", "")
	require.NoError(t, err)

	_, existe := repo.byID["emp-1"]
	assert.False(t, existe, "el registro del empleado debe borrarse")
	assert.Equal(t, 2, repo.byID["hr-1"].Members, "la baja descuenta uno del contador del HR")
}

func TestRemoveEmployee_NoExiste(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo(hrUser(3)))

	err := uc.RemoveEmployee(context.Background(), "emp-999", "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListEmployees_FiltraPorVerificacion(t *testing.T) {
	repo := newFakeUserRepo(
		hrUser(2),
		employeeUser("emp-1", "a@acme.com", false),
		employeeUser("emp-2", "b@acme.com", true),
	)
	uc := buildUserUC(repo)

	todos, err := uc.ListEmployees("rrhh@acme.com", false)
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	pendientes, err := uc.ListEmployees("rrhh@acme.com", true)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, "a@acme.com", pendientes[0].Email)
}

func TestListEmployees_HRInexistente(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo())

	_, err := uc.ListEmployees("nadie@acme.com", false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListCompanies(t *testing.T) {
	otro := hrUser(1)
	otro.ID = "hr-2"
	otro.Email = "rrhh@globex.com"
	otro.CompanyName = "Globex"
	repo := newFakeUserRepo(hrUser(3), otro, employeeUser("emp-1", "a@acme.com", true))
	uc := buildUserUC(repo)

	out, err := uc.ListCompanies()
	require.NoError(t, err)

	assert.Len(t, out, 2, "solo los registros HR aportan empresa")
	nombres := []string{out[0].CompanyName, out[1].CompanyName}
	assert.ElementsMatch(t, []string{"Acme", "Globex"}, nombres)
}
