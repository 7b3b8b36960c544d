package auth

import (
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/domain"
	"github.com/smart-asset/smart-asset-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// TokenUseCase emite el token de acceso para POST /jwt.
//
// La identidad primaria vive en el proveedor de auth del cliente: aquí solo
// se firma el email recibido, con vigencia fija de una hora y sin refresh.
// El rol no se embebe en el token; el gate RBAC lo consulta en la base por
// cada petición.
type TokenUseCase struct {
	cfg JWTConfig
}

// NewTokenUseCase construye el caso de uso.
func NewTokenUseCase(cfg JWTConfig) *TokenUseCase {
	return &TokenUseCase{cfg: cfg}
}

// IssueToken firma un token para el email indicado.
func (uc *TokenUseCase) IssueToken(in dto.IssueTokenRequest) (*dto.IssueTokenResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	token, err := jwt.Generate(uc.cfg.Secret, in.Email, uc.cfg.Issuer)
	if err != nil {
		return nil, err
	}
	return &dto.IssueTokenResponse{Token: token}, nil
}
