package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage normaliza la página: valores por defecto si Limit/Offset
// vienen vacíos o negativos, y tope de 100 por página.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo genérico con solo un mensaje. Es el contrato del
// gate de autorización: tanto "sin token" como "rol incorrecto" responden
// 401 {"message":"forbidden access"} sin distinguirse ante el cliente.
type MessageResponse struct {
	Message string `json:"message"`
}
