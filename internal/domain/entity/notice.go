package entity

import "time"

// Notice aviso único por empresa (singleton por CompanyName). HR lo
// publica con upsert; todos los miembros de la empresa lo leen.
type Notice struct {
	CompanyName string
	Text        string
	UpdatedAt   time.Time
}
