package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitRequestRequest body para POST /request. El snapshot del solicitante
// se embebe en la solicitud al crearla.
type SubmitRequestRequest struct {
	AssetID        string `json:"asset_id"`
	RequestorEmail string `json:"requestor_email"`
	RequestorName  string `json:"requestor_name"`
	CompanyName    string `json:"company_name"`
	Note           string `json:"note,omitempty"`
}

// RequestResponse salida de una solicitud.
type RequestResponse struct {
	ID             string     `json:"id"`
	AssetID        string     `json:"asset_id"`
	AssetName      string     `json:"asset_name"`
	RequestorEmail string     `json:"requestor_email"`
	RequestorName  string     `json:"requestor_name"`
	CompanyName    string     `json:"company_name"`
	Status         string     `json:"status"`
	Type           string     `json:"type"`
	RequestDate    time.Time  `json:"request_date"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	Note           string     `json:"note,omitempty"`
}

// RequestListResponse listado de solicitudes.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
	Count int               `json:"count"`
}

// RequestStatsResponse porcentajes por tipo para GET /request-stat.
// Con cero solicitudes ambos porcentajes son 0, nunca NaN.
type RequestStatsResponse struct {
	Total                 int             `json:"total"`
	ReturnablePercent     decimal.Decimal `json:"returnable_percent"`
	NonReturnablePercent  decimal.Decimal `json:"non_returnable_percent"`
}
