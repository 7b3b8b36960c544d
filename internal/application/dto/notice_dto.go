package dto

import "time"

// UpsertNoticeRequest body para PATCH /notice.
type UpsertNoticeRequest struct {
	CompanyName string `json:"company_name"`
	Notice      string `json:"notice"`
}

// NoticeResponse salida de GET /notice.
type NoticeResponse struct {
	CompanyName string    `json:"company_name"`
	Notice      string    `json:"notice"`
	UpdatedAt   time.Time `json:"updated_at"`
}
