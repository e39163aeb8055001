package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compensa-api/internal/domain/clearing"
)

// ClearingInvoice proyección de una factura elegible con su estado de
// compensación, lista para la UI.
type ClearingInvoice struct {
	ID              string          `json:"id"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Direction       string          `json:"direction"`
	UserAction      string          `json:"user_action"`
	SupplierAction  string          `json:"supplier_action"`
	BothSubmitted   bool            `json:"both_submitted"`
	Inclusion       string          `json:"inclusion"`
	ExclusionReason string          `json:"exclusion_reason,omitempty"`
	Submitted       bool            `json:"submitted"` // bloqueada en el envío vigente
	Ready           bool            `json:"ready"`     // entraría en el próximo envío
}

// CycleWindowResponse ventana del ciclo vigente.
type CycleWindowResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	CutoffAt        time.Time `json:"cutoff_at"`
	DayIndex        int       `json:"day_index"`
	DaysRemaining   int       `json:"days_remaining"`
	IsConsentWindow bool      `json:"is_consent_window"`
	IsPastCutoff    bool      `json:"is_past_cutoff"`
}

// SubmissionResponse envío versionado vigente.
type SubmissionResponse struct {
	Version      int       `json:"version"`
	SubmittedAt  time.Time `json:"submitted_at"`
	SubmittedIDs []string  `json:"submitted_ids"`
}

// ClearingOverview resumen del ciclo para la superficie de compensación.
type ClearingOverview struct {
	Window        CycleWindowResponse `json:"window"`
	EligibleCount int                 `json:"eligible_count"`
	IncludedCount int                 `json:"included_count"`
	ExcludedCount int                 `json:"excluded_count"`
	ReadyCount    int                 `json:"ready_count"`
	Submission    *SubmissionResponse `json:"submission,omitempty"`
}

// SubmitResponse resultado de un envío.
type SubmitResponse struct {
	Version      int       `json:"version"`
	SubmittedAt  time.Time `json:"submitted_at"`
	SubmittedIDs []string  `json:"submitted_ids"`
	NewlyLocked  []string  `json:"newly_locked"`
}

// ExcludeRequest cuerpo de exclusión manual.
type ExcludeRequest struct {
	Reason string `json:"reason"` // by_supplier | by_customer; vacío = by_customer
}

// BatchRequest cuerpo de include-all / exclude-all.
type BatchRequest struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason,omitempty"`
}

// BatchResult ids aplicados y omitidos (con causa) de una operación por lotes.
type BatchResult struct {
	Applied []string           `json:"applied"`
	Skipped []clearing.Skipped `json:"skipped"`
}

// NewCountResponse contador de elegibles nuevas desde la última visita.
type NewCountResponse struct {
	NewCount int `json:"new_count"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
