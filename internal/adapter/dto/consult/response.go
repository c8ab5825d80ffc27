package consult

import "github.com/stationprep/consult-assistant/internal/domain/entities"

// AssessResponse returns the synthesized transcript alongside the validated
// assessment
type AssessResponse struct {
	Transcript string               `json:"transcript"`
	Assessment *entities.Assessment `json:"assessment"`
}

// CaseListResponse lists the available practice cases
type CaseListResponse struct {
	Cases []entities.MedicalCase `json:"cases"`
	Total int                    `json:"total"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
