package contracts

import (
	"context"
	"unidash-service/internal/app/models"
)

// FacultyLoadClient reads faculty loads from the academic backend.
type FacultyLoadClient interface {
	FindFacultyLoads(ctx context.Context, query *models.FacultyLoadQuery) ([]models.FacultyLoad, error)
	ListFacultyLoads(ctx context.Context, term *models.AcademicTerm) ([]models.FacultyLoad, error)
}
