package port

import (
	"context"

	"okpujaAdmin/internal/modules/employees/domain"
)

// DirectoryFetcher retrieves the staff directory from the employee API.
type DirectoryFetcher interface {
	FetchEmployees(ctx context.Context, token string) ([]domain.Employee, error)
}
