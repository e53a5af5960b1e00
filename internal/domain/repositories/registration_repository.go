package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-portal.backend/internal/domain/entities"
)

// RegistrationRepository is the document store adapter for team registrations.
// Registrations are append-only: there are no update or delete operations.
type RegistrationRepository interface {
	// Insert appends a registration and returns the store-assigned ID.
	Insert(ctx context.Context, reg *entities.TeamRegistration) (primitive.ObjectID, error)
	// FindByID re-reads a single registration by its identifier.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.TeamRegistration, error)
	// FindAll returns every registration. When newestFirst is set, results
	// are sorted by creation time descending; otherwise natural order.
	FindAll(ctx context.Context, newestFirst bool) ([]*entities.TeamRegistration, error)
	// Count returns the number of stored registrations.
	Count(ctx context.Context) (int64, error)
}
