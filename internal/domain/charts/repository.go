package charts

import "context"

// Repository persiste charts guardados por usuario.
// (user_id, name) es único: un usuario no puede guardar dos charts con el mismo nombre.
type Repository interface {
	Create(ctx context.Context, c SavedChart) error
	GetByID(ctx context.Context, id string) (SavedChart, error)
	ListByUser(ctx context.Context, userID string) ([]SavedChart, error)
	Update(ctx context.Context, c SavedChart) error
	Delete(ctx context.Context, id string) error
}
