package face

import "context"

// FaceRepository stores one descriptor per email.
type FaceRepository interface {
	// Upsert inserts a new descriptor or replaces the existing one for the
	// same email.
	Upsert(ctx context.Context, face Face) (Face, error)

	// ListAll returns every enrolled descriptor in enrollment order. The
	// match rule depends on that order being stable.
	ListAll(ctx context.Context) ([]Face, error)

	// GetByEmail retrieves a single enrollment.
	GetByEmail(ctx context.Context, email string) (Face, error)
}
