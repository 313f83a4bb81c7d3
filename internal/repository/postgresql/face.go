package postgresql

import (
	"context"
	"fmt"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/face"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

type faceRepository struct {
	db *database.DB
}

func NewFaceRepository(db *database.DB) face.FaceRepository {
	return &faceRepository{db: db}
}

func toVector(descriptor []float64) pgvector.Vector {
	v := make([]float32, len(descriptor))
	for i, x := range descriptor {
		v[i] = float32(x)
	}
	return pgvector.NewVector(v)
}

func fromVector(v pgvector.Vector) []float64 {
	slice := v.Slice()
	out := make([]float64, len(slice))
	for i, x := range slice {
		out[i] = float64(x)
	}
	return out
}

// Upsert implements face.FaceRepository.
func (r *faceRepository) Upsert(ctx context.Context, f face.Face) (face.Face, error) {
	q := GetQuerier(ctx, r.db)

	// created_at is preserved on conflict so enrollment order (and with it
	// the match scan order) is stable across re-enrollments.
	query := `
		INSERT INTO faces (email, descriptor)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		SET descriptor = EXCLUDED.descriptor, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, f.Email, toVector(f.Descriptor)).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return face.Face{}, fmt.Errorf("failed to upsert face descriptor: %w", err)
	}

	return f, nil
}

// ListAll implements face.FaceRepository.
func (r *faceRepository) ListAll(ctx context.Context) ([]face.Face, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, descriptor, created_at, updated_at
		FROM faces
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query face descriptors: %w", err)
	}
	defer rows.Close()

	var faces []face.Face
	for rows.Next() {
		var f face.Face
		var vec pgvector.Vector
		if err := rows.Scan(&f.ID, &f.Email, &vec, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan face descriptor: %w", err)
		}
		f.Descriptor = fromVector(vec)
		faces = append(faces, f)
	}

	return faces, rows.Err()
}

// GetByEmail implements face.FaceRepository.
func (r *faceRepository) GetByEmail(ctx context.Context, email string) (face.Face, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, descriptor, created_at, updated_at
		FROM faces
		WHERE email = $1
	`

	var f face.Face
	var vec pgvector.Vector
	err := q.QueryRow(ctx, query, email).
		Scan(&f.ID, &f.Email, &vec, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return face.Face{}, face.ErrDescriptorNotFound
		}
		return face.Face{}, fmt.Errorf("failed to get face descriptor: %w", err)
	}
	f.Descriptor = fromVector(vec)

	return f, nil
}
