package face

import (
	"context"
	"testing"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/face"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFaceRepo struct {
	faces []face.Face
}

func (f *fakeFaceRepo) Upsert(ctx context.Context, enrolled face.Face) (face.Face, error) {
	for i, existing := range f.faces {
		if existing.Email == enrolled.Email {
			f.faces[i].Descriptor = enrolled.Descriptor
			return f.faces[i], nil
		}
	}
	f.faces = append(f.faces, enrolled)
	return enrolled, nil
}

func (f *fakeFaceRepo) ListAll(ctx context.Context) ([]face.Face, error) {
	out := make([]face.Face, len(f.faces))
	copy(out, f.faces)
	return out, nil
}

func (f *fakeFaceRepo) GetByEmail(ctx context.Context, email string) (face.Face, error) {
	for _, existing := range f.faces {
		if existing.Email == email {
			return existing, nil
		}
	}
	return face.Face{}, face.ErrDescriptorNotFound
}

func descriptor(fill float64) []float64 {
	d := make([]float64, validator.DescriptorLength)
	for i := range d {
		d[i] = fill
	}
	return d
}

func TestSaveDescriptor_Enrolls(t *testing.T) {
	repo := &fakeFaceRepo{}
	svc := NewFaceService(repo, nil)

	resp, err := svc.SaveDescriptor(context.Background(), face.SaveDescriptorRequest{
		Email:      "Mason@Example.com",
		Descriptor: descriptor(0.25),
	})
	require.NoError(t, err)

	assert.Equal(t, "mason@example.com", resp.Email)
	require.Len(t, repo.faces, 1)
}

func TestSaveDescriptor_ReplacesExisting(t *testing.T) {
	repo := &fakeFaceRepo{}
	svc := NewFaceService(repo, nil)
	ctx := context.Background()

	_, err := svc.SaveDescriptor(ctx, face.SaveDescriptorRequest{
		Email:      "mason@example.com",
		Descriptor: descriptor(0.1),
	})
	require.NoError(t, err)

	_, err = svc.SaveDescriptor(ctx, face.SaveDescriptorRequest{
		Email:      "mason@example.com",
		Descriptor: descriptor(0.9),
	})
	require.NoError(t, err)

	require.Len(t, repo.faces, 1, "re-enrollment must not add an identity")
	assert.Equal(t, 0.9, repo.faces[0].Descriptor[0])
}

func TestSaveDescriptor_RejectsWrongLength(t *testing.T) {
	svc := NewFaceService(&fakeFaceRepo{}, nil)

	_, err := svc.SaveDescriptor(context.Background(), face.SaveDescriptorRequest{
		Email:      "mason@example.com",
		Descriptor: []float64{1, 2, 3},
	})
	assert.Error(t, err)
}

func TestListDescriptors_EnrollmentOrder(t *testing.T) {
	repo := &fakeFaceRepo{}
	svc := NewFaceService(repo, nil)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.SaveDescriptor(ctx, face.SaveDescriptorRequest{
			Email:      email,
			Descriptor: descriptor(0.5),
		})
		require.NoError(t, err)
	}

	listed, err := svc.ListDescriptors(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "a@example.com", listed[0].Email)
	assert.Equal(t, "c@example.com", listed[2].Email)
}
