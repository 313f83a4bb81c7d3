package face

import (
	"context"
	"strings"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/face"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/sse"
)

type FaceServiceImpl struct {
	face.FaceRepository
	hub *sse.Hub
}

func NewFaceService(faceRepo face.FaceRepository, hub *sse.Hub) face.FaceService {
	return &FaceServiceImpl{
		FaceRepository: faceRepo,
		hub:            hub,
	}
}

// SaveDescriptor implements face.FaceService. Saving twice for the same
// email replaces the stored descriptor; it does not add a second identity.
func (f *FaceServiceImpl) SaveDescriptor(ctx context.Context, req face.SaveDescriptorRequest) (face.DescriptorResponse, error) {
	if err := req.Validate(); err != nil {
		return face.DescriptorResponse{}, err
	}

	saved, err := f.FaceRepository.Upsert(ctx, face.Face{
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Descriptor: req.Descriptor,
	})
	if err != nil {
		return face.DescriptorResponse{}, err
	}

	if f.hub != nil {
		f.hub.Publish(sse.Event{
			Topic: "face.enrolled",
			Data:  map[string]string{"email": saved.Email},
		})
	}

	return face.DescriptorResponse{
		Email:      saved.Email,
		Descriptor: saved.Descriptor,
	}, nil
}

// ListDescriptors implements face.FaceService.
func (f *FaceServiceImpl) ListDescriptors(ctx context.Context) ([]face.DescriptorResponse, error) {
	faces, err := f.FaceRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]face.DescriptorResponse, 0, len(faces))
	for _, enrolled := range faces {
		responses = append(responses, face.DescriptorResponse{
			Email:      enrolled.Email,
			Descriptor: enrolled.Descriptor,
		})
	}
	return responses, nil
}
