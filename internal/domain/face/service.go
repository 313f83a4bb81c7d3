package face

import "context"

// FaceService defines business logic for descriptor enrollment.
type FaceService interface {
	// SaveDescriptor enrolls or re-enrolls a face for an email.
	SaveDescriptor(ctx context.Context, req SaveDescriptorRequest) (DescriptorResponse, error)

	// ListDescriptors returns all enrollments, in enrollment order.
	ListDescriptors(ctx context.Context) ([]DescriptorResponse, error)
}
