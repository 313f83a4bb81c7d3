package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/face"
	"github.com/buildcrew/sitepulse-backend-go/internal/handler/http/response"
)

type FaceHandler interface {
	SaveDescriptor(w http.ResponseWriter, r *http.Request)
	ListDescriptors(w http.ResponseWriter, r *http.Request)
}

type FaceHandlerImpl struct {
	faceService face.FaceService
}

func NewFaceHandler(faceService face.FaceService) FaceHandler {
	return &FaceHandlerImpl{faceService: faceService}
}

// SaveDescriptor implements FaceHandler.
func (f *FaceHandlerImpl) SaveDescriptor(w http.ResponseWriter, r *http.Request) {
	var req face.SaveDescriptorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveDescriptor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := f.faceService.SaveDescriptor(r.Context(), req)
	if err != nil {
		slog.Error("SaveDescriptor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Descriptor saved successfully", saved)
}

// ListDescriptors implements FaceHandler.
func (f *FaceHandlerImpl) ListDescriptors(w http.ResponseWriter, r *http.Request) {
	descriptors, err := f.faceService.ListDescriptors(r.Context())
	if err != nil {
		slog.Error("ListDescriptors service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, descriptors)
}
