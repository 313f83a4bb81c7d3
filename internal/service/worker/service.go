package worker

import (
	"context"
	"strings"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/worker"
	"github.com/buildcrew/sitepulse-backend-go/internal/service/file"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
	fileService file.FileService
}

func NewWorkerService(workerRepo worker.WorkerRepository, fileService file.FileService) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepo,
		fileService:      fileService,
	}
}

// Create implements worker.WorkerService.
func (w *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	photoURL := req.PhotoURL
	if req.File != nil && req.FileHeader != nil {
		uploaded, err := w.fileService.UploadWorkerPhoto(ctx, email, req.File, req.FileHeader.Filename)
		if err != nil {
			return worker.WorkerResponse{}, err
		}
		photoURL = &uploaded
	}

	created, err := w.WorkerRepository.Create(ctx, worker.Worker{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		PhotoURL: photoURL,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(created), nil
}

// List implements worker.WorkerService.
func (w *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := w.WorkerRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, wk := range workers {
		responses = append(responses, toResponse(wk))
	}
	return responses, nil
}

// Update implements worker.WorkerService.
func (w *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := w.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	photoURL := req.PhotoURL
	if req.File != nil && req.FileHeader != nil {
		uploaded, err := w.fileService.UploadWorkerPhoto(ctx, email, req.File, req.FileHeader.Filename)
		if err != nil {
			return worker.WorkerResponse{}, err
		}
		photoURL = &uploaded
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Email = email
	if photoURL != nil {
		existing.PhotoURL = photoURL
	}

	if err := w.WorkerRepository.Update(ctx, existing); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := w.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements worker.WorkerService.
func (w *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	return w.WorkerRepository.Delete(ctx, id)
}

func toResponse(wk worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:        wk.ID,
		Name:      wk.Name,
		Email:     wk.Email,
		PhotoURL:  wk.PhotoURL,
		CreatedAt: wk.CreatedAt.Format(time.RFC3339),
		UpdatedAt: wk.UpdatedAt.Format(time.RFC3339),
	}
}
