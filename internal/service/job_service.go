package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

type JobService struct {
	store     *store.Store
	persister *snapshot.Persister
	clients   *ClientService
	thumbs    *ThumbnailFetcher
	logger    *zap.Logger
}

func NewJobService(
	st *store.Store,
	persister *snapshot.Persister,
	clients *ClientService,
	thumbs *ThumbnailFetcher,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		store:     st,
		persister: persister,
		clients:   clients,
		thumbs:    thumbs,
		logger:    logger,
	}
}

func (s *JobService) Create(ctx context.Context, req *domain.CreateJobRequest) (*domain.Job, error) {
	job, err := s.store.CreateJob(domain.Job{
		ClientID:      req.ClientID,
		Name:          req.Name,
		Material:      req.Material,
		Measures:      req.Measures,
		Status:        req.Status,
		Details:       req.Details,
		FollowUpNotes: req.FollowUpNotes,
		Files:         req.Files,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.refreshClientStatus(ctx, job.ClientID)
	s.save(ctx)
	s.logger.Info("job created",
		zap.Int64("id", job.ID),
		zap.Int64("clientId", job.ClientID),
		zap.String("name", job.Name))
	return &job, nil
}

func (s *JobService) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.store.GetJob(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// Update merges the fields present in the request onto the stored job and
// re-derives the owning client's status.
func (s *JobService) Update(ctx context.Context, id int64, req *domain.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.store.UpdateJob(id, func(j *domain.Job) {
		if req.Name != nil {
			j.Name = *req.Name
		}
		if req.Material != nil {
			j.Material = *req.Material
		}
		if req.Measures != nil {
			j.Measures = *req.Measures
		}
		if req.Status != nil {
			j.Status = *req.Status
		}
		if req.Details != nil {
			j.Details = *req.Details
		}
		if req.FollowUpNotes != nil {
			j.FollowUpNotes = *req.FollowUpNotes
		}
		if req.Files != nil {
			j.Files = append([]domain.JobFile{}, (*req.Files)...)
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.refreshClientStatus(ctx, job.ClientID)
	s.save(ctx)
	return &job, nil
}

// Delete removes the job and re-derives the owning client's status
func (s *JobService) Delete(ctx context.Context, id int64) error {
	job, err := s.store.DeleteJob(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.thumbs.Cancel(id)
	s.refreshClientStatus(ctx, job.ClientID)
	s.save(ctx)
	s.logger.Info("job deleted", zap.Int64("id", id))
	return nil
}

// List returns all jobs, or only one client's jobs when clientID is set
func (s *JobService) List(ctx context.Context, clientID int64) ([]domain.Job, error) {
	if clientID != 0 {
		return s.store.JobsForClient(clientID), nil
	}
	return s.store.ListJobs(), nil
}

// AddFile attaches a file to the job. Local uploads (data URI) store the
// payload directly and use it as their own thumbnail when they are images.
// External links get a thumbnail immediately when one can be derived from
// the URL; otherwise resolution runs asynchronously and may be superseded
// by later changes to the same job.
func (s *JobService) AddFile(ctx context.Context, jobID int64, req *domain.AddJobFileRequest) (*domain.Job, error) {
	file := domain.JobFile{
		ID:   s.store.NextID(),
		Name: req.Name,
		Type: req.Type,
	}

	resolveAsync := false
	if req.Data != "" {
		file.URL = req.Data
		file.IsLocal = true
		if strings.HasPrefix(req.Type, "image/") {
			file.Thumbnail = req.Data
		}
	} else {
		file.URL = req.URL
		if file.Name == "" {
			file.Name = urlFileName(req.URL)
		}
		if file.Type == "" {
			file.Type = "application/octet-stream"
		}
		switch {
		case strings.HasPrefix(file.Type, "image/"):
			file.Thumbnail = req.URL
		case isYouTubeURL(req.URL):
			if id := extractYouTubeID(req.URL); id != "" {
				file.Thumbnail = "https://img.youtube.com/vi/" + id + "/0.jpg"
			}
		case strings.HasPrefix(file.Type, "video/"), file.Type == "application/pdf":
			resolveAsync = true
		}
	}

	job, err := s.store.UpdateJob(jobID, func(j *domain.Job) {
		j.Files = append(j.Files, file)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to add file: %w", err)
	}

	if resolveAsync {
		s.thumbs.Schedule(jobID, file.ID, file.URL)
	}

	s.save(ctx)
	return &job, nil
}

// RemoveFile detaches the file with the given id from the job
func (s *JobService) RemoveFile(ctx context.Context, jobID, fileID int64) (*domain.Job, error) {
	var found bool
	job, err := s.store.UpdateJob(jobID, func(j *domain.Job) {
		for i, f := range j.Files {
			if f.ID == fileID {
				j.Files = append(j.Files[:i], j.Files[i+1:]...)
				found = true
				return
			}
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to remove file: %w", err)
	}
	if !found {
		return nil, ErrFileNotFound
	}

	s.save(ctx)
	return &job, nil
}

// SaveCalculator computes the totals from the inputs and stores the result
// verbatim on the job.
func (s *JobService) SaveCalculator(ctx context.Context, jobID int64, req *domain.CalculatorRequest) (*domain.Job, error) {
	calc := ComputeTotals(*req)
	job, err := s.store.UpdateJob(jobID, func(j *domain.Job) {
		j.Calculator = &calc
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to save calculator: %w", err)
	}

	s.save(ctx)
	s.logger.Info("calculator saved",
		zap.Int64("jobId", jobID),
		zap.Float64("totalCost", calc.TotalCost),
		zap.Float64("finalPrice", calc.FinalPrice))
	return &job, nil
}

func (s *JobService) refreshClientStatus(ctx context.Context, clientID int64) {
	if _, err := s.clients.RecomputeStatus(ctx, clientID); err != nil {
		s.logger.Warn("status recompute failed",
			zap.Int64("clientId", clientID),
			zap.Error(err))
	}
}

func (s *JobService) save(ctx context.Context) {
	if err := s.persister.Save(ctx); err != nil {
		s.logger.Warn("snapshot save failed", zap.Error(err))
	}
}

func urlFileName(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 && i+1 < len(trimmed) {
		return trimmed[i+1:]
	}
	return "Archivo externo"
}
