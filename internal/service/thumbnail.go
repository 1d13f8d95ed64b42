package service

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

var youTubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/live/([^&\n?#]+)`),
}

func isYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// extractYouTubeID pulls the video id out of the common YouTube URL shapes
func extractYouTubeID(url string) string {
	for _, p := range youTubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// ThumbnailFetcher resolves preview thumbnails for externally linked files
// in the background. At most one task runs per job: scheduling a new task
// for a job cancels the previous one, and a result is dropped when the
// file it was fetched for is no longer on the job.
type ThumbnailFetcher struct {
	store     *store.Store
	persister *snapshot.Persister
	client    *http.Client
	logger    *zap.Logger

	mu    sync.Mutex
	tasks map[int64]context.CancelFunc
}

// NewThumbnailFetcher creates a fetcher with the given request timeout
func NewThumbnailFetcher(st *store.Store, persister *snapshot.Persister, timeout time.Duration, logger *zap.Logger) *ThumbnailFetcher {
	return &ThumbnailFetcher{
		store:     st,
		persister: persister,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
		tasks:     make(map[int64]context.CancelFunc),
	}
}

// Schedule starts a background resolution for one file of one job,
// cancelling any resolution still running for the same job.
func (f *ThumbnailFetcher) Schedule(jobID, fileID int64, url string) {
	ctx, cancel := context.WithCancel(context.Background())

	f.mu.Lock()
	if prev, ok := f.tasks[jobID]; ok {
		prev()
	}
	f.tasks[jobID] = cancel
	f.mu.Unlock()

	go f.run(ctx, cancel, jobID, fileID, url)
}

// Cancel stops the task running for the job, if any
func (f *ThumbnailFetcher) Cancel(jobID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cancel, ok := f.tasks[jobID]; ok {
		cancel()
		delete(f.tasks, jobID)
	}
}

// Close cancels every running task
func (f *ThumbnailFetcher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, cancel := range f.tasks {
		cancel()
		delete(f.tasks, id)
	}
}

func (f *ThumbnailFetcher) run(ctx context.Context, cancel context.CancelFunc, jobID, fileID int64, url string) {
	defer func() {
		cancel()
		f.mu.Lock()
		delete(f.tasks, jobID)
		f.mu.Unlock()
	}()

	thumbnail := f.resolve(ctx, url)
	if thumbnail == "" || ctx.Err() != nil {
		return
	}

	var applied bool
	_, err := f.store.UpdateJob(jobID, func(j *domain.Job) {
		for i := range j.Files {
			if j.Files[i].ID == fileID {
				j.Files[i].Thumbnail = thumbnail
				applied = true
				return
			}
		}
	})
	if err != nil || !applied {
		// job or file vanished while we were fetching
		return
	}

	if err := f.persister.Save(ctx); err != nil {
		f.logger.Warn("snapshot save failed", zap.Error(err))
	}
	f.logger.Debug("thumbnail resolved",
		zap.Int64("jobId", jobID),
		zap.Int64("fileId", fileID))
}

// resolve fetches the URL's headers and returns the URL itself as its own
// thumbnail when the target turns out to be an image. Anything else has no
// server-derivable preview.
func (f *ThumbnailFetcher) resolve(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return ""
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return url
	}
	return ""
}
