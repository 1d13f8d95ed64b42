package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AutosaveJobName is the name of the periodic snapshot autosave job
const AutosaveJobName = "snapshot_autosave"

// SnapshotSaver writes the current data set to the snapshot file. The
// persister already skips concurrent saves, so a slow write never stacks.
type SnapshotSaver interface {
	Save(ctx context.Context) error
}

// AutosaveJob periodically persists the in-memory data set. It is a safety
// net: every mutation saves on its own, the autosave only covers a write
// that failed at mutation time.
type AutosaveJob struct {
	saver   SnapshotSaver
	logger  *zap.Logger
	timeout time.Duration
}

// NewAutosaveJob creates the autosave job. The timeout bounds a single save.
func NewAutosaveJob(saver SnapshotSaver, logger *zap.Logger, timeout time.Duration) *AutosaveJob {
	return &AutosaveJob{
		saver:   saver,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one autosave. Called by the scheduler.
func (j *AutosaveJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	if err := j.saver.Save(ctx); err != nil {
		j.logger.Error("snapshot autosave failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Debug("snapshot autosave completed",
		zap.Duration("duration", time.Since(start)))
}

// RegisterAutosaveJob wires the autosave job into the scheduler.
func RegisterAutosaveJob(scheduler *Scheduler, saver SnapshotSaver, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewAutosaveJob(saver, logger, timeout)
	return scheduler.AddJob(AutosaveJobName, cronExpr, job.Run)
}
