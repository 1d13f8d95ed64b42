package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
)

// Notifier receives user-facing notifications the services emit, e.g. when
// status propagation changes a client. The UI layer plugs in its own
// implementation; the server defaults to logging.
type Notifier interface {
	ClientStatusChanged(ctx context.Context, client domain.Client, previous domain.Status)
}

// LogNotifier writes notifications to the structured log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ClientStatusChanged(ctx context.Context, client domain.Client, previous domain.Status) {
	n.logger.Info("client status updated",
		zap.Int64("clientId", client.ID),
		zap.String("client", client.Name),
		zap.String("previous", string(previous)),
		zap.String("status", string(client.Status)))
}
