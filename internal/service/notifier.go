package service

import "go.uber.org/zap"

// Notifier is the user-feedback sink: match confirmations, scheduling
// confirmations, and validation complaints end up here. Delivery is
// fire-and-forget; implementations must not fail the calls they decorate.
type Notifier interface {
	Success(title, detail string)
	Warning(title, detail string)
}

// LogNotifier reports notifications through the application log. It is the
// default sink when no interactive surface is attached.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(title, detail string) {
	n.logger.Info("notification", zap.String("title", title), zap.String("detail", detail))
}

func (n *LogNotifier) Warning(title, detail string) {
	n.logger.Warn("notification", zap.String("title", title), zap.String("detail", detail))
}
