package reminder

import "go.uber.org/zap"

// LogNotifier writes reminders to the log. It stands in for the OS
// notification surface, which belongs to the host platform.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Notify(title, message string) {
	n.Logger.Info("reminder", zap.String("title", title), zap.String("message", message))
}
