package quizai

import "go.uber.org/zap"

// NewLogger builds the process logger. Development mode uses console
// encoding at debug level.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
