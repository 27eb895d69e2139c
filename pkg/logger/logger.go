package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as the zap global so
// packages can use zap.L() without threading the instance around.
func NewLogger() (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)

	if os.Getenv("ENV") == "release" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
