package command

import (
	"io"

	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// testLogger keeps handler log output out of test output.
func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard, Level: logger.LevelError})
}
