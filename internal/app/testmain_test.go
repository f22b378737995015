package app

import (
	"os"
	"testing"

	"github.com/zhubert/caesar/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of /tmp/caesar-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
