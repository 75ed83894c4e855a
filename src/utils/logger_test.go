package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("test")
	require.Same(t, logger, GetLogger("test"))

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.colorful = false

	logger.Infof("sorted %d items", 3)
	require.Contains(t, buf.String(), "test[")
	require.Contains(t, buf.String(), "<INFO>: sorted 3 items\n")

	buf.Reset()
	SetLogLevel(logrus.WarnLevel)
	defer SetLogLevel(logrus.InfoLevel)
	logger.Info("hidden")
	require.Empty(t, buf.String())
	require.Equal(t, logrus.WarnLevel, GetLogger("created-later").GetLevel())

	logger.WithField("alg", "merge").Warn("slow")
	require.Contains(t, buf.String(), "<WARNING>: slow map[alg:merge]")
}

func TestDisableLogColor(t *testing.T) {
	logger := GetLogger("color")
	logger.colorful = true
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Error("boom")
	require.Contains(t, buf.String(), "\033[1;31mERROR\033[0m")

	buf.Reset()
	DisableLogColor()
	logger.Error("boom")
	require.Contains(t, buf.String(), "<ERROR>: boom")
}
