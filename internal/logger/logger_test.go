package logger

import (
	"testing"

	"github.com/dparity/draid/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Levels(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"Debug", config.LogLevelDebug, logrus.DebugLevel},
		{"Info", config.LogLevelInfo, logrus.InfoLevel},
		{"Warning", config.LogLevelWarning, logrus.WarnLevel},
		{"Error", config.LogLevelError, logrus.ErrorLevel},
		{"EmptyDefaultsToInfo", "", logrus.InfoLevel},
		{"UnrecognizedFallsBackToParse", "panic", logrus.PanicLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, InitLogger(tc.level))
			assert.Equal(t, tc.want, logrus.GetLevel())
		})
	}
}

func TestInitLogger_GarbageFallsBackToInfo(t *testing.T) {
	require.NoError(t, InitLogger("not-a-real-level"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
