package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)

	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l.SetLevel(applog.DebugLevel)

	return Logger{Logger: l}, buf
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lvl  log.Lvl
		want applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}

	for _, tt := range tests {
		l, _ := newTestLogger()

		l.SetLevel(tt.lvl)
		assert.Equal(t, tt.want, l.Logger.Level)
		assert.Equal(t, tt.lvl, l.Level())
	}

	t.Run("OFF는 무시된다", func(t *testing.T) {
		t.Parallel()

		l, _ := newTestLogger()
		l.SetLevel(log.OFF)
		assert.Equal(t, applog.DebugLevel, l.Logger.Level)
	})

	t.Run("대응하는 레벨이 없으면 OFF", func(t *testing.T) {
		t.Parallel()

		l, _ := newTestLogger()
		l.Logger.SetLevel(applog.TraceLevel)
		assert.Equal(t, log.OFF, l.Level())
	})
}

func TestLogger_Output(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger()
	assert.Equal(t, buf, l.Output())

	l.Infof("서버 시작: %d", 8080)
	l.Warnj(log.JSON{"port": 8080})
	l.Debug("디버그")

	out := buf.String()
	assert.Contains(t, out, "level=info msg=\"서버 시작: 8080\"")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "port=8080")
	assert.Contains(t, out, "level=debug msg=\"디버그\"")

	assert.Empty(t, l.Prefix())
	assert.NotPanics(t, func() {
		l.SetPrefix("echo")
		l.SetHeader("${time_rfc3339}")
	})
}
