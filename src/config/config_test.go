package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDefaultConfig(t *testing.T) {
	c := NewDefaultConfig()
	if c.ServiceAddr != DefaultServiceAddr {
		t.Fatalf("ServiceAddr should be %s, not %s", DefaultServiceAddr, c.ServiceAddr)
	}
	if c.Steps != 100 {
		t.Fatalf("Steps should be 100, not %d", c.Steps)
	}
	if c.StepInterval.Milliseconds() != 50 {
		t.Fatalf("StepInterval should be 50ms, not %v", c.StepInterval)
	}
}

func TestLogLevel(t *testing.T) {
	for _, c := range []struct {
		in  string
		out logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.DebugLevel},
	} {
		if got := LogLevel(c.in); got != c.out {
			t.Errorf("LogLevel(%s) => %v != %v", c.in, got, c.out)
		}
	}
}

func TestLoggerPrefix(t *testing.T) {
	c := NewTestConfig(t, logrus.DebugLevel)
	entry := c.Logger()
	if entry.Data["prefix"] != "fairshow" {
		t.Fatalf("prefix should be fairshow, not %v", entry.Data["prefix"])
	}
}

func TestLogDirHook(t *testing.T) {
	dir, err := ioutil.TempDir("", "fairshow")
	if err != nil {
		t.Fatalf("err: %v ", err)
	}
	defer os.RemoveAll(dir)

	c := NewDefaultConfig()
	c.LogLevel = "debug"
	c.LogDir = filepath.Join(dir, "logs")

	entry := c.Logger()
	entry.Logger.Out = ioutil.Discard
	entry.Info("hello")

	data, err := ioutil.ReadFile(filepath.Join(c.LogDir, DefaultInfoLogFile))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("info log file should not be empty")
	}
}
