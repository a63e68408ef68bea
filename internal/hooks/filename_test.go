package hooks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestShorten(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{"/root/module/internal/web/web.go", "web/web.go"},
		{"web.go", "web.go"},
		{"/main.go", "/main.go"},
	}

	for _, c := range cases {
		if got := shorten(c.file); got != c.want {
			t.Fatalf("%s: want %s, got %s", c.file, c.want, got)
		}
	}
}

func TestHook(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.Out = buf
	logger.Formatter = &logrus.TextFormatter{DisableColors: true}
	logger.AddHook(NewHook())

	logger.Info("hello")
	if !strings.Contains(buf.String(), "hooks/filename_test.go:") {
		t.Fatalf("missing source field: %s", buf.String())
	}
}
