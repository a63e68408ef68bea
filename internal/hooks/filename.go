// Package hooks logrus钩子
package hooks

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook 在日志中记录调用位置
type Hook struct {
	Field  string
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	entry.Data[hook.Field] = findCaller()
	return nil
}

// NewHook 默认对所有级别生效
func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  "source",
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}
	return &hook
}

func findCaller() string {
	for skip := 3; skip < 16; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if !strings.Contains(file, "sirupsen/logrus") && !strings.HasSuffix(file, "hooks/filename.go") {
			return fmt.Sprintf("%s:%d", shorten(file), line)
		}
	}
	return ""
}

// shorten 只保留最后两级路径
func shorten(file string) string {
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= 2 {
				return file[i+1:]
			}
		}
	}
	return file
}
