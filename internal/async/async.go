// Package async 在独立goroutine中执行任务, 任务panic只记录日志
package async

import log "github.com/sirupsen/logrus"

var logger = log.WithField("component", "async")

func pcall(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("pcall: Error=%v", err)
		}
	}()

	fn()
}

// Run 异步执行fn
func Run(fn func()) {
	go pcall(fn)
}
