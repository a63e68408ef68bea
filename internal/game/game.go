// Package game 通过nano长连接提供算番服务
package game

import (
	"fmt"
	"time"

	"github.com/lonng/nano"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/serialize/json"
	"github.com/mcrhelper/mcrserver/internal/scorer"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "game")

// Startup 初始化游戏服务器
func Startup(s *scorer.Scorer) {
	heartbeat := viper.GetInt("core.heartbeat")
	if heartbeat < 5 {
		heartbeat = 5
	}

	logger.Infof("当前心跳时间间隔: %d秒", heartbeat)
	logger.Info("game service startup")

	comps := &component.Components{}
	comps.Register(NewCalculator(s))

	addr := fmt.Sprintf(":%d", viper.GetInt("game-server.port"))
	nano.Listen(addr,
		nano.WithHeartbeatInterval(time.Duration(heartbeat)*time.Second),
		nano.WithLogger(log.WithField("component", "nano")),
		nano.WithSerializer(json.NewSerializer()),
		nano.WithComponents(comps),
	)
}
