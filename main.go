package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/mcrhelper/mcrserver/internal/cache"
	"github.com/mcrhelper/mcrserver/internal/game"
	"github.com/mcrhelper/mcrserver/internal/hooks"
	"github.com/mcrhelper/mcrserver/internal/notation"
	"github.com/mcrhelper/mcrserver/internal/scorer"
	"github.com/mcrhelper/mcrserver/internal/web"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "mcr server"
	app.Author = "mcrhelper"
	app.Version = "0.1.0"
	app.Usage = "MCR mahjong fan calculator server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newScorer() (*scorer.Scorer, func(), error) {
	prevalent, err := notation.ParseWind(viper.GetString("scorer.default_prevalent"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "scorer.default_prevalent")
	}
	seat, err := notation.ParseWind(viper.GetString("scorer.default_seat"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "scorer.default_seat")
	}

	c, err := cache.New(viper.GetString("cache.driver"),
		cache.Size(viper.GetInt("cache.size")),
		cache.TTL(viper.GetDuration("cache.ttl")),
		cache.Redis(viper.GetString("redis.addr"), viper.GetString("redis.password"), viper.GetInt("redis.db")))
	if err != nil {
		return nil, nil, err
	}

	closer := func() {
		if err := c.Close(); err != nil {
			log.Errorf("close cache: %v", err)
		}
	}
	return scorer.New(scorer.WithCache(c), scorer.WithDefaultWinds(prevalent, seat)), closer, nil
}

func serve(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	viper.SetDefault("scorer.default_prevalent", "E")
	viper.SetDefault("scorer.default_seat", "E")
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", c.String("config"))
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook())
	}

	if c.Bool("cpuprofile") {
		filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
		if err != nil {
			return err
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	s, closer, err := newScorer()
	if err != nil {
		return err
	}
	defer closer()

	wg := sync.WaitGroup{}
	wg.Add(1)

	// 开启游戏服
	go game.Startup(s)
	// 开启web服务器, 收到信号后退出
	go func() { defer wg.Done(); web.Startup(s) }()

	wg.Wait()
	return nil
}
