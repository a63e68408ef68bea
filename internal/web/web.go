package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lonng/nex"
	"github.com/mcrhelper/mcrserver/internal/scorer"
	"github.com/mcrhelper/mcrserver/internal/web/api"
	"github.com/mcrhelper/mcrserver/internal/whitelist"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "http")

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	id := r.Header.Get(api.HeaderRequestID)
	if id == "" {
		id = uuid.New()
		r.Header.Set(api.HeaderRequestID, id)
	}
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Request=%s Method=%s, RemoteAddr=%s URL=%s", id, r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func ipFilter(list *whitelist.List) nex.BeforeFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		if !list.VerifyIP(r.RemoteAddr) {
			logger.Warnf("RemoteAddr=%s not in white list", r.RemoteAddr)
			return ctx, errutil.ErrPermissionDenied
		}
		return ctx, nil
	}
}

func encodeError(err error) interface{} {
	return scorer.ErrorResponse(err)
}

func accessControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, "+api.HeaderRequestID)
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	})
}

func startupService(s *scorer.Scorer, list *whitelist.List) http.Handler {
	mux := http.NewServeMux()

	nex.Before(logRequest, ipFilter(list))
	nex.SetErrorEncoder(encodeError)

	fan := api.MakeFanService(s)
	mux.Handle("/v1/", fan)
	mux.Handle("/ping", nex.Handler(pongHandler))

	return accessControl(mux)
}

// Startup 启动http服务, 收到退出信号后返回
func Startup(s *scorer.Scorer) {
	var (
		addr      = viper.GetString("webserver.addr")
		cert      = viper.GetString("webserver.certificates.cert")
		key       = viper.GetString("webserver.certificates.key")
		enableSSL = viper.GetBool("webserver.enable_ssl")
	)

	list, err := whitelist.New(viper.GetStringSlice("webserver.whitelist"))
	if err != nil {
		logger.Fatalf("illegal white list: %v", err)
	}

	logger.Infof("Web service addr: %s(enable ssl: %v)", addr, enableSSL)
	go func() {
		mux := startupService(s, list)
		if enableSSL {
			log.Fatal(http.ListenAndServeTLS(addr, cert, key, mux))
		} else {
			log.Fatal(http.ListenAndServe(addr, mux))
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	s1 := <-sg
	logger.Infof("got signal: %s", s1.String())
}
