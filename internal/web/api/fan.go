package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/mcrhelper/mcrserver/internal/scorer"
	"github.com/mcrhelper/mcrserver/protocol"
	log "github.com/sirupsen/logrus"
)

// HeaderRequestID 请求ID, 没有时由web层生成
const HeaderRequestID = "X-Request-Id"

var logger = log.WithField("component", "api")

type fanService struct {
	scorer *scorer.Scorer
}

// MakeFanService 算番相关接口
func MakeFanService(s *scorer.Scorer) http.Handler {
	svc := &fanService{scorer: s}

	router := mux.NewRouter()
	router.Handle("/v1/fan", nex.Handler(svc.fan)).Methods("POST")         //算番
	router.Handle("/v1/waiting", nex.Handler(svc.waiting)).Methods("POST") //听牌
	router.Handle("/v1/discard", nex.Handler(svc.discard)).Methods("POST") //打牌分析
	router.Handle("/v1/fans", nex.Handler(rules)).Methods("GET")           //番种表
	return router
}

func (svc *fanService) fan(r *http.Request, req *protocol.FanRequest) (*protocol.FanResponse, error) {
	resp, err := svc.scorer.Score(r.Context(), req)
	if err != nil {
		logger.WithField("request", r.Header.Get(HeaderRequestID)).Debugf("fan: %v", err)
		return nil, err
	}
	return resp, nil
}

func (svc *fanService) waiting(r *http.Request, req *protocol.WaitingRequest) (*protocol.WaitingResponse, error) {
	resp, err := svc.scorer.Waiting(r.Context(), req)
	if err != nil {
		logger.WithField("request", r.Header.Get(HeaderRequestID)).Debugf("waiting: %v", err)
		return nil, err
	}
	return resp, nil
}

func (svc *fanService) discard(r *http.Request, req *protocol.DiscardRequest) (*protocol.DiscardResponse, error) {
	resp, err := svc.scorer.Discard(r.Context(), req)
	if err != nil {
		logger.WithField("request", r.Header.Get(HeaderRequestID)).Debugf("discard: %v", err)
		return nil, err
	}
	return resp, nil
}

func rules() (*protocol.FanRulesResponse, error) {
	return &protocol.FanRulesResponse{Rules: scorer.Rules()}, nil
}
