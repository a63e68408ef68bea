package game

import (
	"context"

	"github.com/lonng/nano/component"
	"github.com/lonng/nano/session"
	"github.com/mcrhelper/mcrserver/internal/async"
	"github.com/mcrhelper/mcrserver/internal/scorer"
	"github.com/mcrhelper/mcrserver/protocol"
)

// responder 按消息ID回复客户端
type responder interface {
	ResponseMID(mid uint64, v interface{}) error
}

func respond(s responder, mid uint64, resp interface{}, err error) {
	if err != nil {
		resp = scorer.ErrorResponse(err)
	}
	if e := s.ResponseMID(mid, resp); e != nil {
		logger.Errorf("response mid=%d: %v", mid, e)
	}
}

// Calculator 算番组件, 客户端路由为 Calculator.Fan 等
type Calculator struct {
	component.Base
	scorer *scorer.Scorer
}

func NewCalculator(s *scorer.Scorer) *Calculator {
	return &Calculator{scorer: s}
}

func (c *Calculator) Fan(s *session.Session, req *protocol.FanRequest) error {
	mid := s.LastMid()
	logger.Debugf("算番, UID=%d, Hand=%s", s.UID(), req.Hand)
	async.Run(func() {
		resp, err := c.scorer.Score(context.Background(), req)
		respond(s, mid, resp, err)
	})
	return nil
}

func (c *Calculator) Waiting(s *session.Session, req *protocol.WaitingRequest) error {
	mid := s.LastMid()
	logger.Debugf("听牌, UID=%d, Hand=%s", s.UID(), req.Hand)
	async.Run(func() {
		resp, err := c.scorer.Waiting(context.Background(), req)
		respond(s, mid, resp, err)
	})
	return nil
}

func (c *Calculator) Discard(s *session.Session, req *protocol.DiscardRequest) error {
	mid := s.LastMid()
	logger.Debugf("打牌分析, UID=%d, Hand=%s", s.UID(), req.Hand)
	async.Run(func() {
		resp, err := c.scorer.Discard(context.Background(), req)
		respond(s, mid, resp, err)
	})
	return nil
}

func (c *Calculator) Fans(s *session.Session, _ *protocol.EmptyRequest) error {
	return s.Response(&protocol.FanRulesResponse{Rules: scorer.Rules()})
}
