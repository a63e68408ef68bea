// Package scorer 把牌型字符串请求转换成算番/听牌/打牌分析的结果
package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mcrhelper/mcrserver/internal/cache"
	"github.com/mcrhelper/mcrserver/internal/game/fan"
	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/internal/game/shanten"
	"github.com/mcrhelper/mcrserver/internal/notation"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
	"github.com/mcrhelper/mcrserver/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "scorer")

type Scorer struct {
	cache     cache.Cache
	prevalent mahjong.Wind
	seat      mahjong.Wind
}

type Option func(*Scorer)

// WithCache 缓存算番结果
func WithCache(c cache.Cache) Option {
	return func(s *Scorer) {
		s.cache = c
	}
}

// WithDefaultWinds 请求未指定风位时使用的圈风与门风
func WithDefaultWinds(prevalent, seat mahjong.Wind) Option {
	return func(s *Scorer) {
		s.prevalent = prevalent
		s.seat = seat
	}
}

func New(opts ...Option) *Scorer {
	s := &Scorer{prevalent: mahjong.WindEast, seat: mahjong.WindEast}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// situation 牌面以外的和牌条件
type situation struct {
	flag      mahjong.WinFlag
	prevalent mahjong.Wind
	seat      mahjong.Wind
	flowers   int
}

func (s *Scorer) situation(req *protocol.HandRequest) (*situation, error) {
	flag, err := notation.ParseWinFlag(req.Flags)
	if err != nil {
		return nil, errors.Wrapf(err, "flags %q", req.Flags)
	}

	for _, f := range []struct {
		set  bool
		flag mahjong.WinFlag
	}{
		{req.SelfDrawn, mahjong.WinSelfDrawn},
		{req.LastTile, mahjong.WinLastTile},
		{req.KongInvolved, mahjong.WinKongInvolved},
		{req.WallLast, mahjong.WinWallLast},
		{req.Initial, mahjong.WinInitial},
	} {
		if f.set {
			flag |= f.flag
		}
	}

	st := &situation{flag: flag, prevalent: s.prevalent, seat: s.seat, flowers: req.FlowerCount}
	if req.PrevalentWind != "" {
		if st.prevalent, err = notation.ParseWind(req.PrevalentWind); err != nil {
			return nil, errors.Wrapf(err, "prevalent wind %q", req.PrevalentWind)
		}
	}
	if req.SeatWind != "" {
		if st.seat, err = notation.ParseWind(req.SeatWind); err != nil {
			return nil, errors.Wrapf(err, "seat wind %q", req.SeatWind)
		}
	}
	if st.flowers < 0 || st.flowers > 8 {
		return nil, errors.Wrapf(errutil.ErrIllegalParameter, "flower count %d", st.flowers)
	}
	return st, nil
}

func (st *situation) param(hand *mahjong.Hand, win mahjong.Tile) *fan.Param {
	return &fan.Param{
		Hand:          *hand,
		WinTile:       win,
		FlowerCount:   st.flowers,
		Flag:          st.flag,
		PrevalentWind: st.prevalent,
		SeatWind:      st.seat,
	}
}

// cacheKey 立牌排序后的规范牌型加上和牌条件
func cacheKey(hand *mahjong.Hand, win mahjong.Tile, st *situation) string {
	standing := append([]mahjong.Tile(nil), hand.StandingTiles...)
	sort.Slice(standing, func(i, j int) bool { return standing[i] < standing[j] })
	sorted := &mahjong.Hand{FixedPacks: hand.FixedPacks, StandingTiles: standing}
	return fmt.Sprintf("fan:%s|%d|%s%s|%d", notation.FormatHand(sorted, win), st.flag, st.prevalent, st.seat, st.flowers)
}

// Score 算番
func (s *Scorer) Score(ctx context.Context, req *protocol.FanRequest) (*protocol.FanResponse, error) {
	hand, win, err := notation.ParseHand(req.Hand)
	if err != nil {
		return nil, errors.Wrapf(err, "parse hand %q", req.Hand)
	}
	if win == 0 {
		if req.WinTile == "" {
			return nil, errors.Wrapf(errutil.ErrIllegalWinTile, "hand %q has no win tile", req.Hand)
		}
		if win, err = notation.ParseTile(req.WinTile); err != nil {
			return nil, errors.Wrapf(errutil.ErrIllegalWinTile, "win tile %q", req.WinTile)
		}
	}

	st, err := s.situation(&req.HandRequest)
	if err != nil {
		return nil, err
	}

	key := cacheKey(hand, win, st)
	if resp, ok := s.cached(ctx, key); ok {
		return resp, nil
	}

	total, table, err := fan.Calculate(st.param(hand, win))
	if err != nil {
		return nil, errors.Wrapf(err, "calculate %q", req.Hand)
	}

	resp := &protocol.FanResponse{
		Hand:    notation.FormatHand(hand, win),
		WinTile: win.String(),
		Total:   total,
		Fans:    FanItems(table),
	}
	s.store(ctx, key, resp)

	logger.Debugf("hand=%s total=%d fans=%v", resp.Hand, total, table.Fans())
	return resp, nil
}

func (s *Scorer) cached(ctx context.Context, key string) (*protocol.FanResponse, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Cause(err) != cache.ErrMiss {
			logger.Warnf("cache get %s: %v", key, err)
		}
		return nil, false
	}

	resp := &protocol.FanResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		logger.Warnf("cache decode %s: %v", key, err)
		return nil, false
	}
	return resp, true
}

func (s *Scorer) store(ctx context.Context, key string, resp *protocol.FanResponse) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logger.Warnf("cache encode %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		logger.Warnf("cache set %s: %v", key, err)
	}
}

// FanItems 番种表转成明细列表
func FanItems(table *fan.Table) []protocol.FanItem {
	ids := table.Fans()
	items := make([]protocol.FanItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, protocol.FanItem{
			ID:          int(id),
			Name:        id.Name(),
			EnglishName: id.EnglishName(),
			Value:       id.Value(),
			Count:       table[id],
		})
	}
	return items
}

// Waiting 听牌及每张听牌的番数
func (s *Scorer) Waiting(ctx context.Context, req *protocol.WaitingRequest) (*protocol.WaitingResponse, error) {
	hand, serving, err := notation.ParseHand(req.Hand)
	if err != nil {
		return nil, errors.Wrapf(err, "parse hand %q", req.Hand)
	}
	if serving != 0 || !hand.Validate() {
		return nil, errors.Wrapf(errutil.ErrWrongTilesCount, "hand %q is not a waiting state", req.Hand)
	}

	st, err := s.situation(&req.HandRequest)
	if err != nil {
		return nil, err
	}

	resp := &protocol.WaitingResponse{Hand: notation.FormatHand(hand, 0), Waits: []protocol.Wait{}}

	var useful shanten.Useful
	if !shanten.IsWaiting(hand, &useful) {
		return resp, nil
	}

	for _, t := range useful.Tiles() {
		total, _, err := fan.Calculate(st.param(hand, t))
		if err != nil {
			// 第五张之类和不了的牌
			logger.Debugf("hand=%s wait=%s: %v", resp.Hand, t, err)
			continue
		}
		resp.Waits = append(resp.Waits, protocol.Wait{Tile: t.String(), Fan: total})
	}
	resp.Waiting = len(resp.Waits) > 0
	return resp, nil
}

// Discard 打牌分析
func (s *Scorer) Discard(ctx context.Context, req *protocol.DiscardRequest) (*protocol.DiscardResponse, error) {
	hand, serving, err := notation.ParseHand(req.Hand)
	if err != nil {
		return nil, errors.Wrapf(err, "parse hand %q", req.Hand)
	}
	if !hand.Validate() {
		return nil, errors.Wrapf(errutil.ErrWrongTilesCount, "hand %q", req.Hand)
	}

	forms := shanten.Form(req.Forms)
	if forms == 0 {
		forms = shanten.FormAll
	}

	visible := hand.Table()
	if serving != 0 {
		visible[serving]++
	}

	resp := &protocol.DiscardResponse{Hand: notation.FormatHand(hand, serving), Items: []protocol.DiscardItem{}}
	shanten.EnumDiscardTile(hand, serving, forms, func(r *shanten.DiscardResult) bool {
		item := protocol.DiscardItem{
			Form:    r.Form.String(),
			Shanten: r.Shanten,
			Useful:  []string{},
		}
		if r.Discard != 0 {
			item.Discard = r.Discard.String()
		}
		for _, t := range r.Useful.Tiles() {
			item.Useful = append(item.Useful, t.String())
			item.Count += 4 - visible[t]
		}
		resp.Items = append(resp.Items, item)
		return true
	})

	sort.SliceStable(resp.Items, func(i, j int) bool {
		a, b := resp.Items[i], resp.Items[j]
		if a.Shanten != b.Shanten {
			return a.Shanten < b.Shanten
		}
		return a.Count > b.Count
	})
	return resp, nil
}

// Rules 番种表
func Rules() []protocol.FanRule {
	rules := make([]protocol.FanRule, 0, fan.Count-1)
	for id := fan.None + 1; id < fan.Count; id++ {
		rules = append(rules, protocol.FanRule{
			ID:          int(id),
			Name:        id.Name(),
			EnglishName: id.EnglishName(),
			Value:       id.Value(),
		})
	}
	return rules
}

// ErrorResponse 把错误转换成带错误码的响应
func ErrorResponse(err error) *protocol.ErrorResponse {
	return &protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: strings.TrimSpace(err.Error()),
	}
}
