package scorer

import (
	"context"
	"reflect"
	"testing"

	"github.com/mcrhelper/mcrserver/internal/cache"
	"github.com/mcrhelper/mcrserver/internal/game/fan"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
	"github.com/mcrhelper/mcrserver/protocol"
)

func hasFan(items []protocol.FanItem, id fan.ID) bool {
	for _, it := range items {
		if it.ID == int(id) {
			return true
		}
	}
	return false
}

func TestScore(t *testing.T) {
	c, err := cache.New(cache.DriverMemory)
	if err != nil {
		t.Fatal(err)
	}
	s := New(WithCache(c))
	ctx := context.Background()

	req := &protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m5m", FlowerCount: 2}}
	resp, err := s.Score(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total < 90 || !hasFan(resp.Fans, fan.NineGates) || !hasFan(resp.Fans, fan.FlowerTiles) {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.WinTile != "5m" {
		t.Fatalf("want win tile 5m, got %s", resp.WinTile)
	}

	again, err := s.Score(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resp, again) {
		t.Fatalf("cached response differs: %+v != %+v", resp, again)
	}
}

func TestScore_WinTile(t *testing.T) {
	s := New()
	ctx := context.Background()

	req := &protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m"}}
	if _, err := s.Score(ctx, req); errutil.Code(err) != errutil.Code(errutil.ErrIllegalWinTile) {
		t.Fatalf("want illegal win tile, got %v", err)
	}

	req.WinTile = "9m"
	resp, err := s.Score(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if !hasFan(resp.Fans, fan.NineGates) {
		t.Fatalf("want nine gates, got %+v", resp.Fans)
	}
}

func TestScore_Errors(t *testing.T) {
	cases := []struct {
		req *protocol.FanRequest
		err error
	}{
		{&protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999x5m"}}, errutil.ErrIllegalCharacter},
		{&protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m5m", SeatWind: "X"}}, errutil.ErrIllegalWind},
		{&protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m5m", Flags: "天和"}}, errutil.ErrIllegalWinFlag},
		{&protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m5m", FlowerCount: 9}}, errutil.ErrIllegalParameter},
		{&protocol.FanRequest{HandRequest: protocol.HandRequest{Hand: "19m19s19pESWNCFP2m"}}, errutil.ErrNotWin},
	}

	s := New()
	for _, c := range cases {
		_, err := s.Score(context.Background(), c.req)
		if errutil.Code(err) != errutil.Code(c.err) {
			t.Fatalf("%q: want %v, got %v", c.req.Hand, c.err, err)
		}
		if resp := ErrorResponse(err); resp.Code != errutil.Code(c.err) || resp.Error == "" {
			t.Fatalf("%q: bad error response %+v", c.req.Hand, resp)
		}
	}
}

func TestWaiting(t *testing.T) {
	s := New()
	ctx := context.Background()

	resp, err := s.Waiting(ctx, &protocol.WaitingRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m"}})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Waiting || len(resp.Waits) != 9 {
		t.Fatalf("nine gates should wait on 9 tiles: %+v", resp)
	}
	for _, w := range resp.Waits {
		if w.Fan < 88 {
			t.Fatalf("%s: want at least 88, got %d", w.Tile, w.Fan)
		}
	}

	resp, err = s.Waiting(ctx, &protocol.WaitingRequest{HandRequest: protocol.HandRequest{Hand: "1357m1357s1357pE"}})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Waiting || len(resp.Waits) != 0 {
		t.Fatalf("unexpected waits %+v", resp)
	}

	_, err = s.Waiting(ctx, &protocol.WaitingRequest{HandRequest: protocol.HandRequest{Hand: "1112345678999m5m"}})
	if errutil.Code(err) != errutil.Code(errutil.ErrWrongTilesCount) {
		t.Fatalf("want wrong tiles count, got %v", err)
	}
}

func TestDiscard(t *testing.T) {
	resp, err := New().Discard(context.Background(), &protocol.DiscardRequest{Hand: "1112345678999m5m", Forms: 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("no discard items")
	}
	for _, it := range resp.Items {
		if it.Form != "regular" || it.Shanten != -1 {
			t.Fatalf("unexpected item %+v", it)
		}
	}
}

func TestRules(t *testing.T) {
	rules := Rules()
	if len(rules) != int(fan.Count)-1 {
		t.Fatalf("want %d rules, got %d", fan.Count-1, len(rules))
	}
	if rules[0].ID != int(fan.BigFourWinds) || rules[0].Value != 88 {
		t.Fatalf("unexpected first rule %+v", rules[0])
	}
}
