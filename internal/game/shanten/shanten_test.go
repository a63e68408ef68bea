package shanten

import (
	"testing"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/internal/notation"
)

func mustTiles(t testing.TB, s string) []mahjong.Tile {
	tiles, err := notation.ParseTiles(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tiles
}

func sameTiles(a, b []mahjong.Tile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShanten(t *testing.T) {
	type calc func([]mahjong.Tile, *Useful) int

	cases := []struct {
		name    string
		fn      calc
		tiles   string
		shanten int
		useful  string
	}{
		{"regular shanpon", RegularShanten, "123m456p789sEESS", 0, "ES"},
		{"regular nine gates", RegularShanten, "1112345678999m", 0, "123456789m"},
		{"regular single", RegularShanten, "E", 0, "E"},
		{"regular four", RegularShanten, "1234m", 0, "14m"},
		{"regular wrong count", RegularShanten, "1234m5s", Infinite, ""},
		{"seven pairs tenpai", SevenPairsShanten, "1122m3344s5566pE", 0, "E"},
		{"seven pairs one away", SevenPairsShanten, "1122m3344s55pEWN", 1, "EWN"},
		{"seven pairs quad", SevenPairsShanten, "1111m2233s4455pE", 2, ""},
		{"seven pairs wrong count", SevenPairsShanten, "1122m3344s", Infinite, ""},
		{"orphans no pair", ThirteenOrphansShanten, "19m19s19pESWNCFP", 0, "19m19s19pESWNCFP"},
		{"orphans with pair", ThirteenOrphansShanten, "19m19s19pESWNCFF", 0, "P"},
		{"orphans far", ThirteenOrphansShanten, "123m19s19pESWNCF", 2, "19m19s19pESWNCFP"},
		{"honors and knitted", HonorsAndKnittedTilesShanten, "147m258s369pESWN", 0, "CFP"},
		{"knitted straight", KnittedStraightShanten, "147m258s369pEEEN", 0, "N"},
		{"knitted straight missing", KnittedStraightShanten, "147m258s36pEEEN9m", 1, ""},
	}

	for _, c := range cases {
		var useful Useful
		tiles := mustTiles(t, c.tiles)
		if s := c.fn(tiles, &useful); s != c.shanten {
			t.Fatalf("%s: expect shanten %d, got %d", c.name, c.shanten, s)
		}
		if c.useful == "" {
			continue
		}
		if expect := mahjong.MapTiles(mustTiles(t, c.useful)...).Tiles(34); !sameTiles(useful.Tiles(), expect) {
			t.Fatalf("%s: expect useful %v, got %v", c.name, expect, useful.Tiles())
		}
	}
}

func TestRegularShanten_Useful(t *testing.T) {
	var useful Useful
	tiles := mustTiles(t, "123m456p789s13sEW")
	if s := RegularShanten(tiles, &useful); s != 1 {
		t.Fatalf("expect 1, got %d", s)
	}
	for _, tile := range []mahjong.Tile{mahjong.Tile2s, mahjong.TileE, mahjong.TileW} {
		if !useful[tile] {
			t.Fatalf("%v should be useful", tile)
		}
	}
	for _, tile := range []mahjong.Tile{mahjong.Tile1s, mahjong.TileN, mahjong.Tile5m} {
		if useful[tile] {
			t.Fatalf("%v should not be useful", tile)
		}
	}

	// 不需要有效牌表
	if s := RegularShanten(tiles, nil); s != 1 {
		t.Fatalf("expect 1, got %d", s)
	}
}

func TestWait(t *testing.T) {
	cases := []struct {
		name    string
		fn      func([]mahjong.Tile, *Useful) bool
		tiles   string
		waiting string
	}{
		{"regular", IsRegularWait, "123m456p789sEESS", "ES"},
		{"regular nine gates", IsRegularWait, "1112345678999m", "123456789m"},
		{"regular closed", IsRegularWait, "123m456p789sEE13s", "2s"},
		{"regular edge", IsRegularWait, "123m456p789sEE12s", "3s"},
		{"regular not", IsRegularWait, "123m456p789sEW13s", ""},
		{"seven pairs", IsSevenPairsWait, "1122m3344s5566pE", "E"},
		{"orphans", IsThirteenOrphansWait, "19m19s19pESWNCFF", "P"},
		{"honors and knitted", IsHonorsAndKnittedTilesWait, "147m258s369pESWN", "CFP"},
		{"knitted straight single", IsKnittedStraightWait, "147m258s369pEEEN", "N"},
		{"knitted straight missing", IsKnittedStraightWait, "147m258s39pEEENN", "6p"},
		{"knitted straight ten", IsKnittedStraightWait, "147m258s369pE", "E"},
	}

	for _, c := range cases {
		var waiting Useful
		tiles := mustTiles(t, c.tiles)
		ok := c.fn(tiles, &waiting)
		if ok != (c.waiting != "") {
			t.Fatalf("%s: expect waiting %v, got %v", c.name, c.waiting != "", ok)
		}
		if !ok {
			continue
		}
		if expect := mahjong.MapTiles(mustTiles(t, c.waiting)...).Tiles(34); !sameTiles(waiting.Tiles(), expect) {
			t.Fatalf("%s: expect waiting %v, got %v", c.name, expect, waiting.Tiles())
		}
		if c.fn(tiles, nil) != ok {
			t.Fatalf("%s: result differs without waiting table", c.name)
		}
	}
}

func TestWin(t *testing.T) {
	cases := []struct {
		name  string
		fn    func([]mahjong.Tile, mahjong.Tile) bool
		tiles string
		test  mahjong.Tile
		win   bool
	}{
		{"regular", IsRegularWin, "123m456p789sEESS", mahjong.TileE, true},
		{"regular miss", IsRegularWin, "123m456p789sEESS", mahjong.Tile1m, false},
		{"regular pair", IsRegularWin, "123m456p789s111s2s", mahjong.Tile2s, true},
		{"seven pairs", IsSevenPairsWin, "1122m3344s5566pE", mahjong.TileE, true},
		{"seven pairs miss", IsSevenPairsWin, "1122m3344s5566pE", mahjong.TileS, false},
		{"orphans", IsThirteenOrphansWin, "19m19s19pESWNCFP", mahjong.Tile9p, true},
		{"orphans miss", IsThirteenOrphansWin, "19m19s19pESWNCFP", mahjong.Tile5p, false},
		{"honors and knitted", IsHonorsAndKnittedTilesWin, "147m258s369pESWN", mahjong.TileF, true},
		{"knitted straight", IsKnittedStraightWin, "147m258s39pEEENN", mahjong.Tile6p, true},
		{"knitted straight miss", IsKnittedStraightWin, "147m258s39pEEENN", mahjong.TileN, false},
	}

	for _, c := range cases {
		if win := c.fn(mustTiles(t, c.tiles), c.test); win != c.win {
			t.Fatalf("%s: expect %v, got %v", c.name, c.win, win)
		}
	}
}

func TestIsWaiting(t *testing.T) {
	hands := []string{
		"123m456p789sEESS",
		"1112345678999m",
		"1122m3344s5566pE",
		"19m19s19pESWNCFP",
		"147m258s369pESWN",
		"147m258s369pEEEN",
		"123m456p789s13sEW",
		"2233445566778p",
	}

	calculators := []func([]mahjong.Tile, *Useful) int{
		RegularShanten,
		SevenPairsShanten,
		ThirteenOrphansShanten,
		HonorsAndKnittedTilesShanten,
		KnittedStraightShanten,
	}

	for _, s := range hands {
		tiles := mustTiles(t, s)
		if len(tiles) != 13 {
			t.Fatalf("%q: expect 13 tiles, got %d", s, len(tiles))
		}

		var union Useful
		tenpai := false
		for _, fn := range calculators {
			var useful Useful
			if fn(tiles, &useful) == 0 {
				tenpai = true
				union.Merge(&useful)
			}
		}

		var useful Useful
		hand := &mahjong.Hand{StandingTiles: tiles}
		if ok := IsWaiting(hand, &useful); ok != tenpai {
			t.Fatalf("%q: expect %v, got %v", s, tenpai, ok)
		}
		if useful != union {
			t.Fatalf("%q: expect useful %v, got %v", s, union.Tiles(), useful.Tiles())
		}
	}
}

func TestIsWaiting_Fixed(t *testing.T) {
	hand := &mahjong.Hand{
		FixedPacks: []mahjong.Pack{
			mahjong.MakePack(1, mahjong.PackPung, mahjong.TileE),
			mahjong.MakePack(1, mahjong.PackChow, mahjong.Tile2m),
			mahjong.MakePack(1, mahjong.PackChow, mahjong.Tile5p),
		},
		StandingTiles: mustTiles(t, "1234s"),
	}

	var useful Useful
	if !IsWaiting(hand, &useful) {
		t.Fatalf("expect waiting")
	}
	if expect := mustTiles(t, "14s"); !sameTiles(useful.Tiles(), expect) {
		t.Fatalf("expect %v, got %v", expect, useful.Tiles())
	}

	hand.StandingTiles = mustTiles(t, "13sE")[:2]
	if IsWaiting(hand, nil) {
		t.Fatalf("two standing tiles can never be waiting")
	}
}

func TestEnumDiscardTile(t *testing.T) {
	hand := &mahjong.Hand{StandingTiles: mustTiles(t, "123m456p789sEESS")}

	var results []*DiscardResult
	EnumDiscardTile(hand, mahjong.TileE, FormRegular, func(r *DiscardResult) bool {
		results = append(results, r)
		return true
	})

	// 摸到的牌加上其余10种牌
	if len(results) != 11 {
		t.Fatalf("expect 11 results, got %d", len(results))
	}
	if r := results[0]; r.Discard != mahjong.TileE || r.Shanten != -1 {
		t.Fatalf("discarding the serving tile should report a win, got %+v", r)
	}
	// 和牌形打出任意一张都仍听这张牌
	for _, r := range results[1:] {
		if r.Form != FormRegular {
			t.Fatalf("unexpected form %v", r.Form)
		}
		if r.Shanten != -1 || !r.Useful[r.Discard] {
			t.Fatalf("discarding %v should keep waiting on it, got %d", r.Discard, r.Shanten)
		}
	}

	// 中止枚举
	calls := 0
	EnumDiscardTile(hand, mahjong.TileE, FormAll, func(r *DiscardResult) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Fatalf("expect 1 call, got %d", calls)
	}

	// 13张时所有牌型都参与
	forms := map[Form]bool{}
	EnumDiscardTile(hand, 0, FormAll, func(r *DiscardResult) bool {
		forms[r.Form] = true
		return true
	})
	if len(forms) != 5 {
		t.Fatalf("expect 5 forms, got %v", forms)
	}
}

func BenchmarkRegularShanten(b *testing.B) {
	tiles := mustTiles(b, "1346m2579s158pES")
	var useful Useful

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RegularShanten(tiles, &useful)
	}
}

func BenchmarkIsWaiting(b *testing.B) {
	hand := &mahjong.Hand{StandingTiles: mustTiles(b, "1112345678999m")}
	var useful Useful

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsWaiting(hand, &useful)
	}
}
