package fan

import (
	"testing"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/internal/notation"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
)

func mustParam(t testing.TB, text string) *Param {
	hand, win, err := notation.ParseHand(text)
	if err != nil {
		t.Fatalf("parse %s: %v", text, err)
	}
	if win == 0 {
		t.Fatalf("parse %s: no serving tile", text)
	}
	return &Param{Hand: *hand, WinTile: win}
}

func sum(table *Table) int {
	total := 0
	for _, id := range table.Fans() {
		total += id.Value() * table[id]
	}
	return total
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name    string
		hand    string
		flag    mahjong.WinFlag
		present []ID
		absent  []ID
	}{
		{
			name:    "thirteen orphans",
			hand:    "19m19s19pESWNCFPC",
			present: []ID{ThirteenOrphans},
			absent:  []ID{LastTile, ChickenHand},
		},
		{
			name:    "nine gates",
			hand:    "1112345678999m5m",
			present: []ID{NineGates},
			absent:  []ID{FullFlush, ConcealedHand},
		},
		{
			name:    "seven shifted pairs",
			hand:    "2233445566778p8p",
			present: []ID{SevenShiftedPairs},
			absent:  []ID{SevenPairs, FullFlush},
		},
		{
			name:    "four concealed pungs",
			hand:    "111m222s333pEEE5m5m",
			flag:    mahjong.WinSelfDrawn,
			present: []ID{FourConcealedPungs},
			absent:  []ID{AllPungs, ThreeConcealedPungs, FullyConcealedHand},
		},
		{
			name:    "big four winds",
			hand:    "EEESSSWWWNNN1m1m",
			present: []ID{BigFourWinds},
			absent:  []ID{AllPungs, PungOfTerminalsOrHonors, PrevalentWind, SeatWind, BigThreeWinds},
		},
		{
			name:    "melded wind pung",
			hand:    "[EEE1]123m456p789s5s5s",
			present: []ID{MixedStraight, PrevalentWind, SeatWind, SingleWait},
			absent:  []ID{PungOfTerminalsOrHonors, ConcealedHand},
		},
	}

	for _, c := range cases {
		p := mustParam(t, c.hand)
		p.Flag = c.flag
		total, table, err := Calculate(p)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if total != sum(table) {
			t.Fatalf("%s: total %d, table sum %d", c.name, total, sum(table))
		}
		for _, id := range c.present {
			if table[id] == 0 {
				t.Fatalf("%s: want %s in %v", c.name, id, table.Fans())
			}
		}
		for _, id := range c.absent {
			if table[id] != 0 {
				t.Fatalf("%s: unexpected %s in %v", c.name, id, table.Fans())
			}
		}
	}
}

func TestCalculate_Errors(t *testing.T) {
	cases := []struct {
		name     string
		standing string
		win      string
		err      error
	}{
		{"not win", "19m19s19pESWNCFP", "2m", errutil.ErrNotWin},
		{"short hand", "19m19s19pESWNCF", "P", errutil.ErrWrongTilesCount},
		{"fifth copy", "1111234567899m", "1m", errutil.ErrTileCountGreaterThan4},
	}

	for _, c := range cases {
		standing, err := notation.ParseTiles(c.standing)
		if err != nil {
			t.Fatalf("%s: parse %v", c.name, err)
		}
		win, err := notation.ParseTile(c.win)
		if err != nil {
			t.Fatalf("%s: parse %v", c.name, err)
		}

		p := &Param{Hand: mahjong.Hand{StandingTiles: standing}, WinTile: win}
		if _, _, err := Calculate(p); err != c.err {
			t.Fatalf("%s: want %v, got %v", c.name, c.err, err)
		}
	}
}

func TestCalculate_IllegalParameter(t *testing.T) {
	p := mustParam(t, "1112345678999m5m")
	p.SeatWind = 7
	if _, _, err := Calculate(p); err != errutil.ErrIllegalWind {
		t.Fatalf("want %v, got %v", errutil.ErrIllegalWind, err)
	}

	p = mustParam(t, "1112345678999m5m")
	p.WinTile = 0x0A
	if _, _, err := Calculate(p); err != errutil.ErrIllegalWinTile {
		t.Fatalf("want %v, got %v", errutil.ErrIllegalWinTile, err)
	}
}

func TestCalculate_Flowers(t *testing.T) {
	base, _, err := Calculate(mustParam(t, "[EEE1]123m456p789s5s5s"))
	if err != nil {
		t.Fatal(err)
	}

	for flowers := 1; flowers <= 8; flowers++ {
		p := mustParam(t, "[EEE1]123m456p789s5s5s")
		p.FlowerCount = flowers
		total, table, err := Calculate(p)
		if err != nil {
			t.Fatal(err)
		}
		if total != base+flowers {
			t.Fatalf("flowers %d: want %d, got %d", flowers, base+flowers, total)
		}
		if table[FlowerTiles] != flowers {
			t.Fatalf("flowers %d: table reports %d", flowers, table[FlowerTiles])
		}
	}
}

func TestCalculate_LastTile(t *testing.T) {
	// 碰出的刻子再和第四张必然是和绝张
	p := mustParam(t, "[555m1]123456p46mEE5m")
	_, table, err := Calculate(p)
	if err != nil {
		t.Fatal(err)
	}
	if table[LastTile] != 1 {
		t.Fatalf("want last tile in %v", table.Fans())
	}

	// 手中已有和牌张时不能是和绝张
	p = mustParam(t, "19m19s19pESWNCFPC")
	p.Flag = mahjong.WinLastTile
	if _, table, err = Calculate(p); err != nil {
		t.Fatal(err)
	}
	if table[LastTile] != 0 {
		t.Fatalf("unexpected last tile in %v", table.Fans())
	}
}

func BenchmarkCalculate(b *testing.B) {
	p := mustParam(b, "1112345678999m5m")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Calculate(p)
	}
}
