package mahjong

import (
	"testing"
)

func TestTile(t *testing.T) {
	for _, tile := range AllTiles {
		if s := tile.Suit(); s < SuitCharacters || s > SuitHonors {
			t.Fatalf("illegal suit: %v %d", tile, s)
		}
		if r := tile.Rank(); r < 1 || r > 9 {
			t.Fatalf("illegal rank: %v %d", tile, r)
		}
		if MakeTile(tile.Suit(), tile.Rank()) != tile {
			t.Fatalf("make tile: %v", tile)
		}
		if !tile.Valid() {
			t.Fatalf("expect valid: %v", tile)
		}
	}

	if Tile(0x1A).Valid() || Tile(0x10).Valid() || Tile(0x48).Valid() {
		t.Fatalf("expect invalid")
	}
}

func TestTile_Predicates(t *testing.T) {
	cases := []struct {
		tile                                    Tile
		honor, terminal, numbered, wind, dragon bool
	}{
		{tile: Tile1m, terminal: true, numbered: true},
		{tile: Tile5s, numbered: true},
		{tile: Tile9p, terminal: true, numbered: true},
		{tile: TileE, honor: true, wind: true},
		{tile: TileN, honor: true, wind: true},
		{tile: TileC, honor: true, dragon: true},
		{tile: TileP, honor: true, dragon: true},
	}

	for _, c := range cases {
		if c.tile.IsHonor() != c.honor || c.tile.IsTerminal() != c.terminal ||
			c.tile.IsNumberedSuit() != c.numbered || c.tile.IsWind() != c.wind ||
			c.tile.IsDragon() != c.dragon {
			t.Fatalf("predicates mismatch: %v", c.tile)
		}
		if c.tile.IsTerminalOrHonor() != (c.terminal || c.honor) {
			t.Fatalf("terminal or honor mismatch: %v", c.tile)
		}
		if c.tile.IsNumberedSuitQuick() != c.numbered {
			t.Fatalf("numbered quick mismatch: %v", c.tile)
		}
	}
}

func TestTile_GreenAndReversible(t *testing.T) {
	green := map[Tile]bool{Tile2s: true, Tile3s: true, Tile4s: true, Tile6s: true, Tile8s: true, TileF: true}
	reversible := map[Tile]bool{
		Tile1p: true, Tile2p: true, Tile3p: true, Tile4p: true, Tile5p: true, Tile8p: true, Tile9p: true,
		Tile2s: true, Tile4s: true, Tile5s: true, Tile6s: true, Tile8s: true, Tile9s: true,
		TileP: true,
	}

	for _, tile := range AllTiles {
		if tile.IsGreen() != green[tile] {
			t.Fatalf("green: %v expect %t", tile, green[tile])
		}
		if tile.IsReversible() != reversible[tile] {
			t.Fatalf("reversible: %v expect %t", tile, reversible[tile])
		}
	}
}

func TestTile_String(t *testing.T) {
	cases := map[Tile]string{Tile1m: "1m", Tile5s: "5s", Tile9p: "9p", TileE: "E", TileF: "F", TileP: "P"}
	for tile, s := range cases {
		if tile.String() != s {
			t.Fatalf("expect: %s, got: %s", s, tile.String())
		}
	}
}

func TestPack(t *testing.T) {
	p := MakePack(2, PackChow, Tile5s)
	if p.Offer() != 2 || p.Type() != PackChow || p.Tile() != Tile5s || !p.IsMelded() {
		t.Fatalf("unexpect pack: %v", p)
	}

	p = MakePack(0, PackPung, TileC)
	if p.IsMelded() || p.IsPromotedKong() {
		t.Fatalf("unexpect concealed pung: %v", p)
	}

	k := MakePack(1, PackPung, Tile3m).PromoteToKong()
	if k.Type() != PackKong || !k.IsPromotedKong() || !k.IsMelded() || k.Tile() != Tile3m {
		t.Fatalf("unexpect promoted kong: %v", k)
	}

	if tiles := MakePack(0, PackChow, Tile8p).Tiles(); len(tiles) != 3 || tiles[0] != Tile7p || tiles[2] != Tile9p {
		t.Fatalf("unexpect chow tiles: %v", tiles)
	}
}

func TestHand_Validate(t *testing.T) {
	cases := []struct {
		hand  Hand
		valid bool
	}{
		{hand: Hand{StandingTiles: make13(Tile1m)}, valid: true},
		{hand: Hand{StandingTiles: make13(Tile1m)[:12]}, valid: false},
		{
			hand: Hand{
				FixedPacks:    []Pack{MakePack(1, PackPung, TileE)},
				StandingTiles: make13(Tile1m)[:10],
			},
			valid: true,
		},
		{
			hand: Hand{
				FixedPacks:    []Pack{MakePack(1, PackPung, TileE)},
				StandingTiles: make13(Tile1m),
			},
			valid: false,
		},
	}

	for i, c := range cases {
		if c.hand.Validate() != c.valid {
			t.Fatalf("case %d: expect %t", i, c.valid)
		}
	}
}

func make13(t Tile) []Tile {
	tiles := make([]Tile, 13)
	for i := range tiles {
		tiles[i] = t + Tile(i%9)
	}
	return tiles
}
