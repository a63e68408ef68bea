package mahjong

import "testing"

func TestKnittedStraights(t *testing.T) {
	for i, seq := range KnittedStraights {
		suits := map[int]int{}
		for _, tile := range seq {
			suits[tile.Suit()]++
		}
		if len(suits) != 3 {
			t.Fatalf("seq %d: expect 3 suits, got %v", i, suits)
		}
		if !InKnittedStraight(seq[:]) {
			t.Fatalf("seq %d: not recognised", i)
		}
	}

	if InKnittedStraight([]Tile{Tile1m, Tile2m}) {
		t.Fatalf("1m2m cannot be in one knitted straight")
	}
}

func TestMatchKnittedStraight(t *testing.T) {
	tt := MapTiles(tilesOf("147m258s369p12345m")...)
	seq := MatchKnittedStraight(tt)
	if len(seq) != 9 || seq[0] != Tile1m || seq[3] != Tile2s {
		t.Fatalf("unexpect match: %v", seq)
	}

	if MatchKnittedStraight(MapTiles(tilesOf("147m258s36p")...)) != nil {
		t.Fatalf("expect no match")
	}
}

func TestTable(t *testing.T) {
	tt := MapTiles(tilesOf("123m55pEE")...)
	tt.AddPacks(MakePack(1, PackKong, TileC))
	if tt.Count() != 11 {
		t.Fatalf("unexpect count: %d", tt.Count())
	}
	if tt[TileC] != 4 || tt[TileE] != 2 {
		t.Fatalf("unexpect table: %s", tt.String())
	}
	if tiles := tt.Tiles(3); len(tiles) != 3 || tiles[2] != Tile3m {
		t.Fatalf("unexpect tiles: %v", tiles)
	}
	if !tt.HasPair() || tt.Empty() {
		t.Fatalf("unexpect table state")
	}

	u := Unique(MapTiles(TileC), MapTiles(Tile1m, TileC))
	if len(u) != 2 || u[0] != Tile1m || u[1] != TileC {
		t.Fatalf("unexpect unique: %v", u)
	}
}
