package mahjong

import (
	"sort"
	"testing"
)

func tilesOf(s string) []Tile {
	var tiles []Tile
	var digits []int
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9':
			digits = append(digits, int(c-'0'))
		case c == 'm' || c == 's' || c == 'p':
			suit := map[rune]int{'m': SuitCharacters, 's': SuitBamboo, 'p': SuitDots}[c]
			for _, d := range digits {
				tiles = append(tiles, MakeTile(suit, d))
			}
			digits = digits[:0]
		default:
			for i, h := range HonorLetters {
				if h == c {
					tiles = append(tiles, TileE+Tile(i))
				}
			}
		}
	}
	return tiles
}

func TestDivideWinHand(t *testing.T) {
	cases := []struct {
		fixed     []Pack
		standing  string
		divisions int
	}{
		{standing: "111222333m456p77s", divisions: 2},
		{standing: "22334455667788p", divisions: 3},
		{standing: "11123456789999m", divisions: 1},
		{standing: "147m258s369pESWNC", divisions: 0},
		{standing: "123m456p789s11235s", divisions: 0},
		{
			fixed:     []Pack{MakePack(1, PackChow, Tile2m)},
			standing:  "456m789m999s11p",
			divisions: 1,
		},
		{
			fixed: []Pack{
				MakePack(1, PackPung, TileE),
				MakePack(2, PackPung, TileS),
				MakePack(3, PackKong, TileW),
				MakePack(1, PackPung, TileN),
			},
			standing:  "CC",
			divisions: 1,
		},
	}

	for i, c := range cases {
		standing := MapTiles(tilesOf(c.standing)...)
		divisions := DivideWinHand(standing, c.fixed)
		if len(divisions) != c.divisions {
			t.Fatalf("case %d: expect %d divisions, got %d: %+v", i, c.divisions, len(divisions), divisions)
		}

		for _, d := range divisions {
			for j, p := range c.fixed {
				if d.Packs[j] != p {
					t.Fatalf("case %d: fixed pack moved: %v", i, d.Packs)
				}
			}
		}
	}
}

func TestDivideWinHand_RoundTrip(t *testing.T) {
	hands := []string{
		"111222333m456p77s",
		"22334455667788p",
		"11123456789999m",
		"11122233344455s",
		"12345678999m123p",
		"22233344455566m",
	}

	for _, h := range hands {
		tiles := tilesOf(h)
		standing := MapTiles(tiles...)
		for _, d := range DivideWinHand(standing, nil) {
			got := MapTiles(d.Tiles()...)
			if *got != *standing {
				t.Fatalf("%s: division %v does not reproduce input", h, d.Packs)
			}
		}
	}
}

func TestDivideWinHand_Unique(t *testing.T) {
	hands := []string{
		"11122233344455s",
		"11112222333344m",
		"22334455667788p",
	}

	for _, h := range hands {
		divisions := DivideWinHand(MapTiles(tilesOf(h)...), nil)
		seen := map[[4]Pack]bool{}
		for _, d := range divisions {
			var key [4]Pack
			copy(key[:], d.Packs[:4])
			sort.Slice(key[:], func(i, j int) bool { return key[i] < key[j] })
			if seen[key] {
				t.Fatalf("%s: duplicated division %v", h, d.Packs)
			}
			seen[key] = true
		}
		if len(divisions) == 0 {
			t.Fatalf("%s: expect divisions", h)
		}
	}
}

func BenchmarkDivideWinHand(b *testing.B) {
	standing := MapTiles(tilesOf("11122233344455s")...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DivideWinHand(standing, nil)
	}
}
