package mahjong

import (
	"bytes"
	"fmt"
)

// Table 以牌值为下标的张数统计
type Table [TableSize]int

func (tt *Table) String() string {
	buf := &bytes.Buffer{}

	for _, t := range AllTiles {
		if tt[t] == 0 {
			continue
		}
		fmt.Fprintf(buf, "%v:%d ", t, tt[t])
	}

	return buf.String()
}

func MapTiles(tiles ...Tile) *Table {
	tt := &Table{}
	tt.AddTiles(tiles...)
	return tt
}

func (tt *Table) AddTiles(tiles ...Tile) {
	for _, t := range tiles {
		tt[t]++
	}
}

// AddPacks 统计面子中的牌
func (tt *Table) AddPacks(packs ...Pack) {
	for _, p := range packs {
		t := p.Tile()
		switch p.Type() {
		case PackChow:
			tt[t-1]++
			tt[t]++
			tt[t+1]++
		case PackPung:
			tt[t] += 3
		case PackKong:
			tt[t] += 4
		case PackPair:
			tt[t] += 2
		}
	}
}

// Tiles 按规范顺序展开为牌, 最多max张
func (tt *Table) Tiles(max int) []Tile {
	tiles := make([]Tile, 0, max)
	for _, t := range AllTiles {
		for i := 0; i < tt[t]; i++ {
			if len(tiles) >= max {
				return tiles
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func (tt *Table) Count() int {
	n := 0
	for _, t := range AllTiles {
		n += tt[t]
	}
	return n
}

func (tt *Table) Empty() bool {
	for _, t := range AllTiles {
		if tt[t] != 0 {
			return false
		}
	}
	return true
}

// HasPair 是否存在至少两张的牌
func (tt *Table) HasPair() bool {
	for _, t := range AllTiles {
		if tt[t] > 1 {
			return true
		}
	}
	return false
}

// Unique 两张表中出现过的牌, 按规范顺序
func Unique(fixed, standing *Table) []Tile {
	var tiles []Tile
	for _, t := range AllTiles {
		if fixed[t] != 0 || standing[t] != 0 {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Wind 风位
type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) Valid() bool {
	return w >= WindEast && w <= WindNorth
}

func (w Wind) Tile() Tile {
	return TileE + Tile(w)
}

func (w Wind) String() string {
	if !w.Valid() {
		return "?"
	}
	return string(HonorLetters[w])
}

// WinFlag 和牌标记
type WinFlag int

const (
	WinDiscard      WinFlag = 0
	WinSelfDrawn    WinFlag = 1  // 自摸
	WinLastTile     WinFlag = 2  // 绝张
	WinKongInvolved WinFlag = 4  // 有关杠(杠上开花/抢杠和)
	WinWallLast     WinFlag = 8  // 牌墙最后一张(妙手回春/海底捞月)
	WinInitial      WinFlag = 16 // 起手(天和/地和/人和)
)

// Has 是否包含全部指定标记
func (f WinFlag) Has(flag WinFlag) bool {
	return f&flag == flag
}

// Hand 手牌: 副露和立牌, 不含和牌张
type Hand struct {
	FixedPacks    []Pack
	StandingTiles []Tile
}

func (h *Hand) PackCount() int {
	return len(h.FixedPacks)
}

func (h *Hand) TileCount() int {
	return len(h.StandingTiles)
}

// Validate 检查牌数: 副露数×3 + 立牌数 == 13
func (h *Hand) Validate() bool {
	pc, tc := h.PackCount(), h.TileCount()
	if tc <= 0 || pc > 4 || pc*3+tc != 13 {
		return false
	}
	for _, t := range h.StandingTiles {
		if !t.Valid() {
			return false
		}
	}
	return true
}

// Table 整手牌(副露+立牌)的张数统计
func (h *Hand) Table() *Table {
	tt := MapTiles(h.StandingTiles...)
	tt.AddPacks(h.FixedPacks...)
	return tt
}

func (h *Hand) String() string {
	return fmt.Sprintf("packs=%v, standing=%v", h.FixedPacks, h.StandingTiles)
}
