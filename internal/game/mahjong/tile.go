package mahjong

import (
	"fmt"
)

// Tile 牌, 高4位为花色, 低4位为点数
type Tile uint8

const (
	SuitNone       = 0
	SuitCharacters = 1 // 万 m
	SuitBamboo     = 2 // 条 s
	SuitDots       = 3 // 饼 p
	SuitHonors     = 4 // 字牌
	SuitFlowers    = 5 // 花牌
)

const (
	Tile1m Tile = 0x11 + iota
	Tile2m
	Tile3m
	Tile4m
	Tile5m
	Tile6m
	Tile7m
	Tile8m
	Tile9m
)

const (
	Tile1s Tile = 0x21 + iota
	Tile2s
	Tile3s
	Tile4s
	Tile5s
	Tile6s
	Tile7s
	Tile8s
	Tile9s
)

const (
	Tile1p Tile = 0x31 + iota
	Tile2p
	Tile3p
	Tile4p
	Tile5p
	Tile6p
	Tile7p
	Tile8p
	Tile9p
)

// 风牌与箭牌
const (
	TileE Tile = 0x41 + iota // 东
	TileS                    // 南
	TileW                    // 西
	TileN                    // 北
	TileC                    // 中
	TileF                    // 发
	TileP                    // 白
)

// TableSize 以牌值为下标的表长度
const TableSize = 0x48

// AllTiles 34种牌, 按规范顺序
var AllTiles = [34]Tile{
	Tile1m, Tile2m, Tile3m, Tile4m, Tile5m, Tile6m, Tile7m, Tile8m, Tile9m,
	Tile1s, Tile2s, Tile3s, Tile4s, Tile5s, Tile6s, Tile7s, Tile8s, Tile9s,
	Tile1p, Tile2p, Tile3p, Tile4p, Tile5p, Tile6p, Tile7p, Tile8p, Tile9p,
	TileE, TileS, TileW, TileN, TileC, TileF, TileP,
}

var suitLetters = [...]byte{SuitCharacters: 'm', SuitBamboo: 's', SuitDots: 'p'}

// HonorLetters 字牌字母, 依次为东南西北中发白
const HonorLetters = "ESWNCFP"

func MakeTile(suit, rank int) Tile {
	return Tile((suit&0xF)<<4 | rank&0xF)
}

func (t Tile) Suit() int {
	return int(t>>4) & 0xF
}

func (t Tile) Rank() int {
	return int(t) & 0xF
}

// Valid 是否是34种牌之一
func (t Tile) Valid() bool {
	return t.IsNumberedSuit() || t.IsHonor()
}

func (t Tile) String() string {
	switch s := t.Suit(); {
	case s >= SuitCharacters && s <= SuitDots && t.IsNumberedSuit():
		return fmt.Sprintf("%d%c", t.Rank(), suitLetters[s])
	case t.IsHonor():
		return string(HonorLetters[t.Rank()-1])
	default:
		return "?"
	}
}

func (t Tile) IsFlower() bool {
	return t.Suit() == SuitFlowers
}

func (t Tile) IsHonor() bool {
	return t > 0x40 && t < 0x48
}

func (t Tile) IsWind() bool {
	return t > 0x40 && t < 0x45
}

func (t Tile) IsDragon() bool {
	return t > 0x44 && t < 0x48
}

// IsTerminal 老头牌(1,9)
func (t Tile) IsTerminal() bool {
	return t&0xC7 == 1
}

func (t Tile) IsNumberedSuit() bool {
	switch {
	case t < 0x1A:
		return t > 0x10
	case t < 0x2A:
		return t > 0x20
	case t < 0x3A:
		return t > 0x30
	}
	return false
}

// IsNumberedSuitQuick 仅对合法牌有效
func (t Tile) IsNumberedSuitQuick() bool {
	return t&0xC0 == 0
}

func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

// IsGreen 绿一色可用的牌: 23468s, 发
func (t Tile) IsGreen() bool {
	return 0x0020000000AE0000&(uint64(1)<<(t-Tile1m)) != 0
}

// IsReversible 推不倒可用的牌: 1234589p, 245689s, 白
func (t Tile) IsReversible() bool {
	return 0x0040019F01BA0000&(uint64(1)<<(t-Tile1m)) != 0
}

func SameSuit(t0, t1 Tile) bool {
	return t0&0xF0 == t1&0xF0
}

func SameRank(t0, t1 Tile) bool {
	return t0&0xCF == t1&0xCF
}

// Eigen 由三张牌构造的比较键, 用于搜索时保持面子顺序不减
func Eigen(t1, t2, t3 Tile) int {
	return int(t1)<<16 | int(t2)<<8 | int(t3)
}
