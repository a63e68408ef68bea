package mahjong

import "fmt"

// PackType 面子类型
type PackType int

const (
	PackNone PackType = iota
	PackChow          // 顺子
	PackPung          // 刻子
	PackKong          // 杠
	PackPair          // 雀头
)

var packTypeNames = [...]string{"none", "chow", "pung", "kong", "pair"}

func (pt PackType) String() string {
	if pt < 0 || int(pt) >= len(packTypeNames) {
		return "unknown"
	}
	return packTypeNames[pt]
}

// Pack 面子
//
// 0x4000 加杠标记, 0x3000 供牌来源(0=暗手, 1~3=上家/对家/下家), 0x0F00 类型, 0x00FF 牌
// 顺子的牌为中间那一张
type Pack uint16

func MakePack(offer int, pt PackType, tile Tile) Pack {
	return Pack((offer&0x3)<<12 | (int(pt)&0xF)<<8 | int(tile))
}

func (p Pack) Offer() int {
	return int(p>>12) & 0x3
}

func (p Pack) Type() PackType {
	return PackType(int(p>>8) & 0xF)
}

func (p Pack) Tile() Tile {
	return Tile(p & 0xFF)
}

// IsMelded 是否是鸣牌得到的面子
func (p Pack) IsMelded() bool {
	return p&0x3000 != 0
}

func (p Pack) IsPromotedKong() bool {
	return p&0x4000 != 0
}

// PromoteToKong 碰升级为加杠
func (p Pack) PromoteToKong() Pack {
	return p | 0x4300
}

// Tiles 面子包含的牌
func (p Pack) Tiles() []Tile {
	t := p.Tile()
	switch p.Type() {
	case PackChow:
		return []Tile{t - 1, t, t + 1}
	case PackPung:
		return []Tile{t, t, t}
	case PackKong:
		return []Tile{t, t, t, t}
	case PackPair:
		return []Tile{t, t}
	}
	return nil
}

func (p Pack) String() string {
	return fmt.Sprintf("%s(%v,%d)", p.Type(), p.Tile(), p.Offer())
}
