package notation

import (
	"bytes"
	"strconv"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
)

// FormatTiles 按原顺序输出, 相邻同花色的数牌共用后缀
func FormatTiles(tiles []mahjong.Tile) string {
	buf := &bytes.Buffer{}
	writeTiles(buf, tiles)
	return buf.String()
}

func writeTiles(buf *bytes.Buffer, tiles []mahjong.Tile) {
	suit := 0
	for _, t := range tiles {
		if suit != 0 && t.Suit() != suit {
			buf.WriteByte(suffixes[suit-1])
			suit = 0
		}
		if t.IsHonor() {
			buf.WriteString(t.String())
			continue
		}
		buf.WriteByte(byte('0' + t.Rank()))
		suit = t.Suit()
	}
	if suit != 0 {
		buf.WriteByte(suffixes[suit-1])
	}
}

// FormatPack 输出副露, 只在需要时附加供牌方向
func FormatPack(p mahjong.Pack) string {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	writeTiles(buf, p.Tiles())

	offer := p.Offer()
	switch p.Type() {
	case mahjong.PackKong:
		if offer != 0 {
			buf.WriteString(strconv.Itoa(offer))
		}
	default:
		if offer > 1 {
			buf.WriteString(strconv.Itoa(offer))
		}
	}
	buf.WriteByte(']')
	return buf.String()
}

// FormatHand 输出完整手牌, serving不为0时附加在立牌末尾
func FormatHand(h *mahjong.Hand, serving mahjong.Tile) string {
	buf := &bytes.Buffer{}
	for _, p := range h.FixedPacks {
		buf.WriteString(FormatPack(p))
	}

	tiles := h.StandingTiles
	if serving != 0 {
		tiles = append(append([]mahjong.Tile(nil), tiles...), serving)
	}
	writeTiles(buf, tiles)
	return buf.String()
}
