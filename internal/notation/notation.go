// Package notation 手牌字符串的解析与格式化
//
// 数牌用数字加后缀表示(m=万 s=条 p=饼), 字牌用ESWNCFP表示,
// 副露用[]括起, 括号内末尾可以跟一个数字表示供牌方向.
// 例如: [567m,1][EEEE]23s45p6p, 6p为和牌张
package notation

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
)

const (
	suffixes = "msp"
	maxTiles = 14
)

// normalize 全角字符转为半角, 并去除空白
func normalize(text string) string {
	text = width.Narrow.String(text)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', ',':
			return -1
		}
		return r
	}, text)
}

func honorTile(c rune) (mahjong.Tile, bool) {
	if i := strings.IndexRune(mahjong.HonorLetters, c); i >= 0 {
		return mahjong.TileE + mahjong.Tile(i), true
	}
	return 0, false
}

func suitOf(c rune) (int, bool) {
	if i := strings.IndexRune(suffixes, c); i >= 0 {
		return i + 1, true
	}
	return 0, false
}

// ParseTile 解析单张牌, 如"5m"或"E"
func ParseTile(text string) (mahjong.Tile, error) {
	tiles, err := ParseTiles(text)
	if err != nil {
		return 0, err
	}
	if len(tiles) != 1 {
		return 0, errutil.ErrWrongTilesCount
	}
	return tiles[0], nil
}

// ParseTiles 解析不含副露的牌串
func ParseTiles(text string) ([]mahjong.Tile, error) {
	var (
		tiles  []mahjong.Tile
		digits []int
	)

	for _, c := range normalize(text) {
		switch {
		case c >= '1' && c <= '9':
			digits = append(digits, int(c-'0'))

		case strings.ContainsRune(suffixes, c):
			if len(digits) == 0 {
				return nil, errutil.ErrSuffix
			}
			suit, _ := suitOf(c)
			for _, d := range digits {
				tiles = append(tiles, mahjong.MakeTile(suit, d))
			}
			digits = digits[:0]

		default:
			t, ok := honorTile(c)
			if !ok {
				return nil, errutil.ErrIllegalCharacter
			}
			if len(digits) > 0 {
				return nil, errutil.ErrSuffix
			}
			tiles = append(tiles, t)
		}

		if len(tiles)+len(digits) > maxTiles {
			return nil, errutil.ErrTooManyTiles
		}
	}

	// 数字后面缺少后缀
	if len(digits) > 0 {
		return nil, errutil.ErrSuffix
	}
	return tiles, nil
}

// parser 手牌解析状态
type parser struct {
	packs    []mahjong.Pack
	standing []mahjong.Tile
	table    mahjong.Table

	inBrackets bool
	digits     []int
	temp       []mahjong.Tile
	max        int
}

func (p *parser) digit(d int) {
	if len(p.digits) < p.max {
		p.digits = append(p.digits, d)
	}
}

func (p *parser) suffix(suit int) error {
	if len(p.digits) == 0 {
		return errutil.ErrSuffix
	}
	if len(p.temp)+len(p.digits) > p.max {
		return errutil.ErrTooManyTiles
	}
	for _, d := range p.digits {
		p.temp = append(p.temp, mahjong.MakeTile(suit, d))
	}
	p.digits = p.digits[:0]
	return nil
}

func (p *parser) honor(t mahjong.Tile) error {
	if len(p.digits) > 0 {
		return errutil.ErrSuffix
	}
	if len(p.temp) < p.max {
		p.temp = append(p.temp, t)
	}
	return nil
}

func (p *parser) open() error {
	switch {
	case p.inBrackets:
		return errutil.ErrIllegalCharacter
	case len(p.packs) >= 4:
		return errutil.ErrTooManyFixedPacks
	case len(p.digits) > 0:
		return errutil.ErrSuffix
	}

	if len(p.temp) > 0 {
		if len(p.standing)+len(p.temp) >= p.max {
			return errutil.ErrTooManyTiles
		}
		p.flushStanding()
	}

	p.inBrackets = true
	p.max = 5
	return nil
}

func (p *parser) close() error {
	if !p.inBrackets {
		return errutil.ErrIllegalCharacter
	}
	if len(p.temp) == 0 {
		return errutil.ErrWrongTilesCountForFixedPack
	}

	// 括号内的单个数字为供牌方向
	offer := 0
	if len(p.digits) == 1 {
		offer = p.digits[0]
		if offer > 3 {
			offer = 0
		}
		p.digits = p.digits[:0]
	}
	if len(p.digits) > 0 {
		return errutil.ErrSuffix
	}

	pack, err := makeFixedPack(p.temp, offer)
	if err != nil {
		return err
	}
	p.table.AddTiles(p.temp...)
	p.packs = append(p.packs, pack)
	p.temp = p.temp[:0]
	p.inBrackets = false
	p.max = maxTiles - len(p.standing) - len(p.packs)*3
	return nil
}

func (p *parser) flushStanding() {
	p.table.AddTiles(p.temp...)
	p.standing = append(p.standing, p.temp...)
	p.temp = p.temp[:0]
}

func makeFixedPack(tiles []mahjong.Tile, offer int) (mahjong.Pack, error) {
	switch len(tiles) {
	case 3:
		if offer == 0 {
			offer = 1
		}
		if tiles[0] == tiles[1] && tiles[1] == tiles[2] {
			return mahjong.MakePack(offer, mahjong.PackPung, tiles[0]), nil
		}
		if tiles[0].IsHonor() {
			return 0, errutil.ErrCannotMakeFixedPack
		}

		s := []mahjong.Tile{tiles[0], tiles[1], tiles[2]}
		sortTiles(s)
		if s[0]+1 == s[1] && s[1]+1 == s[2] {
			return mahjong.MakePack(offer, mahjong.PackChow, s[1]), nil
		}
		return 0, errutil.ErrCannotMakeFixedPack

	case 4:
		if tiles[0] != tiles[1] || tiles[1] != tiles[2] || tiles[2] != tiles[3] {
			return 0, errutil.ErrCannotMakeFixedPack
		}
		return mahjong.MakePack(offer, mahjong.PackKong, tiles[0]), nil
	}
	return 0, errutil.ErrWrongTilesCountForFixedPack
}

func sortTiles(tiles []mahjong.Tile) {
	for i := 1; i < len(tiles); i++ {
		for j := i; j > 0 && tiles[j] < tiles[j-1]; j-- {
			tiles[j], tiles[j-1] = tiles[j-1], tiles[j]
		}
	}
}

// ParseHand 解析完整手牌
//
// 当立牌数为14-3*副露数时, 最后一张视为和牌张并从立牌中分离
func ParseHand(text string) (*mahjong.Hand, mahjong.Tile, error) {
	text = normalize(text)
	for _, c := range text {
		if _, ok := honorTile(c); ok {
			continue
		}
		if strings.ContainsRune("123456789msp[]", c) {
			continue
		}
		return nil, 0, errutil.ErrIllegalCharacter
	}

	p := &parser{max: maxTiles}
	for _, c := range text {
		var err error
		switch {
		case c >= '1' && c <= '9':
			p.digit(int(c - '0'))
		case c == '[':
			err = p.open()
		case c == ']':
			err = p.close()
		default:
			if suit, ok := suitOf(c); ok {
				err = p.suffix(suit)
			} else {
				t, _ := honorTile(c)
				err = p.honor(t)
			}
		}
		if err != nil {
			return nil, 0, err
		}
	}

	if p.inBrackets {
		return nil, 0, errutil.ErrWrongTilesCountForFixedPack
	}
	if len(p.digits) > 0 {
		return nil, 0, errutil.ErrSuffix
	}

	max := maxTiles - len(p.packs)*3
	if len(p.standing)+len(p.temp) > max {
		return nil, 0, errutil.ErrTooManyTiles
	}
	p.flushStanding()

	for _, t := range mahjong.AllTiles {
		if p.table[t] > 4 {
			return nil, 0, errutil.ErrTileCountGreaterThan4
		}
	}

	hand := &mahjong.Hand{FixedPacks: p.packs}
	var serving mahjong.Tile
	if n := len(p.standing); n == max {
		serving = p.standing[n-1]
		hand.StandingTiles = p.standing[:n-1]
	} else {
		hand.StandingTiles = p.standing
	}
	return hand, serving, nil
}
