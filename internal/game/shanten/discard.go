package shanten

import "github.com/mcrhelper/mcrserver/internal/game/mahjong"

// Form 牌型标志
type Form int

const (
	FormRegular               Form = 0x01
	FormSevenPairs            Form = 0x02
	FormThirteenOrphans       Form = 0x04
	FormHonorsAndKnittedTiles Form = 0x08
	FormKnittedStraight       Form = 0x10
	FormAll                   Form = 0xFF
)

var formNames = map[Form]string{
	FormRegular:               "regular",
	FormSevenPairs:            "seven-pairs",
	FormThirteenOrphans:       "thirteen-orphans",
	FormHonorsAndKnittedTiles: "honors-and-knitted-tiles",
	FormKnittedStraight:       "knitted-straight",
}

func (f Form) String() string {
	if s, ok := formNames[f]; ok {
		return s
	}
	return "unknown"
}

// DiscardResult 打出一张牌后某种牌型的结果
//
// Shanten为-1表示打出的牌本身就是和牌张, 即当前已经和牌
type DiscardResult struct {
	Discard mahjong.Tile
	Form    Form
	Shanten int
	Useful  Useful
}

// DiscardFunc 返回false中止枚举
type DiscardFunc func(r *DiscardResult) bool

var formCalculators = []struct {
	form   Form
	counts []int
	fn     func([]mahjong.Tile, *Useful) int
}{
	{FormRegular, []int{13, 10, 7, 4, 1}, RegularShanten},
	{FormSevenPairs, []int{13}, SevenPairsShanten},
	{FormThirteenOrphans, []int{13}, ThirteenOrphansShanten},
	{FormHonorsAndKnittedTiles, []int{13}, HonorsAndKnittedTilesShanten},
	{FormKnittedStraight, []int{13, 10}, KnittedStraightShanten},
}

func enumDiscard(standing []mahjong.Tile, discard mahjong.Tile, forms Form, fn DiscardFunc) bool {
	for _, c := range formCalculators {
		if forms&c.form == 0 || !containsInt(c.counts, len(standing)) {
			continue
		}

		r := &DiscardResult{Discard: discard, Form: c.form}
		r.Shanten = c.fn(standing, &r.Useful)
		if r.Shanten == 0 && r.Useful[discard] {
			r.Shanten = -1
		}
		if !fn(r) {
			return false
		}
	}
	return true
}

func containsInt(s []int, v int) bool {
	for _, i := range s {
		if i == v {
			return true
		}
	}
	return false
}

// EnumDiscardTile 枚举打出每一种牌后各牌型的上听数与有效牌
//
// hand为摸牌前的手牌, serving为摸到的牌; serving为0时只计算当前手牌
func EnumDiscardTile(hand *mahjong.Hand, serving mahjong.Tile, forms Form, fn DiscardFunc) {
	if !enumDiscard(hand.StandingTiles, serving, forms, fn) {
		return
	}
	if serving == 0 {
		return
	}

	cnt := len(hand.StandingTiles)
	tt := mahjong.MapTiles(hand.StandingTiles...)
	if tt[serving] >= 4 {
		return
	}

	for _, t := range mahjong.AllTiles {
		if tt[t] == 0 || t == serving {
			continue
		}

		// 打出t, 留下摸到的牌
		tt[t]--
		tt[serving]++
		ok := enumDiscard(tt.Tiles(cnt), t, forms, fn)
		tt[serving]--
		tt[t]++
		if !ok {
			return
		}
	}
}
