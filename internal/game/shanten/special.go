package shanten

import "github.com/mcrhelper/mcrserver/internal/game/mahjong"

// SevenPairsShanten 七对上听数, 只在门清13张时适用
func SevenPairsShanten(standing []mahjong.Tile, useful *Useful) int {
	if len(standing) != 13 {
		return Infinite
	}

	tt := mahjong.MapTiles(standing...)
	pairs, unique := 0, 0
	for _, t := range mahjong.AllTiles {
		if tt[t] == 0 {
			continue
		}
		unique++
		if tt[t] > 1 {
			pairs++
		}
	}

	// 种类不足7种时, 还需要摸进新的种类
	result := 6 - pairs
	if unique < 7 {
		result += 7 - unique
	}

	if useful != nil {
		useful.Reset()
		for _, t := range mahjong.AllTiles {
			if tt[t] == 1 || (tt[t] == 0 && unique < 7) {
				useful[t] = true
			}
		}
	}
	return result
}

// ThirteenOrphansShanten 十三幺上听数
func ThirteenOrphansShanten(standing []mahjong.Tile, useful *Useful) int {
	if len(standing) != 13 {
		return Infinite
	}

	tt := mahjong.MapTiles(standing...)
	cnt, hasPair := 0, false
	for _, t := range mahjong.ThirteenOrphans {
		if tt[t] == 0 {
			continue
		}
		cnt++
		if tt[t] > 1 {
			hasPair = true
		}
	}

	result := 13 - cnt
	if hasPair {
		result = 12 - cnt
	}

	if useful != nil {
		useful.Reset()
		for _, t := range mahjong.ThirteenOrphans {
			// 已经有对子时只需要缺少的种类
			if !hasPair || tt[t] == 0 {
				useful[t] = true
			}
		}
	}
	return result
}

// HonorsAndKnittedTilesShanten 全不靠上听数
func HonorsAndKnittedTilesShanten(standing []mahjong.Tile, useful *Useful) int {
	if len(standing) != 13 {
		return Infinite
	}

	tt := mahjong.MapTiles(standing...)
	result := Infinite
	if useful != nil {
		useful.Reset()
	}

	for i := range mahjong.KnittedStraights {
		var temp Useful
		ret := honorsAndKnittedTiles(tt, mahjong.KnittedStraights[i][:], &temp)
		switch {
		case ret < result:
			result = ret
			if useful != nil {
				*useful = temp
			}
		case ret == result && useful != nil:
			useful.Merge(&temp)
		}
	}
	return result
}

// honorsAndKnittedTiles 以指定的组合龙形式计算全不靠上听数
func honorsAndKnittedTiles(tt *mahjong.Table, seq []mahjong.Tile, useful *Useful) int {
	cnt := 0
	for _, t := range seq {
		if tt[t] > 0 {
			cnt++
		} else {
			useful[t] = true
		}
	}
	for _, t := range mahjong.Honors {
		if tt[t] > 0 {
			cnt++
		} else {
			useful[t] = true
		}
	}
	return 13 - cnt
}

// KnittedStraightShanten 组合龙上听数, 适用于13张或10张立牌
func KnittedStraightShanten(standing []mahjong.Tile, useful *Useful) int {
	cnt := len(standing)
	if cnt != 13 && cnt != 10 {
		return Infinite
	}

	tt := mahjong.MapTiles(standing...)
	fixedCnt := (13 - cnt) / 3
	result := Infinite
	if useful != nil {
		useful.Reset()
	}

	for i := range mahjong.KnittedStraights {
		var temp Useful
		ret := specifiedRegularShanten(tt, mahjong.KnittedStraights[i][:], fixedCnt, &temp)
		switch {
		case ret < result:
			result = ret
			if useful != nil {
				*useful = temp
			}
		case ret == result && useful != nil:
			useful.Merge(&temp)
		}
	}
	return result
}
