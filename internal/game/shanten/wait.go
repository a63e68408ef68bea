package shanten

import "github.com/mcrhelper/mcrserver/internal/game/mahjong"

// 以下的听牌判断直接搜索和牌张, 比通过上听数计算有效牌更快

func isRegularWait1(tt *mahjong.Table, waiting *Useful) bool {
	for _, t := range mahjong.AllTiles {
		if tt[t] != 1 {
			continue
		}

		// 单钓
		tt[t] = 0
		empty := tt.Empty()
		tt[t] = 1
		if empty {
			if waiting != nil {
				waiting[t] = true
			}
			return true
		}
	}
	return false
}

// isRegularWait2 剩余2张须为对子或搭子
func isRegularWait2(tt *mahjong.Table, waiting *Useful) bool {
	ret := false
	for _, t := range mahjong.AllTiles {
		if tt[t] < 1 {
			continue
		}

		// 对倒
		if tt[t] > 1 {
			if waiting == nil {
				return true
			}
			waiting[t] = true
			ret = true
			continue
		}

		if !t.IsNumberedSuitQuick() {
			continue
		}

		r := t.Rank()
		if r > 1 && tt[t-1] != 0 {
			// 两面或边张
			if waiting == nil {
				return true
			}
			if r < 9 {
				waiting[t+1] = true
			}
			if r > 2 {
				waiting[t-2] = true
			}
			ret = true
			continue
		}
		if r > 2 && tt[t-2] != 0 {
			// 嵌张
			if waiting == nil {
				return true
			}
			waiting[t-1] = true
			ret = true
		}
	}
	return ret
}

func isRegularWait4(tt *mahjong.Table, waiting *Useful) bool {
	ret := false
	for _, t := range mahjong.AllTiles {
		if tt[t] < 2 {
			continue
		}

		// 取出雀头
		tt[t] -= 2
		if isRegularWait2(tt, waiting) {
			ret = true
		}
		tt[t] += 2
		if ret && waiting == nil {
			return true
		}
	}
	return ret
}

func isRegularWaitRecursively(tt *mahjong.Table, left int, prevEigen int, waiting *Useful) bool {
	if left == 1 {
		return isRegularWait1(tt, waiting)
	}

	ret := false
	if left == 4 {
		ret = isRegularWait4(tt, waiting)
		if ret && waiting == nil {
			return true
		}
	}

	for _, t := range mahjong.AllTiles {
		if tt[t] < 1 {
			continue
		}

		if tt[t] > 2 {
			if eigen := mahjong.Eigen(t, t, t); eigen > prevEigen {
				tt[t] -= 3
				if isRegularWaitRecursively(tt, left-3, eigen, waiting) {
					ret = true
				}
				tt[t] += 3
				if ret && waiting == nil {
					return true
				}
			}
		}

		if t.IsNumberedSuit() && t.Rank() < 8 && tt[t+1] != 0 && tt[t+2] != 0 {
			if eigen := mahjong.Eigen(t, t+1, t+2); eigen >= prevEigen {
				tt[t]--
				tt[t+1]--
				tt[t+2]--
				if isRegularWaitRecursively(tt, left-3, eigen, waiting) {
					ret = true
				}
				tt[t]++
				tt[t+1]++
				tt[t+2]++
				if ret && waiting == nil {
					return true
				}
			}
		}
	}
	return ret
}

// IsRegularWait 基本和型是否听牌, waiting不为nil时填入所有和牌张
func IsRegularWait(standing []mahjong.Tile, waiting *Useful) bool {
	if !validStandingCount(len(standing)) {
		return false
	}
	if waiting != nil {
		waiting.Reset()
	}
	return isRegularWaitRecursively(mahjong.MapTiles(standing...), len(standing), 0, waiting)
}

func isRegularWin2(tt *mahjong.Table) bool {
	for _, t := range mahjong.AllTiles {
		if tt[t] != 0 {
			return tt[t] == 2
		}
	}
	return false
}

func isRegularWinRecursively(tt *mahjong.Table, left int, prevEigen int) bool {
	if left == 2 {
		return isRegularWin2(tt)
	}

	for _, t := range mahjong.AllTiles {
		if tt[t] < 1 {
			continue
		}

		if tt[t] > 2 {
			if eigen := mahjong.Eigen(t, t, t); eigen > prevEigen {
				tt[t] -= 3
				ok := isRegularWinRecursively(tt, left-3, eigen)
				tt[t] += 3
				if ok {
					return true
				}
			}
		}

		if t.IsNumberedSuit() && t.Rank() < 8 && tt[t+1] != 0 && tt[t+2] != 0 {
			if eigen := mahjong.Eigen(t, t+1, t+2); eigen >= prevEigen {
				tt[t]--
				tt[t+1]--
				tt[t+2]--
				ok := isRegularWinRecursively(tt, left-3, eigen)
				tt[t]++
				tt[t+1]++
				tt[t+2]++
				if ok {
					return true
				}
			}
		}
	}
	return false
}

// IsRegularWin 加上test后是否构成基本和型
func IsRegularWin(standing []mahjong.Tile, test mahjong.Tile) bool {
	if !validStandingCount(len(standing)) {
		return false
	}
	tt := mahjong.MapTiles(standing...)
	tt[test]++
	return isRegularWinRecursively(tt, len(standing)+1, 0)
}

func waitByShanten(standing []mahjong.Tile, waiting *Useful, fn func([]mahjong.Tile, *Useful) int) bool {
	if waiting == nil {
		return fn(standing, nil) == 0
	}

	var useful Useful
	if fn(standing, &useful) != 0 {
		waiting.Reset()
		return false
	}
	*waiting = useful
	return true
}

func winByShanten(standing []mahjong.Tile, test mahjong.Tile, fn func([]mahjong.Tile, *Useful) int) bool {
	var useful Useful
	return fn(standing, &useful) == 0 && useful[test]
}

// IsSevenPairsWait 七对是否听牌
func IsSevenPairsWait(standing []mahjong.Tile, waiting *Useful) bool {
	return waitByShanten(standing, waiting, SevenPairsShanten)
}

func IsSevenPairsWin(standing []mahjong.Tile, test mahjong.Tile) bool {
	return winByShanten(standing, test, SevenPairsShanten)
}

// IsThirteenOrphansWait 十三幺是否听牌
func IsThirteenOrphansWait(standing []mahjong.Tile, waiting *Useful) bool {
	return waitByShanten(standing, waiting, ThirteenOrphansShanten)
}

func IsThirteenOrphansWin(standing []mahjong.Tile, test mahjong.Tile) bool {
	return winByShanten(standing, test, ThirteenOrphansShanten)
}

// IsHonorsAndKnittedTilesWait 全不靠是否听牌
func IsHonorsAndKnittedTilesWait(standing []mahjong.Tile, waiting *Useful) bool {
	return waitByShanten(standing, waiting, HonorsAndKnittedTilesShanten)
}

func IsHonorsAndKnittedTilesWin(standing []mahjong.Tile, test mahjong.Tile) bool {
	return winByShanten(standing, test, HonorsAndKnittedTilesShanten)
}

func isKnittedStraightWait(tt *mahjong.Table, left int, waiting *Useful) bool {
	var (
		matched []mahjong.Tile
		missing []mahjong.Tile
	)

	// 组合龙最多只能缺1张
	for i := range mahjong.KnittedStraights {
		seq := mahjong.KnittedStraights[i][:]
		missing = missing[:0]
		for _, t := range seq {
			if tt[t] == 0 {
				missing = append(missing, t)
			}
		}
		if len(missing) < 2 {
			matched = seq
			break
		}
	}
	if matched == nil {
		return false
	}

	if waiting != nil {
		waiting.Reset()
	}

	temp := *tt
	for _, t := range matched {
		if temp[t] > 0 {
			temp[t]--
		}
	}

	if len(missing) == 1 {
		// 剩余部分必须已经和牌
		if isRegularWinRecursively(&temp, left-8, 0) {
			if waiting != nil {
				waiting[missing[0]] = true
			}
			return true
		}
		return false
	}

	if left == 10 {
		return isRegularWait1(&temp, waiting)
	}
	return isRegularWaitRecursively(&temp, 4, 0, waiting)
}

// IsKnittedStraightWait 组合龙是否听牌
func IsKnittedStraightWait(standing []mahjong.Tile, waiting *Useful) bool {
	cnt := len(standing)
	if cnt != 13 && cnt != 10 {
		return false
	}
	return isKnittedStraightWait(mahjong.MapTiles(standing...), cnt, waiting)
}

func IsKnittedStraightWin(standing []mahjong.Tile, test mahjong.Tile) bool {
	var waiting Useful
	return IsKnittedStraightWait(standing, &waiting) && waiting[test]
}

// IsWaiting 判断一手牌是否听牌
//
// 13张立牌检查所有牌型, 10张检查基本和型与组合龙, 其余只检查基本和型.
// 任一牌型上听数为0即听牌, useful为所有听牌牌型有效牌的并集
func IsWaiting(hand *mahjong.Hand, useful *Useful) bool {
	standing := hand.StandingTiles
	if useful != nil {
		useful.Reset()
	}

	var calculators []func([]mahjong.Tile, *Useful) int
	switch len(standing) {
	case 13:
		calculators = []func([]mahjong.Tile, *Useful) int{
			RegularShanten,
			SevenPairsShanten,
			ThirteenOrphansShanten,
			HonorsAndKnittedTilesShanten,
			KnittedStraightShanten,
		}
	case 10:
		calculators = []func([]mahjong.Tile, *Useful) int{RegularShanten, KnittedStraightShanten}
	case 7, 4, 1:
		calculators = []func([]mahjong.Tile, *Useful) int{RegularShanten}
	default:
		return false
	}

	waiting := false
	for _, fn := range calculators {
		var temp Useful
		if fn(standing, &temp) != 0 {
			continue
		}
		waiting = true
		if useful != nil {
			useful.Merge(&temp)
		}
	}
	return waiting
}
