// Package shanten 上听数计算与听牌判断
//
// 所有计算只使用调用内部的统计表, 可并发调用
package shanten

import (
	"math"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
)

// Infinite 牌型不适用于当前的立牌数
const Infinite = math.MaxInt32

// Useful 有效牌表, 以牌值为下标
type Useful [mahjong.TableSize]bool

func (u *Useful) Reset() {
	*u = Useful{}
}

// Merge 合并另一张有效牌表
func (u *Useful) Merge(o *Useful) {
	for _, t := range mahjong.AllTiles {
		if o[t] {
			u[t] = true
		}
	}
}

// Tiles 有效牌列表
func (u *Useful) Tiles() []mahjong.Tile {
	var tiles []mahjong.Tile
	for _, t := range mahjong.AllTiles {
		if u[t] {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func (u *Useful) Count() int {
	n := 0
	for _, t := range mahjong.AllTiles {
		if u[t] {
			n++
		}
	}
	return n
}

// validStandingCount 立牌数只可能是13,10,7,4,1
func validStandingCount(n int) bool {
	switch n {
	case 13, 10, 7, 4, 1:
		return true
	}
	return false
}

// regularRecursively 基本和型上听数的递归计算
//
// packCnt为完成的面子数(含副露), partnerCnt为搭子数
// 返回-1表示已经和牌
func regularRecursively(tt *mahjong.Table, hasPair bool, packCnt, partnerCnt, fixedCnt int, packEigen, partnerEigen int) int {
	if fixedCnt == 4 {
		for _, t := range mahjong.AllTiles {
			if tt[t] > 1 {
				return -1
			}
		}
		return 0
	}

	if packCnt == 4 {
		if hasPair {
			return -1
		}
		return 0
	}

	var maxRet int
	if need := 4 - packCnt - partnerCnt; need > 0 {
		maxRet = partnerCnt + need*2
		if hasPair {
			maxRet--
		}
	} else {
		maxRet = 4 - packCnt
		if hasPair {
			maxRet = 3 - packCnt
		}
	}

	result := maxRet
	if packCnt+partnerCnt > 4 {
		return maxRet
	}

	for _, t := range mahjong.AllTiles {
		if tt[t] < 1 {
			continue
		}

		// 雀头
		if !hasPair && tt[t] > 1 {
			tt[t] -= 2
			result = min(result, regularRecursively(tt, true, packCnt, partnerCnt, fixedCnt, packEigen, partnerEigen))
			tt[t] += 2
		}

		// 刻子
		if tt[t] > 2 {
			if eigen := mahjong.Eigen(t, t, t); eigen > packEigen {
				tt[t] -= 3
				result = min(result, regularRecursively(tt, hasPair, packCnt+1, partnerCnt, fixedCnt, eigen, partnerEigen))
				tt[t] += 3
			}
		}

		// 顺子
		if t.IsNumberedSuit() && t.Rank() < 8 && tt[t+1] != 0 && tt[t+2] != 0 {
			if eigen := mahjong.Eigen(t, t+1, t+2); eigen >= packEigen {
				tt[t]--
				tt[t+1]--
				tt[t+2]--
				result = min(result, regularRecursively(tt, hasPair, packCnt+1, partnerCnt, fixedCnt, eigen, partnerEigen))
				tt[t]++
				tt[t+1]++
				tt[t+2]++
			}
		}

		// 已经找到更优的面子组合, 搭子不必再试
		if result < maxRet {
			continue
		}

		// 对子搭子
		if tt[t] > 1 {
			if eigen := mahjong.Eigen(t, t, 0); eigen > partnerEigen {
				tt[t] -= 2
				result = min(result, regularRecursively(tt, hasPair, packCnt, partnerCnt+1, fixedCnt, packEigen, eigen))
				tt[t] += 2
			}
		}

		if !t.IsNumberedSuit() {
			continue
		}

		// 两面或边张搭子
		if t.Rank() < 9 && tt[t+1] != 0 {
			if eigen := mahjong.Eigen(t, t+1, 0); eigen >= partnerEigen {
				tt[t]--
				tt[t+1]--
				result = min(result, regularRecursively(tt, hasPair, packCnt, partnerCnt+1, fixedCnt, packEigen, eigen))
				tt[t]++
				tt[t+1]++
			}
		}

		// 嵌张搭子
		if t.Rank() < 8 && tt[t+2] != 0 {
			if eigen := mahjong.Eigen(t, t+2, 0); eigen >= partnerEigen {
				tt[t]--
				tt[t+2]--
				result = min(result, regularRecursively(tt, hasPair, packCnt, partnerCnt+1, fixedCnt, packEigen, eigen))
				tt[t]++
				tt[t+2]++
			}
		}
	}

	return result
}

// numberedTileHasPartner 数牌是否有可以组成搭子的邻近牌
func numberedTileHasPartner(tt *mahjong.Table, t mahjong.Tile) bool {
	r := t.Rank()
	switch {
	case r < 9 && tt[t+1] != 0:
		return true
	case r < 8 && tt[t+2] != 0:
		return true
	case r > 1 && tt[t-1] != 0:
		return true
	case r > 2 && tt[t-2] != 0:
		return true
	}
	return false
}

func regularShantenFromTable(tt *mahjong.Table, fixedCnt int, useful *Useful) int {
	result := regularRecursively(tt, false, fixedCnt, 0, fixedCnt, 0, 0)
	if useful == nil {
		return result
	}

	for _, t := range mahjong.AllTiles {
		if tt[t] == 4 && result > 0 {
			continue
		}

		// 孤立的牌不可能有效
		if tt[t] == 0 && (t.IsHonor() || !numberedTileHasPartner(tt, t)) {
			continue
		}

		tt[t]++
		if temp := regularRecursively(tt, false, fixedCnt, 0, fixedCnt, 0, 0); temp < result {
			useful[t] = true
		}
		tt[t]--
	}

	return result
}

// RegularShanten 基本和型(4组面子1对雀头)上听数
func RegularShanten(standing []mahjong.Tile, useful *Useful) int {
	cnt := len(standing)
	if !validStandingCount(cnt) {
		return Infinite
	}

	if useful != nil {
		useful.Reset()
	}
	return regularShantenFromTable(mahjong.MapTiles(standing...), (13-cnt)/3, useful)
}

// specifiedRegularShanten 以指定的牌为主体(如组合龙)计算剩余部分的基本和型上听数
func specifiedRegularShanten(tt *mahjong.Table, mainTiles []mahjong.Tile, fixedCnt int, useful *Useful) int {
	temp := *tt
	exist := 0
	for _, t := range mainTiles {
		if tt[t] > 0 {
			exist++
			temp[t]--
		}
	}

	if useful != nil {
		useful.Reset()
		for _, t := range mainTiles {
			if tt[t] <= 0 {
				useful[t] = true
			}
		}
	}

	result := regularShantenFromTable(&temp, fixedCnt+len(mainTiles)/3, useful)
	return len(mainTiles) - exist + result
}
