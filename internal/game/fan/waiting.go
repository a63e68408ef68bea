package fan

import (
	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/internal/game/shanten"
)

// sevenPairsWaiting 四张相同的牌可以算两对
func sevenPairsWaiting(tt *mahjong.Table, waiting *shanten.Useful) {
	pairs := 0
	for _, t := range mahjong.AllTiles {
		switch tt[t] {
		case 2, 3:
			pairs++
		case 4:
			pairs += 2
		}
	}
	if pairs != 6 {
		return
	}

	for _, t := range mahjong.AllTiles {
		if tt[t] == 1 || tt[t] == 3 {
			waiting[t] = true
			return
		}
	}
}

// uniqueWaiting 去掉和牌张后是否只听这一张
//
// standing为包含和牌张的立牌
func uniqueWaiting(standing *mahjong.Table, win mahjong.Tile) bool {
	temp := *standing
	temp[win]--
	cnt := temp.Count()

	var waiting shanten.Useful
	if cnt == 13 {
		sevenPairsWaiting(&temp, &waiting)
	}

	var regular shanten.Useful
	if shanten.IsRegularWait(temp.Tiles(cnt), &regular) {
		waiting.Merge(&regular)
	}
	return waiting.Count() == 1
}
