package mahjong

// ThirteenOrphans 十三幺的13种牌, 后7张为字牌
var ThirteenOrphans = [13]Tile{
	Tile1m, Tile9m, Tile1s, Tile9s, Tile1p, Tile9p,
	TileE, TileS, TileW, TileN, TileC, TileF, TileP,
}

// Honors 字牌
var Honors = ThirteenOrphans[6:]

// KnittedStraights 组合龙的6种形式
var KnittedStraights = [6][9]Tile{
	{Tile1m, Tile4m, Tile7m, Tile2s, Tile5s, Tile8s, Tile3p, Tile6p, Tile9p},
	{Tile1m, Tile4m, Tile7m, Tile3s, Tile6s, Tile9s, Tile2p, Tile5p, Tile8p},
	{Tile2m, Tile5m, Tile8m, Tile1s, Tile4s, Tile7s, Tile3p, Tile6p, Tile9p},
	{Tile2m, Tile5m, Tile8m, Tile3s, Tile6s, Tile9s, Tile1p, Tile4p, Tile7p},
	{Tile3m, Tile6m, Tile9m, Tile1s, Tile4s, Tile7s, Tile2p, Tile5p, Tile8p},
	{Tile3m, Tile6m, Tile9m, Tile2s, Tile5s, Tile8s, Tile1p, Tile4p, Tile7p},
}

// MatchKnittedStraight 返回立牌中完整包含的组合龙, 没有则返回nil
func MatchKnittedStraight(tt *Table) []Tile {
	for i := range KnittedStraights {
		seq := KnittedStraights[i][:]
		matched := true
		for _, t := range seq {
			if tt[t] == 0 {
				matched = false
				break
			}
		}
		if matched {
			return seq
		}
	}
	return nil
}

// InKnittedStraight 所有牌是否都属于同一种组合龙
func InKnittedStraight(tiles []Tile) bool {
	for i := range KnittedStraights {
		seq := KnittedStraights[i]
		all := true
		for _, t := range tiles {
			found := false
			for _, s := range seq {
				if s == t {
					found = true
					break
				}
			}
			if !found {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
