package fan

import (
	"sort"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
)

// 特殊和型: 七对 连七对 全不靠 七星不靠 十三幺 组合龙 九莲宝灯

func isSevenPairs(tt *mahjong.Table) bool {
	for _, t := range mahjong.AllTiles {
		if tt[t]&1 != 0 {
			return false
		}
	}
	return true
}

// isSevenShiftedPairs 同一花色连续7种牌各两张
func isSevenShiftedPairs(tt *mahjong.Table, suit int) bool {
	if suit < mahjong.SuitCharacters || suit > mahjong.SuitDots {
		return false
	}

	// 3到7必须都有
	t3 := mahjong.MakeTile(suit, 3)
	for i := mahjong.Tile(0); i < 5; i++ {
		if tt[t3+i] != 2 {
			return false
		}
	}
	if tt[t3-1] == 2 {
		return tt[t3-2] == 2 || tt[t3+5] == 2
	}
	return tt[t3+5] == 2 && tt[t3+6] == 2
}

func isThirteenOrphans(unique []mahjong.Tile) bool {
	if len(unique) != len(mahjong.ThirteenOrphans) {
		return false
	}
	for i, t := range mahjong.ThirteenOrphans {
		if unique[i] != t {
			return false
		}
	}
	return true
}

// calculateHonorsAndKnittedTiles 全不靠与七星不靠, 14张牌必须各不相同
func calculateHonorsAndKnittedTiles(unique []mahjong.Tile, t *Table) bool {
	if len(unique) != 14 {
		return false
	}

	numbered := len(unique)
	for i, tile := range unique {
		if tile.IsHonor() {
			numbered = i
			break
		}
	}
	if numbered > 9 || numbered < 7 {
		return false
	}
	if !mahjong.InKnittedStraight(unique[:numbered]) {
		return false
	}

	// unique按规范顺序排列, 字牌只可能是七种字牌中的若干种
	if numbered == 7 {
		t[GreaterHonorsAndKnittedTiles] = 1
		return true
	}
	t[LesserHonorsAndKnittedTiles] = 1
	if numbered == 9 {
		t[KnittedStraight] = 1
	}
	return true
}

// calculateSpecialForm 七对 全不靠 十三幺
func calculateSpecialForm(standing *mahjong.Table, win mahjong.Tile, unique []mahjong.Tile, seat mahjong.Wind, flag mahjong.WinFlag, t *Table) bool {
	if isSevenPairs(standing) {
		suit := win.Suit()
		if isSevenShiftedPairs(standing, suit) {
			t[SevenShiftedPairs] = 1
			if standing[mahjong.MakeTile(suit, 1)] == 0 && standing[mahjong.MakeTile(suit, 9)] == 0 {
				t[AllSimples] = 1
			}
			adjustByWinFlagForSpecialForm(seat, flag, t)
			return true
		}

		t[SevenPairs] = 1
		adjustBySuits(unique, t)
		adjustByTilesTraits(unique, t)
		adjustByRankRange(unique, t)
		adjustByTilesHog(standing, 0, t)
		adjustByWinFlagForSpecialForm(seat, flag, t)
		t.exclude()

		// 两般高: 七对同时可以拆成两组一般高
		for _, d := range mahjong.DivideWinHand(standing, nil) {
			if mid, ok := chowMids(d.Packs[:4]); ok && mid[0] == mid[1] && mid[2] == mid[3] && mid[0] != mid[2] {
				t[TwicePureDoubleChows] = 1
				break
			}
		}
		return true
	}

	if calculateHonorsAndKnittedTiles(unique, t) {
		adjustByWinFlagForSpecialForm(seat, flag, t)
		return true
	}

	if isThirteenOrphans(unique) {
		t[ThirteenOrphans] = 1
		adjustByWinFlagForSpecialForm(seat, flag, t)
		return true
	}
	return false
}

// chowMids 4组都是顺子时返回排序后的中心牌
func chowMids(packs []mahjong.Pack) ([4]mahjong.Tile, bool) {
	var mid [4]mahjong.Tile
	if len(packs) != 4 {
		return mid, false
	}
	for i, p := range packs {
		if p.Type() != mahjong.PackChow {
			return mid, false
		}
		mid[i] = p.Tile()
	}
	sort.Slice(mid[:], func(i, j int) bool { return mid[i] < mid[j] })
	return mid, true
}

func heavenly(seat mahjong.Wind, fixedCnt int, flag mahjong.WinFlag) bool {
	return seat == mahjong.WindEast && fixedCnt == 0 && flag.Has(mahjong.WinInitial|mahjong.WinSelfDrawn)
}

// calculateNineGates 九莲宝灯, 天和时不要求和牌张的位置
func calculateNineGates(standing *mahjong.Table, win mahjong.Tile, seat mahjong.Wind, flag mahjong.WinFlag, t *Table) bool {
	if !win.IsNumberedSuitQuick() {
		return false
	}

	s := win.Suit()
	tile := func(r int) mahjong.Tile { return mahjong.MakeTile(s, r) }

	var r int
	if heavenly(seat, 0, flag) {
		// 天和没有和牌张, 找出多出的那一张
		var extra mahjong.Tile
		for i := 2; i <= 8; i++ {
			switch standing[tile(i)] {
			case 0:
				return false
			case 2:
				extra = tile(i)
			}
		}

		switch {
		case extra != 0:
			if standing[tile(1)] != 3 || standing[tile(9)] != 3 {
				return false
			}
			r = extra.Rank()
		case standing[tile(1)] == 4 && standing[tile(9)] == 3:
			r = 1
		case standing[tile(1)] == 3 && standing[tile(9)] == 4:
			r = 9
		default:
			return false
		}
	} else {
		r = win.Rank()
		ones, nines := 3, 3
		switch r {
		case 1:
			ones = 4
		case 9:
			nines = 4
		default:
			if standing[win] != 2 {
				return false
			}
		}
		if standing[tile(1)] != ones || standing[tile(9)] != nines {
			return false
		}
		for i := 2; i <= 8; i++ {
			if i != r && standing[tile(i)] != 1 {
				return false
			}
		}
	}

	t[NineGates] = 1

	// 九莲宝灯不计清一色 门前清 幺九刻, 其余按和牌张的位置计
	switch r {
	case 1, 9:
		t[PureStraight] = 1
		t[TileHog] = 1
	case 2, 8:
		t[TwoConcealedPungs] = 1
		t[ShortStraight] = 1
		t[PungOfTerminalsOrHonors] = 1
	case 5:
		t[TwoConcealedPungs] = 1
		t[PungOfTerminalsOrHonors] = 1
	default:
		t[ShortStraight] = 1
	}

	adjustByWinFlagForSpecialForm(seat, flag, t)
	return true
}

// calculateKnittedStraight 组合龙加一组面子一对雀头, 最多一组副露
func calculateKnittedStraight(p *Param, fixed, standing *mahjong.Table, flag mahjong.WinFlag, t *Table) bool {
	if !standing.HasPair() {
		return false
	}

	seq := mahjong.MatchKnittedStraight(standing)
	if seq == nil {
		return false
	}

	rest := *standing
	for _, tile := range seq {
		rest[tile]--
	}

	fixedCnt := len(p.Hand.FixedPacks)
	var work mahjong.Division
	if fixedCnt == 1 {
		work.Packs[3] = p.Hand.FixedPacks[0]
	}
	divisions := mahjong.DivideFrom(&rest, work, fixedCnt+3)
	if len(divisions) != 1 {
		return false
	}

	packs := divisions[0].Packs
	involved := packs[3]
	pair := packs[4].Tile()
	win := p.WinTile

	t[KnittedStraight] = 1

	involvedTile := involved.Tile()
	switch involvedType := involved.Type(); {
	case involvedType == mahjong.PackChow:
		if pair.IsNumberedSuitQuick() {
			t[AllChows] = 1
		}
		if fixed[pair]+standing[pair] == 4 {
			t[TileHog] = 1
		}

	case involvedTile.IsWind():
		t[PungOfTerminalsOrHonors] = 1
		adjustByWinds(involvedTile, p.PrevalentWind, p.SeatWind, t)
		if pair.IsDragon() {
			t[AllTypes] = 1
		}

	case involvedTile.IsDragon():
		t[DragonPung] = 1
		if pair.IsWind() {
			t[AllTypes] = 1
		}

	default:
		if involvedTile.IsTerminal() {
			t[PungOfTerminalsOrHonors] = 1
		}
		if !pair.IsHonor() {
			t[NoHonors] = 1
		}
		if involvedType != mahjong.PackKong && fixed[involvedTile]+standing[involvedTile] == 4 {
			t[TileHog] = 1
		}
	}

	adjustByWinFlag(flag, t)

	if involved.IsMelded() {
		if involved.Type() == mahjong.PackKong {
			t[MeldedKong] = 1
		}
	} else {
		if involved.Type() == mahjong.PackKong {
			t[ConcealedKong] = 1
		}
		if flag.Has(mahjong.WinSelfDrawn) {
			t[FullyConcealedHand] = 1
			t[SelfDrawn] = 0
		} else {
			t[ConcealedHand] = 1
		}
	}

	if fixedCnt == 0 && flag.Has(mahjong.WinInitial) {
		adjustByInitialHands(p.SeatWind == mahjong.WindEast, flag, t)
	}

	if fixedCnt == 0 {
		// 和牌张补齐组合龙时不存在边嵌钓
		if !heavenly(p.SeatWind, fixedCnt, flag) && rest[win] > 0 && uniqueWaiting(&rest, win) {
			adjustByWaitingForm(packs[3:], win, t)
		}
	} else if !inTiles(seq, win) || standing[win] == 3 {
		t[SingleWait] = 1
	}

	t.exclude()
	return true
}

func inTiles(tiles []mahjong.Tile, t mahjong.Tile) bool {
	for _, tile := range tiles {
		if tile == t {
			return true
		}
	}
	return false
}
