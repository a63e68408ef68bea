package fan

import "github.com/mcrhelper/mcrserver/internal/game/mahjong"

// 面子组合的番种判断, 参数均为面子的中心牌(顺子为中间一张), 多数要求已排序

func shifted1(r0, r1, r2 int) bool {
	return r0+1 == r1 && r1+1 == r2
}

func shifted2(r0, r1, r2 int) bool {
	return r0+2 == r1 && r1+2 == r2
}

func mixedSuits(s0, s1, s2 int) bool {
	return s0 != s1 && s0 != s2 && s1 != s2
}

// shifted1Unordered 三个数无序地构成连续
func shifted1Unordered(r0, r1, r2 int) bool {
	return shifted1(r1, r0, r2) || shifted1(r2, r0, r1) || shifted1(r0, r1, r2) ||
		shifted1(r2, r1, r0) || shifted1(r0, r2, r1) || shifted1(r1, r2, r0)
}

func fourChowsFan(t0, t1, t2, t3 mahjong.Tile) ID {
	// 一色四步高
	if (t0+2 == t1 && t1+2 == t2 && t2+2 == t3) || (t0+1 == t1 && t1+1 == t2 && t2+1 == t3) {
		return FourPureShiftedChows
	}
	// 一色四同顺
	if t0 == t1 && t0 == t2 && t0 == t3 {
		return QuadrupleChow
	}
	return None
}

func threeChowsFan(t0, t1, t2 mahjong.Tile) ID {
	s0, s1, s2 := t0.Suit(), t1.Suit(), t2.Suit()
	r0, r1, r2 := t0.Rank(), t1.Rank(), t2.Rank()

	if mixedSuits(s0, s1, s2) {
		if shifted1Unordered(r1, r0, r2) {
			return MixedShiftedChows
		}
		if r0 == r1 && r1 == r2 {
			return MixedTripleChow
		}
		// 花龙: 三种花色的123 456 789
		if r0 != r1 && r0 != r2 && r1 != r2 && r0%3 == 2 && r1%3 == 2 && r2%3 == 2 {
			return MixedStraight
		}
		return None
	}

	switch {
	case t0+3 == t1 && t1+3 == t2:
		return PureStraight
	case shifted2(int(t0), int(t1), int(t2)), shifted1(int(t0), int(t1), int(t2)):
		return PureShiftedChows
	case t0 == t1 && t0 == t2:
		return PureTripleChow
	}
	return None
}

func twoChowsFanUnordered(t0, t1 mahjong.Tile) ID {
	if !mahjong.SameSuit(t0, t1) {
		if mahjong.SameRank(t0, t1) {
			return MixedDoubleChow
		}
		return None
	}

	switch r0, r1 := t0.Rank(), t1.Rank(); {
	case t0+3 == t1 || t1+3 == t0:
		return ShortStraight
	case (r0 == 2 && r1 == 8) || (r0 == 8 && r1 == 2):
		return TwoTerminalChows
	case t0 == t1:
		return PureDoubleChow
	}
	return None
}

func fourPungsFan(t0, t1, t2, t3 mahjong.Tile) ID {
	if t0.IsNumberedSuitQuick() && t0+1 == t1 && t1+1 == t2 && t2+1 == t3 {
		return FourPureShiftedPungs
	}
	if t0 == mahjong.TileE && t1 == mahjong.TileS && t2 == mahjong.TileW && t3 == mahjong.TileN {
		return BigFourWinds
	}
	return None
}

func threePungsFan(t0, t1, t2 mahjong.Tile) ID {
	if t0.IsNumberedSuitQuick() && t1.IsNumberedSuitQuick() && t2.IsNumberedSuitQuick() {
		s0, s1, s2 := t0.Suit(), t1.Suit(), t2.Suit()
		r0, r1, r2 := t0.Rank(), t1.Rank(), t2.Rank()

		if mixedSuits(s0, s1, s2) {
			if shifted1Unordered(r1, r0, r2) {
				return MixedShiftedPungs
			}
			if r0 == r1 && r1 == r2 {
				return TriplePung
			}
		} else if t0+1 == t1 && t1+1 == t2 {
			return PureShiftedPungs
		}
		return None
	}

	// 三张风牌
	if t0.IsWind() && t1.IsWind() && t2.IsWind() {
		return BigThreeWinds
	}
	if t0 == mahjong.TileC && t1 == mahjong.TileF && t2 == mahjong.TileP {
		return BigThreeDragons
	}
	return None
}

func twoPungsFanUnordered(t0, t1 mahjong.Tile) ID {
	if t0.IsNumberedSuitQuick() && t1.IsNumberedSuitQuick() {
		if mahjong.SameRank(t0, t1) {
			return DoublePung
		}
	} else if t0.IsDragon() && t1.IsDragon() {
		return TwoDragonsPungs
	}
	return None
}

func onePungFan(t mahjong.Tile) ID {
	if t.IsDragon() {
		return DragonPung
	}
	if t.IsTerminal() || t.IsWind() {
		return PungOfTerminalsOrHonors
	}
	return None
}

// oneChowExtraFan 已有三顺番种时, 第四组顺子与其他顺子的组合番
func oneChowExtraFan(t0, t1, t2, extra mahjong.Tile) ID {
	f0 := twoChowsFanUnordered(t0, extra)
	f1 := twoChowsFanUnordered(t1, extra)
	f2 := twoChowsFanUnordered(t2, extra)

	for _, id := range []ID{PureDoubleChow, MixedDoubleChow, ShortStraight, TwoTerminalChows} {
		if f0 == id || f1 == id || f2 == id {
			return id
		}
	}
	return None
}

// exclusionaryRule 两两组合的1番番种, 按一组面子只能与其他面子组合一次的原则削减
func exclusionaryRule(fans []ID, maxCnt int, t *Table) {
	var table [4]int
	cnt := 0
	for _, f := range fans {
		if f != None {
			cnt++
			table[f-PureDoubleChow]++
		}
	}

	// 优先削减数量多的, 然后是番值低的
	for limit := 1; cnt > maxCnt && limit >= 0; limit-- {
		for idx := 3; cnt > maxCnt && idx >= 0; idx-- {
			for table[idx] > limit && cnt > maxCnt {
				table[idx]--
				cnt--
			}
		}
	}

	t[PureDoubleChow] = table[0]
	t[MixedDoubleChow] = table[1]
	t[ShortStraight] = table[2]
	t[TwoTerminalChows] = table[3]
}

func threeOfFourChows(t0, t1, t2, extra mahjong.Tile, t *Table) bool {
	f := threeChowsFan(t0, t1, t2)
	if f == None {
		return false
	}
	t[f] = 1
	if f = oneChowExtraFan(t0, t1, t2, extra); f != None {
		t[f] = 1
	}
	return true
}

func calculateFourChows(mid [4]mahjong.Tile, t *Table) {
	if f := fourChowsFan(mid[0], mid[1], mid[2], mid[3]); f != None {
		t[f] = 1
		return
	}

	if threeOfFourChows(mid[0], mid[1], mid[2], mid[3], t) ||
		threeOfFourChows(mid[0], mid[1], mid[3], mid[2], t) ||
		threeOfFourChows(mid[0], mid[2], mid[3], mid[1], t) ||
		threeOfFourChows(mid[1], mid[2], mid[3], mid[0], t) {
		return
	}

	fans := []ID{
		twoChowsFanUnordered(mid[0], mid[1]),
		twoChowsFanUnordered(mid[0], mid[2]),
		twoChowsFanUnordered(mid[0], mid[3]),
		twoChowsFanUnordered(mid[1], mid[2]),
		twoChowsFanUnordered(mid[1], mid[3]),
		twoChowsFanUnordered(mid[2], mid[3]),
	}

	// 与其他三组都不构成番种的顺子不占组合数
	maxCnt := 3
	for _, g := range [4][3]int{{0, 1, 2}, {0, 3, 4}, {1, 3, 5}, {2, 4, 5}} {
		if fans[g[0]] == None && fans[g[1]] == None && fans[g[2]] == None {
			maxCnt--
		}
	}
	if maxCnt > 0 {
		exclusionaryRule(fans, maxCnt, t)
	}
}

func calculateThreeChows(mid [3]mahjong.Tile, t *Table) {
	if f := threeChowsFan(mid[0], mid[1], mid[2]); f != None {
		t[f] = 1
		return
	}

	fans := []ID{
		twoChowsFanUnordered(mid[0], mid[1]),
		twoChowsFanUnordered(mid[0], mid[2]),
		twoChowsFanUnordered(mid[1], mid[2]),
	}
	exclusionaryRule(fans, 2, t)
}

func calculateTwoChows(t0, t1 mahjong.Tile, t *Table) {
	if f := twoChowsFanUnordered(t0, t1); f != None {
		t[f]++
	}
}

func calculateFourPungs(mid [4]mahjong.Tile, t *Table) {
	if f := fourPungsFan(mid[0], mid[1], mid[2], mid[3]); f != None {
		t[f] = 1
		return
	}

	// 三刻番种, free为没有参与组合的一组
	free := -1
	for _, c := range []struct {
		idx  [3]int
		free int
	}{
		{[3]int{0, 1, 2}, 3},
		{[3]int{0, 1, 3}, 2},
		{[3]int{0, 2, 3}, 1},
		{[3]int{1, 2, 3}, 0},
	} {
		if f := threePungsFan(mid[c.idx[0]], mid[c.idx[1]], mid[c.idx[2]]); f != None {
			t[f] = 1
			free = c.free
			break
		}
	}

	if free >= 0 {
		for i := range mid {
			if i == free {
				continue
			}
			if f := twoPungsFanUnordered(mid[i], mid[free]); f != None {
				t[f]++
				break
			}
		}
		return
	}

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if f := twoPungsFanUnordered(mid[i], mid[j]); f != None {
				t[f]++
			}
		}
	}
}

func calculateThreePungs(mid [3]mahjong.Tile, t *Table) {
	if f := threePungsFan(mid[0], mid[1], mid[2]); f != None {
		t[f] = 1
		return
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if f := twoPungsFanUnordered(mid[i], mid[j]); f != None {
				t[f]++
			}
		}
	}
}

func calculateTwoPungs(t0, t1 mahjong.Tile, t *Table) {
	if f := twoPungsFanUnordered(t0, t1); f != None {
		t[f]++
	}
}

// calculateKongs 杠与暗刻
func calculateKongs(concealedPungs, meldedKongs, concealedKongs int, t *Table) {
	// 暗杠也算暗刻
	concealed := concealedPungs + concealedKongs
	switch kongs := meldedKongs + concealedKongs; kongs {
	case 0, 1:
		if kongs == 1 {
			if meldedKongs == 1 {
				t[MeldedKong] = 1
			} else {
				t[ConcealedKong] = 1
			}
		}
	case 2:
		switch concealedKongs {
		case 0:
			t[TwoMeldedKongs] = 1
		case 1:
			t[ConcealedKongAndMeldedKong] = 1
		case 2:
			t[TwoConcealedKongs] = 1
		}
	case 3:
		t[ThreeKongs] = 1
	case 4:
		t[FourKongs] = 1
	}

	switch concealed {
	case 2:
		// 双暗杠不再计双暗刻
		if t[TwoConcealedKongs] == 0 {
			t[TwoConcealedPungs] = 1
		}
	case 3:
		t[ThreeConcealedPungs] = 1
	case 4:
		t[FourConcealedPungs] = 1
	}
}
