package fan

// exclusion 不计原则: 计入when中任一番种时, 不再计zero中的番种
type exclusion struct {
	when  []ID
	zero  []ID
	apply func(t *Table)
}

// exclusions 按番种表的顺序依次执行, 顺序影响结果
var exclusions = []exclusion{
	{when: []ID{BigFourWinds}, zero: []ID{AllPungs, PungOfTerminalsOrHonors}},
	{when: []ID{BigThreeDragons}, zero: []ID{DragonPung}},
	{when: []ID{AllGreen}, zero: []ID{HalfFlush, OneVoidedSuit}},
	{when: []ID{RedPeacock}, zero: []ID{AllPungs, PungOfTerminalsOrHonors, DragonPung, HalfFlush}},
	{when: []ID{FourKongs}, zero: []ID{SingleWait}},

	{when: []ID{AllTerminals}, zero: []ID{AllPungs, OutsideHand, PungOfTerminalsOrHonors, NoHonors, DoublePung}},
	{when: []ID{SevenPairs, TwicePureDoubleChows}, zero: []ID{DoublePung}},
	{
		when: []ID{TwicePureDoubleChows},
		zero: []ID{PureDoubleChow, ConcealedHand, FullyConcealedHand},
		apply: func(t *Table) {
			for _, id := range []ID{MixedDoubleChow, ShortStraight, TwoTerminalChows} {
				if t[id] > 1 {
					t[id] = 1
				}
			}
		},
	},
	{when: []ID{LittleFourWinds}, zero: []ID{PungOfTerminalsOrHonors}},
	{when: []ID{LittleThreeDragons}, zero: []ID{DragonPung}},

	{when: []ID{AllHonors}, zero: []ID{AllPungs, OutsideHand, PungOfTerminalsOrHonors, OneVoidedSuit}},
	{
		when: []ID{FourConcealedPungs},
		zero: []ID{AllPungs, ConcealedHand},
		apply: func(t *Table) {
			// 四暗刻不计不求人, 但自摸仍计
			if t[FullyConcealedHand] != 0 {
				t[FullyConcealedHand] = 0
				t[SelfDrawn] = 1
			}
		},
	},
	{when: []ID{PureTerminalChows}, zero: []ID{FullFlush, AllChows, NoHonors}},
	{when: []ID{FourPureShiftedPungs}, zero: []ID{AllPungs}},
	{when: []ID{AllTerminalsAndHonors}, zero: []ID{AllPungs, OutsideHand, PungOfTerminalsOrHonors}},

	{when: []ID{AllEvenPungs}, zero: []ID{AllPungs, AllSimples, NoHonors}},
	{when: []ID{UpperTiles}, zero: []ID{NoHonors}},
	{when: []ID{MiddleTiles}, zero: []ID{AllSimples, NoHonors}},
	{when: []ID{LowerTiles}, zero: []ID{NoHonors}},

	{when: []ID{ThreeSuitedTerminalChows}, zero: []ID{AllChows, NoHonors, MirrorHand}},
	{when: []ID{AllFive}, zero: []ID{AllSimples, NoHonors}},

	{when: []ID{UpperFour}, zero: []ID{NoHonors}},
	{when: []ID{LowerFour}, zero: []ID{NoHonors}},
	{
		when: []ID{BigThreeWinds},
		apply: func(t *Table) {
			// 三风刻不计三个幺九刻, 字一色和混幺九已经不计幺九刻
			if t[AllHonors] == 0 && t[AllTerminalsAndHonors] == 0 {
				t[PungOfTerminalsOrHonors] -= 3
			}
		},
	},

	{when: []ID{ReversibleTiles}, zero: []ID{OneVoidedSuit}},
	{when: []ID{LastTileDraw}, zero: []ID{SelfDrawn}},
	{when: []ID{OutWithReplacementTile}, zero: []ID{SelfDrawn}},

	{when: []ID{MeldedHand}, zero: []ID{SingleWait}},
	{when: []ID{TwoDragonsPungs}, zero: []ID{DragonPung}},
	{when: []ID{FullyConcealedHand}, zero: []ID{SelfDrawn}},
	{when: []ID{AllChows}, zero: []ID{NoHonors}},
	{when: []ID{AllSimples}, zero: []ID{NoHonors}},
	{when: []ID{BlessingOfHeaven, BlessingOfHumanII}, zero: []ID{SelfDrawn}},
}

func (e *exclusion) triggered(t *Table) bool {
	for _, id := range e.when {
		if t[id] != 0 {
			return true
		}
	}
	return false
}

// exclude 执行所有不计原则
func (t *Table) exclude() {
	for i := range exclusions {
		e := &exclusions[i]
		if !e.triggered(t) {
			continue
		}
		for _, id := range e.zero {
			t[id] = 0
		}
		if e.apply != nil {
			e.apply(t)
		}
	}
}
