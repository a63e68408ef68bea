package fan

import "github.com/mcrhelper/mcrserver/internal/game/mahjong"

// 与具体拆分无关或只依赖少量信息的番种调整

func adjustByWinFlag(flag mahjong.WinFlag, t *Table) {
	if flag.Has(mahjong.WinLastTile) {
		t[LastTile] = 1
	}

	if flag.Has(mahjong.WinSelfDrawn) {
		t[SelfDrawn] = 1
		if flag.Has(mahjong.WinWallLast) {
			t[LastTileDraw] = 1
			t[SelfDrawn] = 0
		}
		if flag.Has(mahjong.WinKongInvolved) {
			t[OutWithReplacementTile] = 1
			t[SelfDrawn] = 0
		}
		return
	}

	if flag.Has(mahjong.WinWallLast) {
		t[LastTileClaim] = 1
	}
	if flag.Has(mahjong.WinKongInvolved) {
		// 抢杠和不计和绝张
		t[RobbingTheKong] = 1
		t[LastTile] = 0
	}
}

// adjustByInitialHands 天和 地和 人和, 庄家为东风位
func adjustByInitialHands(dealer bool, flag mahjong.WinFlag, t *Table) {
	if !flag.Has(mahjong.WinInitial) {
		return
	}

	switch selfDrawn := flag.Has(mahjong.WinSelfDrawn); {
	case selfDrawn && dealer:
		t[BlessingOfHeaven] = 1
	case selfDrawn:
		t[BlessingOfHumanII] = 1
	case dealer:
		t[BlessingOfEarth] = 1
	default:
		t[BlessingOfHumanI] = 1
	}
}

func adjustBySelfDrawn(fixed []mahjong.Pack, selfDrawn bool, t *Table) {
	melded := 0
	for _, p := range fixed {
		if p.IsMelded() {
			melded++
		}
	}

	switch melded {
	case 0:
		if selfDrawn {
			t[FullyConcealedHand] = 1
		} else {
			t[ConcealedHand] = 1
		}
	case 4:
		if selfDrawn {
			t[SelfDrawn] = 1
		} else {
			t[MeldedHand] = 1
		}
	default:
		if selfDrawn {
			t[SelfDrawn] = 1
		}
	}
}

func adjustByPairTile(pair mahjong.Tile, chows int, t *Table) {
	if chows == 4 {
		if pair.IsNumberedSuitQuick() {
			t[AllChows] = 1
		}
		return
	}

	// 双箭刻加箭牌雀头为小三元
	if t[TwoDragonsPungs] != 0 {
		if pair.IsDragon() {
			t[LittleThreeDragons] = 1
			t[TwoDragonsPungs] = 0
		}
		return
	}

	// 三风刻加风牌雀头为小四喜
	if t[BigThreeWinds] != 0 && pair.IsWind() {
		t[LittleFourWinds] = 1
		t[BigThreeWinds] = 0
	}
}

// adjustBySuits 缺一门 无字 混一色 清一色 五门齐
func adjustBySuits(tiles []mahjong.Tile, t *Table) {
	flag := 0
	for _, tile := range tiles {
		flag |= 1 << uint(tile.Suit())
	}

	if flag&0xF1 == 0 {
		t[NoHonors] = 1
	}

	for _, mask := range []int{0xE3, 0xE5, 0xE9} {
		if flag&mask == 0 {
			t[OneVoidedSuit]++
		}
	}

	// 缺两门
	if t[OneVoidedSuit] == 2 {
		t[OneVoidedSuit] = 0
		if t[NoHonors] == 0 {
			t[HalfFlush] = 1
		} else {
			t[FullFlush] = 1
			t[NoHonors] = 0
		}
	}

	if flag == 0x1E {
		winds, dragons := false, false
		for _, tile := range tiles {
			if tile.IsWind() {
				winds = true
			} else if tile.IsDragon() {
				dragons = true
			}
		}
		if winds && dragons {
			t[AllTypes] = 1
		}
	}
}

// adjustByRankRange 大于五 小于五 全大 全中 全小
func adjustByRankRange(tiles []mahjong.Tile, t *Table) {
	flag := 0
	for _, tile := range tiles {
		if !tile.IsNumberedSuitQuick() {
			return
		}
		flag |= 1 << uint(tile.Rank())
	}

	switch {
	case flag&0xFFE1 == 0:
		if flag&0x0010 != 0 {
			t[LowerFour] = 1
		} else {
			t[LowerTiles] = 1
		}
	case flag&0xFC3F == 0:
		if flag&0x0040 != 0 {
			t[UpperFour] = 1
		} else {
			t[UpperTiles] = 1
		}
	case flag&0xFF8F == 0:
		t[MiddleTiles] = 1
	}
}

// adjustByPacksTraits 全带幺 全带五 全双刻
func adjustByPacksTraits(packs []mahjong.Pack, t *Table) {
	var terminal, honor, five, even int
	for _, p := range packs {
		tile := p.Tile()
		if !tile.IsNumberedSuitQuick() {
			honor++
			continue
		}

		rank := tile.Rank()
		if p.Type() == mahjong.PackChow {
			switch rank {
			case 2, 8:
				terminal++
			case 4, 5, 6:
				five++
			}
			continue
		}

		switch rank {
		case 1, 9:
			terminal++
		case 5:
			five++
		case 2, 4, 6, 8:
			even++
		}
	}

	switch {
	case terminal+honor == len(packs):
		t[OutsideHand] = 1
	case five == len(packs):
		t[AllFive] = 1
	case even == len(packs):
		t[AllEvenPungs] = 1
	}
}

func all(tiles []mahjong.Tile, pred func(mahjong.Tile) bool) bool {
	for _, tile := range tiles {
		if !pred(tile) {
			return false
		}
	}
	return true
}

var redPeacock = map[mahjong.Tile]bool{
	mahjong.Tile1s: true,
	mahjong.Tile5s: true,
	mahjong.Tile7s: true,
	mahjong.Tile9s: true,
	mahjong.TileC:  true,
}

func isRedPeacock(tile mahjong.Tile) bool {
	return redPeacock[tile]
}

func isSimple(tile mahjong.Tile) bool {
	return !tile.IsTerminalOrHonor()
}

// adjustByTilesTraits 断幺 推不倒 绿一色 红孔雀 字一色 清幺九 混幺九
func adjustByTilesTraits(tiles []mahjong.Tile, t *Table) {
	if all(tiles, isSimple) {
		t[AllSimples] = 1
	}
	if all(tiles, mahjong.Tile.IsReversible) {
		t[ReversibleTiles] = 1
	}
	if all(tiles, mahjong.Tile.IsGreen) {
		t[AllGreen] = 1
	}
	if all(tiles, isRedPeacock) {
		t[RedPeacock] = 1
	}

	if t[AllSimples] != 0 {
		return
	}

	switch {
	case all(tiles, mahjong.Tile.IsHonor):
		t[AllHonors] = 1
	case all(tiles, mahjong.Tile.IsTerminal):
		t[AllTerminals] = 1
	case all(tiles, mahjong.Tile.IsTerminalOrHonor):
		t[AllTerminalsAndHonors] = 1
	}
}

// adjustByTilesHog 四归一, 杠不计
func adjustByTilesHog(tt *mahjong.Table, kongs int, t *Table) {
	cnt := 0
	for _, tile := range mahjong.AllTiles {
		if tt[tile] == 4 {
			cnt++
		}
	}
	t[TileHog] = cnt - kongs
}

// adjustByWinds 圈风刻 门风刻, 同时扣除重复计入的幺九刻
func adjustByWinds(tile mahjong.Tile, prevalent, seat mahjong.Wind, t *Table) {
	deducted := t[BigThreeWinds] != 0 || t[AllTerminalsAndHonors] != 0 ||
		t[AllHonors] != 0 || t[LittleFourWinds] != 0

	if tile == prevalent.Tile() {
		t[PrevalentWind] = 1
		if !deducted {
			t[PungOfTerminalsOrHonors]--
		}
	}
	if tile == seat.Tile() {
		t[SeatWind] = 1
		if seat != prevalent && !deducted {
			t[PungOfTerminalsOrHonors]--
		}
	}
}

// adjustByWaitingForm 边张 嵌张 单钓, 只在独听时调用
func adjustByWaitingForm(concealed []mahjong.Pack, win mahjong.Tile, t *Table) {
	if t[MeldedHand] != 0 || t[FourKongs] != 0 {
		return
	}

	const (
		posEdge   = 0x01
		posClosed = 0x02
		posSingle = 0x04
	)

	pos := 0
	for _, p := range concealed {
		mid := p.Tile()
		switch p.Type() {
		case mahjong.PackChow:
			if mid == win {
				pos |= posClosed
			} else if mid+1 == win || mid-1 == win {
				pos |= posEdge
			}
		case mahjong.PackPair:
			if mid == win {
				pos |= posSingle
			}
		}
	}

	switch {
	case pos&posEdge != 0:
		t[EdgeWait] = 1
	case pos&posClosed != 0:
		t[ClosedWait] = 1
	case pos&posSingle != 0:
		t[SingleWait] = 1
	}
}

func adjustByWinFlagForSpecialForm(seat mahjong.Wind, flag mahjong.WinFlag, t *Table) {
	adjustByWinFlag(flag, t)
	if flag.Has(mahjong.WinInitial) {
		adjustByInitialHands(seat == mahjong.WindEast, flag, t)
	}
}
