package fan

import (
	"sort"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
)

// Param 算番参数
type Param struct {
	Hand          mahjong.Hand
	WinTile       mahjong.Tile
	FlowerCount   int
	Flag          mahjong.WinFlag
	PrevalentWind mahjong.Wind
	SeatWind      mahjong.Wind
}

func (p *Param) validate() error {
	if !p.Hand.Validate() {
		return errutil.ErrWrongTilesCount
	}
	if !p.WinTile.Valid() {
		return errutil.ErrIllegalWinTile
	}
	if !p.PrevalentWind.Valid() || !p.SeatWind.Valid() {
		return errutil.ErrIllegalWind
	}
	if p.FlowerCount < 0 || p.FlowerCount > 8 {
		return errutil.ErrIllegalParameter
	}
	return nil
}

// normalizeFlag 去掉与牌面矛盾的和牌标志
func normalizeFlag(flag mahjong.WinFlag, fixedPacks []mahjong.Pack, fixed, standing *mahjong.Table, win mahjong.Tile) mahjong.WinFlag {
	// 和绝张: 手中没有其他的和牌张, 碰出的刻子再和第四张一定是绝张
	if standing[win] != 1 {
		flag &^= mahjong.WinLastTile
	}
	if fixed[win] == 3 {
		flag |= mahjong.WinLastTile
	}

	if flag.Has(mahjong.WinKongInvolved) {
		if flag.Has(mahjong.WinSelfDrawn) {
			// 杠上开花需要有杠
			hasKong := false
			for _, p := range fixedPacks {
				if p.Type() == mahjong.PackKong {
					hasKong = true
					break
				}
			}
			if !hasKong {
				flag &^= mahjong.WinKongInvolved
			}
		} else if fixed[win] != 0 || standing[win] != 1 {
			// 抢杠和的牌不可能在自己手中
			flag &^= mahjong.WinKongInvolved
		}
	}
	return flag
}

// Calculate 算番, 返回总番数(含花牌)和番种表
func Calculate(p *Param) (int, *Table, error) {
	if err := p.validate(); err != nil {
		return 0, nil, err
	}

	hand := &p.Hand
	win := p.WinTile
	fixedCnt := len(hand.FixedPacks)

	fixed := &mahjong.Table{}
	fixed.AddPacks(hand.FixedPacks...)
	standing := mahjong.MapTiles(hand.StandingTiles...)
	standing[win]++

	for _, t := range mahjong.AllTiles {
		if fixed[t]+standing[t] > 4 {
			return 0, nil, errutil.ErrTileCountGreaterThan4
		}
	}

	unique := mahjong.Unique(fixed, standing)
	flag := normalizeFlag(p.Flag, hand.FixedPacks, fixed, standing, win)

	maxFan := 0
	selected := &Table{}
	switch fixedCnt {
	case 0:
		if calculateSpecialForm(standing, win, unique, p.SeatWind, flag, selected) ||
			calculateKnittedStraight(p, fixed, standing, flag, selected) ||
			calculateNineGates(standing, win, p.SeatWind, flag, selected) {
			maxFan = selected.Total()
		}
	case 1:
		if calculateKnittedStraight(p, fixed, standing, flag, selected) {
			maxFan = selected.Total()
		}
	}

	// 七对还要与基本和型比较
	if maxFan == 0 || selected[SevenPairs] == 1 {
		uniqueWait := !heavenly(p.SeatWind, fixedCnt, flag) && uniqueWaiting(standing, win)
		generic := false
		for _, d := range mahjong.DivideWinHand(standing, hand.FixedPacks) {
			current := &Table{}
			calculateRegular(p, d.Packs, fixed, standing, unique, uniqueWait, flag, current)
			fan := current.Total()
			switch {
			case fan > maxFan:
				maxFan = fan
				selected = current
				generic = true
			case fan == maxFan && generic && (current[PureTripleChow] == 1 || current[TriplePung] == 1):
				// 番数相同时取一色三同顺或三同刻的拆分
				selected = current
			}
		}
	}

	if maxFan == 0 {
		return 0, nil, errutil.ErrNotWin
	}

	selected[FlowerTiles] = p.FlowerCount
	return maxFan + p.FlowerCount, selected, nil
}

// calculateRegular 基本和型的一种拆分
func calculateRegular(p *Param, packs [5]mahjong.Pack, fixed, standing *mahjong.Table, unique []mahjong.Tile, uniqueWait bool, flag mahjong.WinFlag, t *Table) {
	var (
		pair                        mahjong.Pack
		chows, pungs                []mahjong.Pack
		concealedPungs              int
		meldedKongs, concealedKongs int
	)

	for _, pack := range packs {
		switch pack.Type() {
		case mahjong.PackChow:
			chows = append(chows, pack)
		case mahjong.PackPung:
			pungs = append(pungs, pack)
			if !pack.IsMelded() {
				concealedPungs++
			}
		case mahjong.PackKong:
			pungs = append(pungs, pack)
			if pack.IsMelded() {
				meldedKongs++
			} else {
				concealedKongs++
			}
		case mahjong.PackPair:
			pair = pack
		default:
			return
		}
	}

	if pair == 0 || len(chows)+len(pungs) != 4 {
		return
	}

	win := p.WinTile
	fixedCnt := len(p.Hand.FixedPacks)
	selfDrawn := flag.Has(mahjong.WinSelfDrawn)

	adjustByWinFlag(flag, t)

	// 点和的牌组成的刻子算明刻, 除非和牌张可以看作在顺子中
	if !selfDrawn {
		inChow := false
		for _, c := range chows {
			if mid := c.Tile(); !c.IsMelded() && (mid-1 == win || mid == win || mid+1 == win) {
				inChow = true
				break
			}
		}
		if !inChow {
			for _, pung := range pungs {
				if pung.Tile() == win && !pung.IsMelded() {
					concealedPungs--
				}
			}
		}
	}

	if len(pungs) > 0 {
		calculateKongs(concealedPungs, meldedKongs, concealedKongs, t)

		if len(pungs) == 4 && t[FourKongs] == 0 && t[FourConcealedPungs] == 0 {
			t[AllPungs] = 1
		}

		for _, pung := range pungs {
			if f := onePungFan(pung.Tile()); f != None {
				t[f]++
			}
		}
	}

	switch len(chows) {
	case 4:
		switch {
		case isThreeSuitedTerminalChows(chows, pair):
			t[ThreeSuitedTerminalChows] = 1
		case isPureTerminalChows(chows, pair):
			t[PureTerminalChows] = 1
		default:
			mid, _ := chowMids(chows)
			calculateFourChows(mid, t)
			if mid[0] == mid[1] && mid[2] == mid[3] && mid[0] != mid[2] {
				t[TwicePureDoubleChows] = 1
			}
		}
	case 3:
		mid := sortedMids(chows)
		calculateThreeChows([3]mahjong.Tile{mid[0], mid[1], mid[2]}, t)
	case 2:
		calculateTwoChows(chows[0].Tile(), chows[1].Tile(), t)
		calculateTwoPungs(pungs[0].Tile(), pungs[1].Tile(), t)
	case 1:
		mid := sortedMids(pungs)
		calculateThreePungs([3]mahjong.Tile{mid[0], mid[1], mid[2]}, t)
	case 0:
		mid := sortedMids(pungs)
		calculateFourPungs([4]mahjong.Tile{mid[0], mid[1], mid[2], mid[3]}, t)
	}

	if t[TwicePureDoubleChows] == 0 && isMirrorHand(packs[:], pair) {
		t[MirrorHand] = 1
	}

	adjustBySelfDrawn(p.Hand.FixedPacks, selfDrawn, t)

	if fixedCnt == 0 && flag.Has(mahjong.WinInitial) {
		adjustByInitialHands(p.SeatWind == mahjong.WindEast, flag, t)
	}

	adjustByPairTile(pair.Tile(), len(chows), t)
	adjustByPacksTraits(packs[:], t)

	merged := *standing
	for _, tile := range mahjong.AllTiles {
		merged[tile] += fixed[tile]
	}

	adjustBySuits(unique, t)
	adjustByTilesTraits(unique, t)
	adjustByRankRange(unique, t)
	if t[QuadrupleChow] == 0 {
		adjustByTilesHog(&merged, meldedKongs+concealedKongs, t)
	}

	if uniqueWait {
		adjustByWaitingForm(packs[fixedCnt:], win, t)
	}

	t.exclude()

	adjustByWindPungs(p, pair.Tile(), pungs, t)

	if t.empty() {
		t[ChickenHand] = 1
	}
}

// adjustByWindPungs 圈风刻 门风刻 小三风
func adjustByWindPungs(p *Param, pair mahjong.Tile, pungs []mahjong.Pack, t *Table) {
	deduct := 0
	hasPrevalent, hasSeat := false, false
	if pair.IsWind() {
		winds := 0
		for _, pung := range pungs {
			tile := pung.Tile()
			if !tile.IsWind() {
				continue
			}
			winds++
			if tile == p.PrevalentWind.Tile() {
				hasPrevalent = true
			}
			if tile == p.SeatWind.Tile() {
				hasSeat = true
			}
		}
		if winds == 2 {
			t[LittleThreeWinds] = 1
			deduct = 2
		}
	}

	if t[BigFourWinds] == 0 {
		for _, pung := range pungs {
			if tile := pung.Tile(); tile.IsWind() {
				adjustByWinds(tile, p.PrevalentWind, p.SeatWind, t)
			}
		}
	}

	// 小三风不计两个风刻的幺九刻, 圈风门风已经扣除的除外
	if t[LittleThreeWinds] != 0 && deduct > 0 {
		if hasPrevalent {
			deduct--
		}
		if hasSeat && p.SeatWind != p.PrevalentWind {
			deduct--
		}
		if deduct > 0 && t[PungOfTerminalsOrHonors] >= deduct {
			t[PungOfTerminalsOrHonors] -= deduct
		}
	}
}

func sortedMids(packs []mahjong.Pack) []mahjong.Tile {
	mid := make([]mahjong.Tile, len(packs))
	for i, p := range packs {
		mid[i] = p.Tile()
	}
	sort.Slice(mid, func(i, j int) bool { return mid[i] < mid[j] })
	return mid
}

// isPureTerminalChows 一色双龙会: 同花色的两组123 两组789 加5的雀头
func isPureTerminalChows(chows []mahjong.Pack, pair mahjong.Pack) bool {
	pairTile := pair.Tile()
	if pairTile.Rank() != 5 {
		return false
	}

	lower, upper := 0, 0
	for _, c := range chows {
		tile := c.Tile()
		if tile.Suit() != pairTile.Suit() {
			return false
		}
		switch tile.Rank() {
		case 2:
			lower++
		case 8:
			upper++
		default:
			return false
		}
	}
	return lower == 2 && upper == 2
}

// isThreeSuitedTerminalChows 三色双龙会: 两种花色的老少副加另一花色5的雀头
func isThreeSuitedTerminalChows(chows []mahjong.Pack, pair mahjong.Pack) bool {
	pairTile := pair.Tile()
	if pairTile.Rank() != 5 {
		return false
	}

	var lower, upper [mahjong.SuitHonors]int
	for _, c := range chows {
		tile := c.Tile()
		if tile.Suit() == pairTile.Suit() {
			return false
		}
		switch tile.Rank() {
		case 2:
			lower[tile.Suit()]++
		case 8:
			upper[tile.Suit()]++
		default:
			return false
		}
	}

	for s := mahjong.SuitCharacters; s <= mahjong.SuitDots; s++ {
		if s == pairTile.Suit() {
			continue
		}
		if lower[s] == 0 || upper[s] == 0 {
			return false
		}
	}
	return true
}

// isMirrorHand 镜同和: 两种花色的面子完全相同, 雀头为第三种花色
func isMirrorHand(packs []mahjong.Pack, pair mahjong.Pack) bool {
	type sig struct {
		chow bool
		rank int
	}

	suits := map[int][]sig{}
	for _, p := range packs {
		if p.Type() == mahjong.PackPair {
			continue
		}
		tile := p.Tile()
		if tile.IsHonor() {
			return false
		}
		suits[tile.Suit()] = append(suits[tile.Suit()], sig{p.Type() == mahjong.PackChow, tile.Rank()})
	}

	if len(suits) != 2 {
		return false
	}
	if _, ok := suits[pair.Tile().Suit()]; ok {
		return false
	}

	var groups [][]sig
	for _, g := range suits {
		if len(g) != 2 {
			return false
		}
		sort.Slice(g, func(i, j int) bool {
			if g[i].chow != g[j].chow {
				return g[i].chow
			}
			return g[i].rank < g[j].rank
		})
		groups = append(groups, g)
	}
	return groups[0][0] == groups[1][0] && groups[0][1] == groups[1][1]
}
