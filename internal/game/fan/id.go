// Package fan 国标麻将算番
package fan

import "fmt"

// ID 番种
type ID int

const (
	None ID = iota

	// 88番
	BigFourWinds
	BigThreeDragons
	AllGreen
	NineGates
	FourKongs
	SevenShiftedPairs
	ThirteenOrphans

	// 64番
	AllTerminals
	LittleFourWinds
	LittleThreeDragons
	AllHonors
	FourConcealedPungs
	PureTerminalChows

	// 48番
	QuadrupleChow
	FourPureShiftedPungs

	// 32番
	FourPureShiftedChows
	ThreeKongs
	AllTerminalsAndHonors

	// 24番
	SevenPairs
	GreaterHonorsAndKnittedTiles
	AllEvenPungs
	FullFlush
	PureTripleChow
	PureShiftedPungs
	UpperTiles
	MiddleTiles
	LowerTiles

	// 16番
	PureStraight
	ThreeSuitedTerminalChows
	PureShiftedChows
	AllFive
	TriplePung
	ThreeConcealedPungs

	// 12番
	LesserHonorsAndKnittedTiles
	KnittedStraight
	UpperFour
	LowerFour
	BigThreeWinds

	// 8番
	MixedStraight
	ReversibleTiles
	MixedTripleChow
	MixedShiftedPungs
	ChickenHand
	LastTileDraw
	LastTileClaim
	OutWithReplacementTile
	RobbingTheKong

	// 6番
	AllPungs
	HalfFlush
	MixedShiftedChows
	AllTypes
	MeldedHand
	TwoConcealedKongs
	TwoDragonsPungs

	// 4番
	OutsideHand
	FullyConcealedHand
	TwoMeldedKongs
	LastTile

	// 2番
	DragonPung
	PrevalentWind
	SeatWind
	ConcealedHand
	AllChows
	TileHog
	DoublePung
	TwoConcealedPungs
	ConcealedKong
	AllSimples

	// 1番
	PureDoubleChow
	MixedDoubleChow
	ShortStraight
	TwoTerminalChows
	PungOfTerminalsOrHonors
	MeldedKong
	OneVoidedSuit
	NoHonors
	EdgeWait
	ClosedWait
	SingleWait
	SelfDrawn

	FlowerTiles
	ConcealedKongAndMeldedKong

	// 天地人和
	BlessingOfHeaven
	BlessingOfEarth
	BlessingOfHumanI
	BlessingOfHumanII

	TwicePureDoubleChows
	MirrorHand
	RedPeacock
	LittleThreeWinds

	Count
)

// Names 中文番名
var Names = [Count]string{
	"无",
	"大四喜", "大三元", "绿一色", "九莲宝灯", "四杠", "连七对", "十三幺",
	"清幺九", "小四喜", "小三元", "字一色", "四暗刻", "一色双龙会",
	"一色四同顺", "一色四节高",
	"一色四步高", "三杠", "混幺九",
	"七对", "七星不靠", "全双刻", "清一色", "一色三同顺", "一色三节高", "全大", "全中", "全小",
	"清龙", "三色双龙会", "一色三步高", "全带五", "三同刻", "三暗刻",
	"全不靠", "组合龙", "大于五", "小于五", "三风刻",
	"花龙", "推不倒", "三色三同顺", "三色三节高", "无番和", "妙手回春", "海底捞月", "杠上开花", "抢杠和",
	"碰碰和", "混一色", "三色三步高", "五门齐", "全求人", "双暗杠", "双箭刻",
	"全带幺", "不求人", "双明杠", "和绝张",
	"箭刻", "圈风刻", "门风刻", "门前清", "平和", "四归一", "双同刻", "双暗刻", "暗杠", "断幺",
	"一般高", "喜相逢", "连六", "老少副", "幺九刻", "明杠", "缺一门", "无字", "独听・边张", "独听・嵌张", "独听・单钓", "自摸",
	"花牌", "明暗杠",
	"天和", "地和", "人和I", "人和II",
	"两般高", "镜同和", "红孔雀", "小三风",
}

var EnglishNames = [Count]string{
	"None",
	"Big Four Winds", "Big Three Dragons", "All Green", "Nine Gates", "Four Kongs", "Seven Shifted Pairs", "Thirteen Orphans",
	"All Terminals", "Little Four Winds", "Little Three Dragons", "All Honors", "Four Concealed Pungs", "Pure Terminal Chows",
	"Quadruple Chow", "Four Pure Shifted Pungs",
	"Four Pure Shifted Chows", "Three Kongs", "All Terminals and Honors",
	"Seven Pairs", "Greater Honors and Knitted Tiles", "All Even Pungs", "Full Flush", "Pure Triple Chow",
	"Pure Shifted Pungs", "Upper Tiles", "Middle Tiles", "Lower Tiles",
	"Pure Straight", "Three-Suited Terminal Chows", "Pure Shifted Chows", "All Five", "Triple Pung", "Three Concealed Pungs",
	"Lesser Honors and Knitted Tiles", "Knitted Straight", "Upper Four", "Lower Four", "Big Three Winds",
	"Mixed Straight", "Reversible Tiles", "Mixed Triple Chow", "Mixed Shifted Pungs", "Chicken Hand",
	"Last Tile Draw", "Last Tile Claim", "Out with Replacement Tile", "Robbing the Kong",
	"All Pungs", "Half Flush", "Mixed Shifted Chows", "All Types", "Melded Hand", "Two Concealed Kongs", "Two Dragons Pungs",
	"Outside Hand", "Fully Concealed Hand", "Two Melded Kongs", "Last Tile",
	"Dragon Pung", "Prevalent Wind", "Seat Wind", "Concealed Hand", "All Chows", "Tile Hog", "Double Pung",
	"Two Concealed Pungs", "Concealed Kong", "All Simples",
	"Pure Double Chow", "Mixed Double Chow", "Short Straight", "Two Terminal Chows", "Pung of Terminals or Honors",
	"Melded Kong", "One Voided Suit", "No Honors", "Edge Wait", "Closed Wait", "Single Wait", "Self-Drawn",
	"Flower Tiles", "Concealed Kong and Melded Kong",
	"Blessing of Heaven", "Blessing of Earth", "Blessing of Human I", "Blessing of Human II",
	"Twice Pure Double Chows", "Mirror Hand", "Red Peacock", "Little Three Winds",
}

// Values 番值
var Values = [Count]int{
	0,
	88, 88, 88, 88, 88, 88, 88,
	64, 64, 64, 64, 64, 64,
	48, 48,
	32, 32, 32,
	24, 24, 24, 24, 24, 24, 24, 24, 24,
	16, 16, 16, 16, 16, 16,
	12, 12, 12, 12, 12,
	8, 8, 8, 8, 8, 8, 8, 8, 8,
	6, 6, 6, 6, 6, 6, 6,
	4, 4, 4, 4,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 5,
	8, 8, 8, 8,
	16, 12, 88, 8,
}

func (id ID) Valid() bool {
	return id > None && id < Count
}

func (id ID) Name() string {
	if id < None || id >= Count {
		return ""
	}
	return Names[id]
}

func (id ID) EnglishName() string {
	if id < None || id >= Count {
		return ""
	}
	return EnglishNames[id]
}

func (id ID) Value() int {
	if id < None || id >= Count {
		return 0
	}
	return Values[id]
}

func (id ID) String() string {
	if id < None || id >= Count {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return EnglishNames[id]
}

// Table 每个番种计入的次数, 以ID为下标
type Table [Count]int

// Total 总番数, 花牌按每张1番计入
func (t *Table) Total() int {
	total := 0
	for id := None + 1; id < Count; id++ {
		total += Values[id] * t[id]
	}
	return total
}

// Fans 计入的番种, 按ID顺序
func (t *Table) Fans() []ID {
	var ids []ID
	for id := None + 1; id < Count; id++ {
		if t[id] > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func (t *Table) empty() bool {
	for _, v := range t {
		if v != 0 {
			return false
		}
	}
	return true
}
