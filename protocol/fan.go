package protocol

// HandRequest 一手牌的描述
//
// Hand为牌型字符串, 如 "[123m1][789p]45sESWNCFP1m", 最后一张为和牌张;
// 字符串中不含和牌张时由WinTile指定
type HandRequest struct {
	Hand          string `json:"hand"`
	WinTile       string `json:"win_tile,omitempty"`
	Flags         string `json:"flags,omitempty"`          //和牌标志, 如 "自摸,和绝张"
	SelfDrawn     bool   `json:"self_drawn,omitempty"`     //自摸
	LastTile      bool   `json:"last_tile,omitempty"`      //和绝张
	KongInvolved  bool   `json:"kong_involved,omitempty"`  //杠上开花/抢杠和
	WallLast      bool   `json:"wall_last,omitempty"`      //妙手回春/海底捞月
	Initial       bool   `json:"initial,omitempty"`        //天和/地和/人和
	PrevalentWind string `json:"prevalent_wind,omitempty"` //圈风 E/S/W/N
	SeatWind      string `json:"seat_wind,omitempty"`      //门风 E/S/W/N
	FlowerCount   int    `json:"flower_count,omitempty"`   //花牌数
}

type FanRequest struct {
	HandRequest
}

// FanItem 番种明细
type FanItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Value       int    `json:"value"` //单个番种的番数
	Count       int    `json:"count"`
}

type FanResponse struct {
	Code    int       `json:"code"`
	Hand    string    `json:"hand"`     //规范化后的牌型
	WinTile string    `json:"win_tile"` //和牌张
	Total   int       `json:"total"`    //总番数(含花牌)
	Fans    []FanItem `json:"fans"`
}

type WaitingRequest struct {
	HandRequest
}

// Wait 听的一张牌, Fan为和这张牌的番数, 和不了(如超过4张)为0
type Wait struct {
	Tile string `json:"tile"`
	Fan  int    `json:"fan"`
}

type WaitingResponse struct {
	Code    int    `json:"code"`
	Hand    string `json:"hand"`
	Waiting bool   `json:"waiting"`
	Waits   []Wait `json:"waits"`
}

// DiscardRequest 打牌分析, Hand须为14张状态(含摸到的牌)
type DiscardRequest struct {
	Hand  string `json:"hand"`
	Forms int    `json:"forms,omitempty"` //和型掩码, 0表示全部
}

type DiscardItem struct {
	Discard string   `json:"discard"`
	Form    string   `json:"form"`
	Shanten int      `json:"shanten"` //-1表示已和牌
	Useful  []string `json:"useful"`
	Count   int      `json:"count"` //有效牌剩余枚数
}

type DiscardResponse struct {
	Code  int           `json:"code"`
	Hand  string        `json:"hand"`
	Items []DiscardItem `json:"items"`
}

// FanRule 番种表的一项
type FanRule struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Value       int    `json:"value"`
}

type FanRulesResponse struct {
	Code  int       `json:"code"`
	Rules []FanRule `json:"rules"`
}
