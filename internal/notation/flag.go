package notation

import (
	"strings"

	"github.com/mcrhelper/mcrserver/internal/game/mahjong"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
	"golang.org/x/text/width"
)

var winds = map[string]mahjong.Wind{
	"E": mahjong.WindEast, "东": mahjong.WindEast,
	"S": mahjong.WindSouth, "南": mahjong.WindSouth,
	"W": mahjong.WindWest, "西": mahjong.WindWest,
	"N": mahjong.WindNorth, "北": mahjong.WindNorth,
}

var winFlags = map[string]mahjong.WinFlag{
	"自摸":   mahjong.WinSelfDrawn,
	"和绝张":  mahjong.WinLastTile,
	"绝张":   mahjong.WinLastTile,
	"杠上开花": mahjong.WinKongInvolved | mahjong.WinSelfDrawn,
	"抢杠和":  mahjong.WinKongInvolved,
	"海底捞月": mahjong.WinWallLast,
	"妙手回春": mahjong.WinWallLast | mahjong.WinSelfDrawn,
	"起手":   mahjong.WinInitial,
}

// ParseWind 解析风位, 支持 E/S/W/N 和 东/南/西/北
func ParseWind(text string) (mahjong.Wind, error) {
	key := strings.ToUpper(strings.TrimSpace(width.Narrow.String(text)))
	w, ok := winds[key]
	if !ok {
		return 0, errutil.ErrIllegalWind
	}
	return w, nil
}

// ParseWinFlag 解析以逗号或竖线分隔的和牌标志, 例如 "自摸,和绝张"
func ParseWinFlag(text string) (mahjong.WinFlag, error) {
	var flag mahjong.WinFlag
	text = strings.NewReplacer("|", ",", "，", ",").Replace(width.Narrow.String(text))
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		f, ok := winFlags[token]
		if !ok {
			return 0, errutil.ErrIllegalWinFlag
		}
		flag |= f
	}
	return flag, nil
}
