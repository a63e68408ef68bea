// mcrfan 命令行算番, 例如:
//
//	mcrfan --self-drawn "[123m1][789p]45sESWNCFP1m"
//	mcrfan --waiting 1112345678999m
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcrhelper/mcrserver/internal/scorer"
	"github.com/mcrhelper/mcrserver/pkg/errutil"
	"github.com/mcrhelper/mcrserver/protocol"
	"github.com/urfave/cli"
)

var errorText = map[error]string{
	errutil.ErrIllegalCharacter:            "非法字符",
	errutil.ErrSuffix:                      "后缀错误",
	errutil.ErrWrongTilesCountForFixedPack: "副露包含错误的牌数目",
	errutil.ErrCannotMakeFixedPack:         "无法正确解析副露",
	errutil.ErrTooManyFixedPacks:           "过多组副露",
	errutil.ErrTooManyTiles:                "过多牌",
	errutil.ErrTileCountGreaterThan4:       "某张牌出现超过4枚",
	errutil.ErrWrongTilesCount:             "牌数错误",
	errutil.ErrNotWin:                      "诈和",
	errutil.ErrIllegalWinTile:              "未提供和牌张, 请在输入中包含和牌张或使用 --win 指定",
	errutil.ErrIllegalWind:                 "风位错误",
	errutil.ErrIllegalWinFlag:              "和牌标志错误",
}

func describe(err error) string {
	for e, text := range errorText {
		if errutil.Code(err) == errutil.Code(e) {
			return text
		}
	}
	return err.Error()
}

func handRequest(c *cli.Context) (protocol.HandRequest, error) {
	if c.NArg() != 1 {
		return protocol.HandRequest{}, fmt.Errorf("usage: %s [options] <tiles>", c.App.Name)
	}
	return protocol.HandRequest{
		Hand:          strings.TrimSpace(c.Args().First()),
		WinTile:       c.String("win"),
		Flags:         c.String("flags"),
		SelfDrawn:     c.Bool("self-drawn"),
		LastTile:      c.Bool("last-tile"),
		KongInvolved:  c.Bool("kong-involved"),
		WallLast:      c.Bool("wall-last"),
		Initial:       c.Bool("initial"),
		PrevalentWind: c.String("prevalent"),
		SeatWind:      c.String("seat"),
		FlowerCount:   c.Int("flowers"),
	}, nil
}

func printFan(w io.Writer, resp *protocol.FanResponse) {
	fmt.Fprintf(w, "总番: %d\n", resp.Total)
	for _, item := range resp.Fans {
		if item.Count == 1 {
			fmt.Fprintln(w, item.Name)
		} else {
			fmt.Fprintf(w, "%s x%d\n", item.Name, item.Count)
		}
	}
}

func printWaiting(w io.Writer, resp *protocol.WaitingResponse) {
	if !resp.Waiting {
		fmt.Fprintln(w, "听牌: 未听牌")
		return
	}
	parts := make([]string, 0, len(resp.Waits))
	for _, wait := range resp.Waits {
		parts = append(parts, fmt.Sprintf("%s(%d番)", wait.Tile, wait.Fan))
	}
	fmt.Fprintf(w, "听牌: %s\n", strings.Join(parts, " "))
}

func run(c *cli.Context) error {
	req, err := handRequest(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	s := scorer.New()
	if c.Bool("waiting") {
		resp, err := s.Waiting(context.Background(), &protocol.WaitingRequest{HandRequest: req})
		if err != nil {
			return cli.NewExitError("分析失败: "+describe(err), 1)
		}
		printWaiting(os.Stdout, resp)
		return nil
	}

	resp, err := s.Score(context.Background(), &protocol.FanRequest{HandRequest: req})
	if err != nil {
		return cli.NewExitError("算番失败: "+describe(err), 1)
	}
	printFan(os.Stdout, resp)
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "mcrfan"
	app.Usage = "MCR fan calculator"
	app.ArgsUsage = "<tiles>"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "flags", Usage: "comma separated flags, e.g. 自摸,和绝张,杠上开花"},
		cli.BoolFlag{Name: "self-drawn", Usage: "自摸"},
		cli.BoolFlag{Name: "last-tile", Usage: "和绝张"},
		cli.BoolFlag{Name: "kong-involved", Usage: "杠上开花/抢杠和"},
		cli.BoolFlag{Name: "wall-last", Usage: "妙手回春/海底捞月"},
		cli.BoolFlag{Name: "initial", Usage: "天和/地和/人和"},
		cli.StringFlag{Name: "win", Usage: "win tile when not included in tiles, e.g. 5m or E"},
		cli.StringFlag{Name: "seat", Value: "E", Usage: "seat wind: E/S/W/N or 东/南/西/北"},
		cli.StringFlag{Name: "prevalent", Value: "E", Usage: "prevalent wind: E/S/W/N or 东/南/西/北"},
		cli.IntFlag{Name: "flowers", Usage: "flower count"},
		cli.BoolFlag{Name: "waiting", Usage: "list waiting tiles of a 13-tile hand instead"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
