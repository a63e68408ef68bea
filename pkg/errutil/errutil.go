package errutil

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrIllegalParameter = errors.New("illegal parameter")
	ErrServerInternal   = errors.New("server internal error")
	ErrCacheOperation   = errors.New("cache opertaion failed")
	ErrNotImplemented   = errors.New("not implemented")
	ErrPermissionDenied = errors.New("permission denied")

	// 算番
	ErrWrongTilesCount       = errors.New("a shortage or surplus of tiles")
	ErrTileCountGreaterThan4 = errors.New("tile count greater than 4")
	ErrNotWin                = errors.New("not a winning hand")
	ErrIllegalWinTile        = errors.New("illegal win tile")
	ErrIllegalWind           = errors.New("illegal wind")
	ErrIllegalWinFlag        = errors.New("illegal win flag")

	// 牌型字符串解析
	ErrIllegalCharacter            = errors.New("illegal character")
	ErrSuffix                      = errors.New("suffix placed incorrectly")
	ErrWrongTilesCountForFixedPack = errors.New("wrong tiles count for fixed pack")
	ErrCannotMakeFixedPack         = errors.New("cannot make fixed pack")
	ErrTooManyFixedPacks           = errors.New("too many fixed packs")
	ErrTooManyTiles                = errors.New("too many tiles")
)

//Code code for the error
func Code(err error) int {
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	return Unknown
}

// IsParseError reports whether err is one of the hand notation errors
func IsParseError(err error) bool {
	c := Code(err)
	return c == mcrTileCountGreaterThan4 || (c >= mcrIllegalCharacter && c <= mcrTooManyTiles)
}
