package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	mcrIllegalParameter
	mcrServerInternal
	mcrCacheOperation
	mcrNotImplemented
	mcrPermissionDenied

	mcrWrongTilesCount
	mcrTileCountGreaterThan4
	mcrNotWin
	mcrIllegalWinTile
	mcrIllegalWind
	mcrIllegalWinFlag

	mcrIllegalCharacter
	mcrSuffix
	mcrWrongTilesCountForFixedPack
	mcrCannotMakeFixedPack
	mcrTooManyFixedPacks
	mcrTooManyTiles
)

var errs = map[error]int{
	ErrIllegalParameter: mcrIllegalParameter,
	ErrServerInternal:   mcrServerInternal,
	ErrCacheOperation:   mcrCacheOperation,
	ErrNotImplemented:   mcrNotImplemented,
	ErrPermissionDenied: mcrPermissionDenied,

	ErrWrongTilesCount:       mcrWrongTilesCount,
	ErrTileCountGreaterThan4: mcrTileCountGreaterThan4,
	ErrNotWin:                mcrNotWin,
	ErrIllegalWinTile:        mcrIllegalWinTile,
	ErrIllegalWind:           mcrIllegalWind,
	ErrIllegalWinFlag:        mcrIllegalWinFlag,

	ErrIllegalCharacter:            mcrIllegalCharacter,
	ErrSuffix:                      mcrSuffix,
	ErrWrongTilesCountForFixedPack: mcrWrongTilesCountForFixedPack,
	ErrCannotMakeFixedPack:         mcrCannotMakeFixedPack,
	ErrTooManyFixedPacks:           mcrTooManyFixedPacks,
	ErrTooManyTiles:                mcrTooManyTiles,
}
