package repository

import "errors"

var (
	// ErrEmptyName rejects watchlists with an empty or whitespace-only name.
	ErrEmptyName = errors.New("watchlist name must not be empty")

	// ErrWatchlistMissing means the referenced parent watchlist does not exist.
	ErrWatchlistMissing = errors.New("watchlist does not exist")

	// ErrDuplicateSymbol means the symbol is already tracked in that watchlist.
	ErrDuplicateSymbol = errors.New("symbol already in watchlist")
)
