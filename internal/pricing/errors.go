package pricing

import "errors"

var (
	ErrFetchFailed    = errors.New("price sheet fetch failed")
	ErrUnknownJournal = errors.New("journal not priced")
	ErrNoJournal      = errors.New("no journal name in subject")
)
