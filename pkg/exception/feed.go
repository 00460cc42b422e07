package exception

import "github.com/yanun0323/errors"

var (
	ErrUnknownFeedFormat = errors.New("feed: unknown format")
	ErrMissingField      = errors.New("feed: missing field")
	ErrInvalidFieldValue = errors.New("feed: invalid field value")
)
