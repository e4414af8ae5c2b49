package listing

import "errors"

var ErrInvalidStatus = errors.New("invalid listing status")

type Status string

const (
	StatusPublished Status = "published"
	StatusPaused    Status = "paused"
	StatusDeleted   Status = "deleted"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPublished, StatusPaused, StatusDeleted:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
