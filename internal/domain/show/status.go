package show

import "strings"

type Status string

const (
	StatusOpen         Status = "OPEN"
	StatusFewSeatsLeft Status = "FEWSEATSLEFT"
	StatusFillingFast  Status = "FILLINGFAST"
	StatusSoldOut      Status = "SOLDOUT"
	StatusFinished     Status = "FINISHED"
	StatusCancelled    Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusFewSeatsLeft, StatusFillingFast, StatusSoldOut, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}
