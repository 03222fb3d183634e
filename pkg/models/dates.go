package models

import "time"

const (
	dateMediumLayout = "Jan 2, 2006"
	dateYMDLayout    = "2006-01-02"
)

func formatDateMedium(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateMediumLayout)
}

func formatDateYMD(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateYMDLayout)
}
