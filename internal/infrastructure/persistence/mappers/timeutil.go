package mappers

import "time"

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

func millisPtrToTimePtr(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}

func timePtrToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	m := t.UnixMilli()
	return &m
}
