package domain

import "time"

// Hub message timestamps count seconds from 2021-01-01T00:00:00Z rather
// than the unix epoch.
const epochOffsetSeconds int64 = 1609459200

// BucketSeconds is the width of the aggregation window for LIKE, RECAST
// and FOLLOW notifications.
const BucketSeconds uint32 = 172800 // 48h

// EpochToTime converts a hub-epoch timestamp to wall-clock time.
func EpochToTime(ts uint32) time.Time {
	return time.Unix(epochOffsetSeconds+int64(ts), 0).UTC()
}

// BucketTime returns the canonical timestamp-group value for an event at
// the given hub-epoch timestamp. The bucket index is run back through
// the epoch conversion, matching how grouped notifications have always
// been keyed; the value identifies the window, it is not the window's
// start time.
func BucketTime(ts uint32) time.Time {
	return EpochToTime(ts / BucketSeconds)
}
