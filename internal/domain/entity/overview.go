package entity

// OverviewSummary aggregates the landing-page counters. It is derived from
// the stored records (or the Redis counters mirroring them), never persisted.
type OverviewSummary struct {
	Patients     int64
	Appointments int64
	Bills        int64
	Unpaid       int64
}
