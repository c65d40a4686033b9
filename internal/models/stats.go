package models

// Stats is the singleton aggregate counter document. Both counters are
// non-decreasing except on an explicit admin reset. The totals are bumped
// alongside the per-movie counters but never reconciled against them.
type Stats struct {
	TotalDownloads int64 `json:"totalDownloads"`
	TotalViews     int64 `json:"totalViews"`
}

// DefaultStats returns the zero-valued stats document.
func DefaultStats() Stats {
	return Stats{}
}
