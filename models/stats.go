package models

// DiseaseCount is one entry of the dashboard disease breakdown.
type DiseaseCount struct {
	Disease Disease `json:"disease"`
	Count   int     `json:"count"`
}

// MonthlyCount is one entry of the six-month dashboard trend.
type MonthlyCount struct {
	// Month is the short month name ("Jan", "Feb", ...).
	Month string `json:"month"`

	// Scans is the number of scans created in that calendar month;
	// Detections counts the subset whose disease is not normal.
	Scans      int `json:"scans"`
	Detections int `json:"detections"`
}

// DashboardStats is the derived dashboard summary. It is recomputed from the
// full scan collection on every read and is never persisted.
type DashboardStats struct {
	TotalScans       int `json:"totalScans"`
	DiseasesDetected int `json:"diseasesDetected"`

	// AccuracyRate is a fixed display constant; there is no ground-truth
	// field in the data model to compute it from.
	AccuracyRate float64 `json:"accuracyRate"`

	ScansThisMonth   int            `json:"scansThisMonth"`
	DiseaseBreakdown []DiseaseCount `json:"diseaseBreakdown"`

	// MonthlyTrend always holds exactly six entries, oldest first, ending
	// at the current calendar month.
	MonthlyTrend []MonthlyCount `json:"monthlyTrend"`

	// RecentScans holds at most the five most recently created scans,
	// newest first.
	RecentScans []Scan `json:"recentScans"`
}
