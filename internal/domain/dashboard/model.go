package dashboard

// Stats are the headline dashboard counters.
type Stats struct {
	Total        int `json:"total"`
	Confirmed    int `json:"confirmed"`
	DueThisWeek  int `json:"dueThisWeek"`
	DelayedTasks int `json:"delayedTasks"`
}

// MonthlyPlanRow aggregates the completed item tasks for one delivery month.
type MonthlyPlanRow struct {
	Name    string `json:"name"`
	BOM     int    `json:"bom"`
	Drawing int    `json:"drawing"`
	Program int    `json:"program"`
}

// NameCount is one bar of the per-manager and per-assignee charts.
type NameCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
