package domain

// RequestCounts breaks a request collection down by status.
type RequestCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ItemCounts breaks the missing-item collection down by status.
type ItemCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Found  int `json:"found"`
}

// Statistics is the dashboard aggregate, computed freshly from the current
// collection contents on every call. Nothing here is cached.
type Statistics struct {
	Leaves               RequestCounts `json:"leaves"`
	Outings              RequestCounts `json:"outings"`
	MissingItems         ItemCounts    `json:"missing_items"`
	TotalPendingRequests int           `json:"total_pending_requests"`
}
