package domain

// TestResult is the outcome of one named check. It is never persisted.
type TestResult struct {
	Test       string `json:"test"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
	Data       any    `json:"data,omitempty"`
}
