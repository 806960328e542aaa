package schemas

import "time"

type InsightResponse struct {
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
	Cached      bool      `json:"cached,omitempty"`
}
