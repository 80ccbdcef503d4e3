package dto

import "time"

// HomePage is the aggregated payload behind the public home endpoint: the
// newest published blogs plus the enabled categories with their counts.
type HomePage struct {
	Blogs       []BlogView          `json:"blogs"`
	Categories  []CategoryWithCount `json:"categories"`
	GeneratedAt time.Time           `json:"generatedAt"`
}
