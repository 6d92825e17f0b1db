package entity

import "strings"

const (
	ServiceCarpet = "carpet"
	ServiceShawl  = "shawl"
)

type Service struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	LinkTo      string `json:"link_to"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Video       string `json:"video,omitempty"`
	Points      string `json:"points,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// PointList splits the pipe-delimited points column into bullet points.
func (s Service) PointList() []string {
	if s.Points == "" {
		return nil
	}
	parts := strings.Split(s.Points, "|")
	points := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	return points
}
