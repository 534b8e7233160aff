package domain

import "math"

// Progress is a completed/total/percentage triple. Completed may exceed
// Total; Percentage is not clamped.
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// NewProgress computes the rounded percentage for completed out of total.
// A non-positive total yields a percentage of zero.
func NewProgress(completed, total int) Progress {
	p := Progress{Completed: completed, Total: total}
	if total > 0 {
		p.Percentage = int(math.Round(100 * float64(completed) / float64(total)))
	}
	return p
}

// IsComplete reports whether completed has reached total.
func (p Progress) IsComplete() bool {
	return p.Completed >= p.Total
}
