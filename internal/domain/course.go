package domain

// CourseSnapshot is a copy of catalog fields taken when the user acts on a course.
// It is never refreshed from the catalog: orders must keep the price paid.
type CourseSnapshot struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	ImageURL string  `json:"imageUrl,omitempty"`
}
