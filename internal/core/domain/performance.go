package domain

const (
	GoalNotStarted = "not-started"
	GoalInProgress = "in-progress"
	GoalCompleted  = "completed"
)

// Goal is one objective tracked inside a performance review.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	Progress    int    `json:"progress"`
}

// PerformanceReview records one review cycle for one employee.
// OverallRating is on a 1–5 scale.
type PerformanceReview struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	ReviewPeriod  string  `json:"review_period"`
	OverallRating float64 `json:"overall_rating"`
	Goals         []Goal  `json:"goals,omitempty"`
	Feedback      string  `json:"feedback,omitempty"`
	ReviewDate    string  `json:"review_date"`
	ReviewerID    string  `json:"reviewer_id"`
}
