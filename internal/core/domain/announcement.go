package domain

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// AllDepartments scopes an announcement to the whole company.
const AllDepartments = "All"

// Announcement is a company or department notice. ReadBy accumulates the
// employee ids that have opened it.
type Announcement struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Priority    string   `json:"priority"`
	Department  string   `json:"department,omitempty"`
	CreatedBy   string   `json:"created_by"`
	CreatedDate string   `json:"created_date"`
	ReadBy      []string `json:"read_by"`
}

// VisibleTo reports whether the announcement targets the given department.
func (a Announcement) VisibleTo(department string) bool {
	return a.Department == "" || a.Department == AllDepartments || a.Department == department
}
