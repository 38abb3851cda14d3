package domain

const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee is a staff record shown on the employees module.
type Employee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Status     string  `json:"status"`
	JoinDate   string  `json:"join_date"`
	Avatar     string  `json:"avatar,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
}
