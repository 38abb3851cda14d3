package domain

const (
	PayrollPaid       = "paid"
	PayrollPending    = "pending"
	PayrollProcessing = "processing"
)

// PayrollSummary is one employee's pay statement for one month.
type PayrollSummary struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
	PaymentDate string  `json:"payment_date,omitempty"`
	Status      string  `json:"status"`
}
