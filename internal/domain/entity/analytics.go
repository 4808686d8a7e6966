package entity

type WeeklyPatients struct {
	Day      string `json:"day"`
	Patients int    `json:"patients"`
}

type DepartmentShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type MonthlyRevenue struct {
	Month    string `json:"month"`
	Revenue  int    `json:"revenue"`
	Expenses int    `json:"expenses"`
}

type PatientTrend struct {
	Month      string `json:"month"`
	Inpatient  int    `json:"inpatient"`
	Outpatient int    `json:"outpatient"`
}

type DepartmentPerformance struct {
	Department   string `json:"department"`
	Satisfaction int    `json:"satisfaction"`
	Efficiency   int    `json:"efficiency"`
}

// Analytics is the composite dashboard payload.
type Analytics struct {
	WeeklyPatients         []WeeklyPatients        `json:"weekly_patients"`
	DepartmentDistribution []DepartmentShare       `json:"department_distribution"`
	MonthlyRevenue         []MonthlyRevenue        `json:"monthly_revenue"`
	PatientTrends          []PatientTrend          `json:"patient_trends"`
	DepartmentPerformance  []DepartmentPerformance `json:"department_performance"`
}

// Analytics table names
const (
	TableWeeklyPatients         = "weekly_patients"
	TableDepartmentDistribution = "department_distribution"
	TableMonthlyRevenue         = "monthly_revenue"
	TablePatientTrends          = "patient_trends"
	TableDepartmentPerformance  = "department_performance"
)
