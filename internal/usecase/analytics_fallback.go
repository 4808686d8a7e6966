package usecase

import "hospital-management-api/internal/domain/entity"

// Fixed datasets served when an analytics table is empty or unreachable.
var (
	fallbackWeeklyPatients = []entity.WeeklyPatients{
		{Day: "Mon", Patients: 45},
		{Day: "Tue", Patients: 52},
		{Day: "Wed", Patients: 48},
		{Day: "Thu", Patients: 61},
		{Day: "Fri", Patients: 55},
		{Day: "Sat", Patients: 38},
		{Day: "Sun", Patients: 32},
	}

	fallbackDepartmentDistribution = []entity.DepartmentShare{
		{Name: "Emergency", Value: 145, Color: "#EF4444"},
		{Name: "Surgery", Value: 98, Color: "#3B82F6"},
		{Name: "Pediatrics", Value: 76, Color: "#10B981"},
		{Name: "Cardiology", Value: 89, Color: "#F59E0B"},
		{Name: "Neurology", Value: 54, Color: "#8B5CF6"},
	}

	fallbackMonthlyRevenue = []entity.MonthlyRevenue{
		{Month: "Jan", Revenue: 245000, Expenses: 180000},
		{Month: "Feb", Revenue: 268000, Expenses: 195000},
		{Month: "Mar", Revenue: 282000, Expenses: 205000},
		{Month: "Apr", Revenue: 298000, Expenses: 210000},
		{Month: "May", Revenue: 315000, Expenses: 225000},
		{Month: "Jun", Revenue: 332000, Expenses: 230000},
	}

	fallbackPatientTrends = []entity.PatientTrend{
		{Month: "Jan", Inpatient: 420, Outpatient: 1250},
		{Month: "Feb", Inpatient: 445, Outpatient: 1310},
		{Month: "Mar", Inpatient: 468, Outpatient: 1380},
		{Month: "Apr", Inpatient: 492, Outpatient: 1420},
		{Month: "May", Inpatient: 515, Outpatient: 1485},
		{Month: "Jun", Inpatient: 538, Outpatient: 1540},
	}

	fallbackDepartmentPerformance = []entity.DepartmentPerformance{
		{Department: "Cardiology", Satisfaction: 92, Efficiency: 88},
		{Department: "Neurology", Satisfaction: 89, Efficiency: 85},
		{Department: "Pediatrics", Satisfaction: 95, Efficiency: 91},
		{Department: "Orthopedics", Satisfaction: 87, Efficiency: 83},
		{Department: "Emergency", Satisfaction: 84, Efficiency: 90},
		{Department: "Surgery", Satisfaction: 90, Efficiency: 87},
	}
)
