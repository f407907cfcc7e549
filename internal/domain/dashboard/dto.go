package dashboard

import (
	"github.com/shopspring/decimal"
)

// TodayEvent is one row on the live attendance board.
type TodayEvent struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Time          string          `json:"time"`
	Status        string          `json:"status"`
	LateMinutes   int             `json:"late_minutes"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
}

type TodayResponse struct {
	Date           string          `json:"date"`
	CheckIns       []TodayEvent    `json:"checkins"`
	CheckOuts      []TodayEvent    `json:"checkouts"`
	TotalCheckIns  int             `json:"total_checkins"`
	TotalCheckOuts int             `json:"total_checkouts"`
	PresentCount   int             `json:"present_count"`
	LateCount      int             `json:"late_count"`
	DayOffCount    int             `json:"day_off_count"`
	AbsentCount    int             `json:"absent_count"`
	ActiveCount    int             `json:"active_employees"`
	MonthNetSalary decimal.Decimal `json:"month_net_salary"`
}
