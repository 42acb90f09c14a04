package reports

import (
	"sort"

	"github.com/nida1khurram/school-fee-app/app/models"
)

// MonthTotal is one point of a class's monthly collection series.
type MonthTotal struct {
	Month    string `json:"month"`
	Received int    `json:"received"`
}

// ClassSummary aggregates a class category's fee collection.
type ClassSummary struct {
	ClassCategory   string       `json:"class_category"`
	TotalStudents   int          `json:"total_students"`
	TotalReceived   int          `json:"total_received"`
	UnpaidStudents  int          `json:"unpaid_students"`
	MonthlyReceived []MonthTotal `json:"monthly_received"`
}

// MonthRow is one month of a student's yearly report.
type MonthRow struct {
	Month          string               `json:"month"`
	MonthlyFee     int                  `json:"monthly_fee"`
	ReceivedAmount int                  `json:"received_amount"`
	Status         models.PaymentStatus `json:"status"`
}

// YearlyReport is a student's fee position across the academic year.
type YearlyReport struct {
	StudentName     string     `json:"student_name"`
	ClassCategory   string     `json:"class_category"`
	ClassSection    string     `json:"class_section,omitempty"`
	TotalMonthlyFee int        `json:"total_monthly_fee"`
	AnnualCharges   int        `json:"annual_charges"`
	AdmissionFee    int        `json:"admission_fee"`
	TotalReceived   int        `json:"total_received"`
	Months          []MonthRow `json:"months"`
}

// SummarizeClass aggregates the records of one class category: distinct
// student count, received total, unpaid student count and the monthly
// collection series over the academic calendar (April first, zero-filled
// for months without records).
//
// A student counts as unpaid when any of their rows carries a zero monthly
// fee, so a student paid in one month and unpaid in another still counts.
func SummarizeClass(records []models.FeeRecord, classCategory string) ClassSummary {
	summary := ClassSummary{ClassCategory: classCategory}

	students := make(map[string]bool)
	unpaid := make(map[string]bool)
	byMonth := make(map[string]int)

	for _, r := range records {
		if r.ClassCategory != classCategory {
			continue
		}
		students[r.StudentName] = true
		if r.MonthlyFee == 0 {
			unpaid[r.StudentName] = true
		}
		summary.TotalReceived += r.ReceivedAmount
		byMonth[r.Month] += r.ReceivedAmount
	}

	summary.TotalStudents = len(students)
	summary.UnpaidStudents = len(unpaid)
	summary.MonthlyReceived = make([]MonthTotal, 0, len(models.Months))
	for _, month := range models.Months {
		summary.MonthlyReceived = append(summary.MonthlyReceived, MonthTotal{
			Month:    month,
			Received: byMonth[month],
		})
	}
	return summary
}

// StudentYearlyReport builds a student's yearly fee report from the records
// matching the exact student name and class category. Monthly fee and
// received totals are summed across matching rows; annual charges and
// admission fee are flat values taken from the first matching row. The
// per-month table always holds all 12 months, zero-filled where no records
// exist, with each month marked Paid iff its summed monthly fee is
// positive. No matching records is not an error: the result is simply
// zero-filled with every month Unpaid.
func StudentYearlyReport(records []models.FeeRecord, studentName, classCategory string) YearlyReport {
	report := YearlyReport{
		StudentName:   studentName,
		ClassCategory: classCategory,
	}

	feeByMonth := make(map[string]int)
	receivedByMonth := make(map[string]int)
	first := true

	for _, r := range records {
		if r.StudentName != studentName || r.ClassCategory != classCategory {
			continue
		}
		if first {
			report.ClassSection = r.ClassSection
			report.AnnualCharges = r.AnnualCharges
			report.AdmissionFee = r.AdmissionFee
			first = false
		}
		report.TotalMonthlyFee += r.MonthlyFee
		report.TotalReceived += r.ReceivedAmount
		feeByMonth[r.Month] += r.MonthlyFee
		receivedByMonth[r.Month] += r.ReceivedAmount
	}

	report.Months = make([]MonthRow, 0, len(models.Months))
	for _, month := range models.Months {
		status := models.StatusUnpaid
		if feeByMonth[month] > 0 {
			status = models.StatusPaid
		}
		report.Months = append(report.Months, MonthRow{
			Month:          month,
			MonthlyFee:     feeByMonth[month],
			ReceivedAmount: receivedByMonth[month],
			Status:         status,
		})
	}
	return report
}

// Classes returns the distinct class categories present in records, sorted
// alphabetically for display selectors.
func Classes(records []models.FeeRecord) []string {
	seen := make(map[string]bool)
	var classes []string
	for _, r := range records {
		if !seen[r.ClassCategory] {
			seen[r.ClassCategory] = true
			classes = append(classes, r.ClassCategory)
		}
	}
	sort.Strings(classes)
	return classes
}

// StudentsInClass returns the distinct student names of one class category,
// sorted alphabetically.
func StudentsInClass(records []models.FeeRecord, classCategory string) []string {
	seen := make(map[string]bool)
	var students []string
	for _, r := range records {
		if r.ClassCategory == classCategory && !seen[r.StudentName] {
			seen[r.StudentName] = true
			students = append(students, r.StudentName)
		}
	}
	sort.Strings(students)
	return students
}
