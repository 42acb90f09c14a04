package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nida1khurram/school-fee-app/app/models"
)

func record(student, class, month string, monthlyFee, received int) models.FeeRecord {
	return models.FeeRecord{
		StudentName:    student,
		ClassCategory:  class,
		Month:          month,
		MonthlyFee:     monthlyFee,
		ReceivedAmount: received,
	}
}

func TestStudentYearlyReport(t *testing.T) {
	records := []models.FeeRecord{
		record("Ali", "Class 1", "APRIL", 500, 500),
		record("Ali", "Class 1", "MAY", 0, 0),
	}

	report := StudentYearlyReport(records, "Ali", "Class 1")
	assert.Equal(t, 500, report.TotalMonthlyFee)
	assert.Equal(t, 500, report.TotalReceived)
	require.Len(t, report.Months, 12)

	byMonth := make(map[string]MonthRow)
	for _, m := range report.Months {
		byMonth[m.Month] = m
	}
	assert.Equal(t, models.StatusPaid, byMonth["APRIL"].Status)
	assert.Equal(t, models.StatusUnpaid, byMonth["MAY"].Status)

	for _, month := range models.Months {
		if month == "APRIL" || month == "MAY" {
			continue
		}
		m := byMonth[month]
		assert.Equal(t, models.StatusUnpaid, m.Status, month)
		assert.Zero(t, m.MonthlyFee, month)
		assert.Zero(t, m.ReceivedAmount, month)
	}
}

func TestStudentYearlyReportMonthsAcademicOrder(t *testing.T) {
	report := StudentYearlyReport(nil, "Ali", "Class 1")
	require.Len(t, report.Months, 12)
	for i, m := range report.Months {
		assert.Equal(t, models.Months[i], m.Month)
	}
	assert.Equal(t, "APRIL", report.Months[0].Month)
	assert.Equal(t, "MARCH", report.Months[11].Month)
}

func TestStudentYearlyReportFlatCharges(t *testing.T) {
	records := []models.FeeRecord{
		{StudentName: "Ali", ClassCategory: "Class 1", ClassSection: "A",
			Month: "APRIL", MonthlyFee: 500, AnnualCharges: 2000, AdmissionFee: 5000, ReceivedAmount: 7500},
		{StudentName: "Ali", ClassCategory: "Class 1", ClassSection: "A",
			Month: "MAY", MonthlyFee: 500, AnnualCharges: 2000, AdmissionFee: 5000, ReceivedAmount: 500},
	}

	report := StudentYearlyReport(records, "Ali", "Class 1")
	// Annual charges and admission fee come from the first row, not summed.
	assert.Equal(t, 2000, report.AnnualCharges)
	assert.Equal(t, 5000, report.AdmissionFee)
	assert.Equal(t, 1000, report.TotalMonthlyFee)
	assert.Equal(t, 8000, report.TotalReceived)
	assert.Equal(t, "A", report.ClassSection)
}

func TestStudentYearlyReportExactMatchOnly(t *testing.T) {
	records := []models.FeeRecord{
		record("Ali", "Class 1", "APRIL", 500, 500),
		record("Ali", "Class 2", "APRIL", 700, 700),
		record("Alia", "Class 1", "APRIL", 600, 600),
	}

	report := StudentYearlyReport(records, "Ali", "Class 1")
	assert.Equal(t, 500, report.TotalMonthlyFee)
	assert.Equal(t, 500, report.TotalReceived)
}

func TestStudentYearlyReportNoMatch(t *testing.T) {
	report := StudentYearlyReport(nil, "Ghost", "Class 9")
	assert.Zero(t, report.TotalMonthlyFee)
	assert.Zero(t, report.TotalReceived)
	assert.Zero(t, report.AnnualCharges)
	assert.Zero(t, report.AdmissionFee)
	require.Len(t, report.Months, 12)
	for _, m := range report.Months {
		assert.Equal(t, models.StatusUnpaid, m.Status)
	}
}

func TestStudentYearlyReportDuplicateMonthRowsSummed(t *testing.T) {
	records := []models.FeeRecord{
		record("Ali", "Class 1", "APRIL", 300, 300),
		record("Ali", "Class 1", "APRIL", 200, 200),
	}

	report := StudentYearlyReport(records, "Ali", "Class 1")
	assert.Equal(t, 500, report.Months[0].MonthlyFee)
	assert.Equal(t, 500, report.Months[0].ReceivedAmount)
	assert.Equal(t, models.StatusPaid, report.Months[0].Status)
}

func TestSummarizeClass(t *testing.T) {
	records := []models.FeeRecord{
		record("Ali", "Class 1", "APRIL", 500, 500),
		record("Ali", "Class 1", "MAY", 500, 500),
		record("Sana", "Class 1", "APRIL", 500, 500),
		record("Omar", "Class 2", "APRIL", 800, 800),
	}

	summary := SummarizeClass(records, "Class 1")
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1500, summary.TotalReceived)
	assert.Zero(t, summary.UnpaidStudents)

	require.Len(t, summary.MonthlyReceived, 12)
	assert.Equal(t, MonthTotal{Month: "APRIL", Received: 1000}, summary.MonthlyReceived[0])
	assert.Equal(t, MonthTotal{Month: "MAY", Received: 500}, summary.MonthlyReceived[1])
	assert.Equal(t, MonthTotal{Month: "MARCH", Received: 0}, summary.MonthlyReceived[11])
}

func TestSummarizeClassUnpaidCount(t *testing.T) {
	records := []models.FeeRecord{
		record("Ali", "Class 1", "APRIL", 500, 500),
		record("Ali", "Class 1", "MAY", 500, 500),
		record("Sana", "Class 1", "APRIL", 500, 500),
		record("Sana", "Class 1", "MAY", 0, 0),
	}

	summary := SummarizeClass(records, "Class 1")
	// A student unpaid in any month counts as unpaid, even when paid in
	// other months.
	assert.Equal(t, 1, summary.UnpaidStudents)
}

func TestSummarizeClassEmpty(t *testing.T) {
	summary := SummarizeClass(nil, "Class 1")
	assert.Zero(t, summary.TotalStudents)
	assert.Zero(t, summary.TotalReceived)
	assert.Zero(t, summary.UnpaidStudents)
	require.Len(t, summary.MonthlyReceived, 12)
}

func TestClassesSortedDistinct(t *testing.T) {
	records := []models.FeeRecord{
		record("Ali", "Class 2", "APRIL", 500, 500),
		record("Sana", "Class 1", "APRIL", 500, 500),
		record("Omar", "Class 2", "APRIL", 500, 500),
	}
	assert.Equal(t, []string{"Class 1", "Class 2"}, Classes(records))
}

func TestStudentsInClassSortedDistinct(t *testing.T) {
	records := []models.FeeRecord{
		record("Sana", "Class 1", "APRIL", 500, 500),
		record("Ali", "Class 1", "APRIL", 500, 500),
		record("Ali", "Class 1", "MAY", 500, 500),
		record("Omar", "Class 2", "APRIL", 500, 500),
	}
	assert.Equal(t, []string{"Ali", "Sana"}, StudentsInClass(records, "Class 1"))
}
