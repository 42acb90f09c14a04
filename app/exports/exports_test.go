package exports

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nida1khurram/school-fee-app/app/models"
	"github.com/nida1khurram/school-fee-app/app/reports"
)

func TestFileNames(t *testing.T) {
	assert.Equal(t, "all_fee_records.csv", AllRecordsFileName)
	assert.Equal(t, "Ali_fee_report.csv", StudentReportFileName("Ali"))
	assert.Equal(t, "Ali_fee_report.xlsx", StudentReportXLSXFileName("Ali"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Rs. 0", FormatCurrency(0))
	assert.Equal(t, "Rs. 500", FormatCurrency(500))
	assert.Equal(t, "Rs. 1,500", FormatCurrency(1500))
	assert.Equal(t, "Rs. 12,500", FormatCurrency(12500))
	assert.Equal(t, "Rs. 1,234,567", FormatCurrency(1234567))
}

func TestWriteAllRecordsCSV(t *testing.T) {
	records := []models.FeeRecord{
		{
			ID: "AB12CD34", StudentName: "Ali", ClassCategory: "Class 1",
			ClassSection: "A", Month: "APRIL", MonthlyFee: 500,
			AnnualCharges: 1000, ReceivedAmount: 1500, Date: "05-04-2026",
			Signature: "Nida", EntryTimestamp: "05-04-2026 10:30",
		},
		{
			ID: "EF56AB78", StudentName: "Sana", ClassCategory: "Class 2",
			Month: "MAY", MonthlyFee: 700, ReceivedAmount: 700,
			Date: "07-05-2026", Signature: "Nida",
			Extra: map[string]string{"Remarks": "late payment"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAllRecordsCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	wantHeader := append(append([]string{}, models.Columns...), "Remarks")
	assert.Equal(t, wantHeader, rows[0])
	assert.Equal(t, "Ali", rows[1][1])
	assert.Equal(t, "500", rows[1][5])
	assert.Equal(t, "", rows[1][12], "record without the extra column exports it empty")
	assert.Equal(t, "late payment", rows[2][12])
}

func TestWriteStudentReportCSV(t *testing.T) {
	report := reports.StudentYearlyReport([]models.FeeRecord{
		{StudentName: "Ali", ClassCategory: "Class 1", Month: "APRIL",
			MonthlyFee: 500, ReceivedAmount: 500},
	}, "Ali", "Class 1")

	var buf bytes.Buffer
	require.NoError(t, WriteStudentReportCSV(&buf, report))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 13, "header plus 12 months")

	assert.Equal(t, []string{"Month", "Monthly Fee", "Received Amount", "Status"}, rows[0])
	assert.Equal(t, []string{"APRIL", "500", "500", "Paid"}, rows[1])
	assert.Equal(t, []string{"MAY", "0", "0", "Unpaid"}, rows[2])
	assert.Equal(t, "MARCH", rows[12][0])
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Rupees zero only", AmountInWords(0))

	words := AmountInWords(1500)
	assert.Contains(t, words, "thousand")
	assert.True(t, len(words) > len("Rupees  only"))
}
