package exports

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nida1khurram/school-fee-app/app/models"
	"github.com/nida1khurram/school-fee-app/app/reports"
)

// AllRecordsFileName is the fixed download name of the full-store export.
const AllRecordsFileName = "all_fee_records.csv"

// StudentReportFileName returns the fixed download name of a student's
// monthly report.
func StudentReportFileName(studentName string) string {
	return studentName + "_fee_report.csv"
}

// StudentReportXLSXFileName returns the download name of the spreadsheet
// rendition of a student's report.
func StudentReportXLSXFileName(studentName string) string {
	return studentName + "_fee_report.xlsx"
}

// FormatCurrency renders an amount in rupees with thousand separators,
// e.g. 12500 -> "Rs. 12,500".
func FormatCurrency(v int) string {
	if v == 0 {
		return "Rs. 0"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.Itoa(v)
	var grouped []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}
	return fmt.Sprintf("Rs. %s%s", sign, grouped)
}

// WriteAllRecordsCSV writes the full record set as CSV in the store's
// column layout. Extra columns carried by any record are appended after the
// fixed schema, in name order.
func WriteAllRecordsCSV(w io.Writer, records []models.FeeRecord) error {
	extraSet := make(map[string]bool)
	for _, r := range records {
		for col := range r.Extra {
			extraSet[col] = true
		}
	}
	extras := make([]string, 0, len(extraSet))
	for col := range extraSet {
		extras = append(extras, col)
	}
	sort.Strings(extras)

	cw := csv.NewWriter(w)
	header := append(append([]string{}, models.Columns...), extras...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID, r.StudentName, r.ClassCategory, r.ClassSection, r.Month,
			strconv.Itoa(r.MonthlyFee), strconv.Itoa(r.AnnualCharges),
			strconv.Itoa(r.AdmissionFee), strconv.Itoa(r.ReceivedAmount),
			r.Date, r.Signature, r.EntryTimestamp,
		}
		for _, col := range extras {
			row = append(row, r.Extra[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStudentReportCSV writes a student's monthly report table: one row
// per month of the academic year with fee, received amount and paid status.
func WriteStudentReportCSV(w io.Writer, report reports.YearlyReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Month", "Monthly Fee", "Received Amount", "Status"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, m := range report.Months {
		row := []string{
			m.Month,
			strconv.Itoa(m.MonthlyFee),
			strconv.Itoa(m.ReceivedAmount),
			string(m.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write month row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
