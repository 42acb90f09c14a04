package exports

import (
	"fmt"
	"io"

	"github.com/divan/num2words"
	"github.com/xuri/excelize/v2"

	"github.com/nida1khurram/school-fee-app/app/reports"
)

// WriteStudentReportXLSX writes the spreadsheet rendition of a student's
// yearly report: header block with the fee summary, the 12-month table, and
// the received total spelled out in words for use on printed receipts.
func WriteStudentReportXLSX(w io.Writer, report reports.YearlyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Yearly Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "Student Name")
	f.SetCellValue(sheet, "B1", report.StudentName)
	f.SetCellValue(sheet, "A2", "Class")
	f.SetCellValue(sheet, "B2", report.ClassCategory)
	f.SetCellValue(sheet, "A3", "Section")
	f.SetCellValue(sheet, "B3", report.ClassSection)

	f.SetCellValue(sheet, "A5", "Total Monthly Fee")
	f.SetCellValue(sheet, "B5", FormatCurrency(report.TotalMonthlyFee))
	f.SetCellValue(sheet, "A6", "Annual Charges")
	f.SetCellValue(sheet, "B6", FormatCurrency(report.AnnualCharges))
	f.SetCellValue(sheet, "A7", "Admission Fee")
	f.SetCellValue(sheet, "B7", FormatCurrency(report.AdmissionFee))
	f.SetCellValue(sheet, "A8", "Total Received")
	f.SetCellValue(sheet, "B8", FormatCurrency(report.TotalReceived))
	f.SetCellValue(sheet, "A9", "Total Received (in words)")
	f.SetCellValue(sheet, "B9", AmountInWords(report.TotalReceived))

	headers := []string{"Month", "Monthly Fee", "Received Amount", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 11)
		f.SetCellValue(sheet, cell, header)
	}
	for i, m := range report.Months {
		row := i + 12
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Month)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.MonthlyFee)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.ReceivedAmount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(m.Status))
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

// AmountInWords spells out a rupee amount for receipts, e.g. 1500 ->
// "Rupees one thousand five hundred only".
func AmountInWords(v int) string {
	if v == 0 {
		return "Rupees zero only"
	}
	return "Rupees " + num2words.Convert(v) + " only"
}
