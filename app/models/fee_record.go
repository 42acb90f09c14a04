package models

import (
	"time"

	"github.com/nida1khurram/school-fee-app/app/identity"
)

// Column names of the fee record store, in persisted order.
const (
	ColID             = "ID"
	ColStudentName    = "Student Name"
	ColClassCategory  = "Class Category"
	ColClassSection   = "Class Section"
	ColMonth          = "Month"
	ColMonthlyFee     = "Monthly Fee"
	ColAnnualCharges  = "Annual Charges"
	ColAdmissionFee   = "Admission Fee"
	ColReceivedAmount = "Received Amount"
	ColDate           = "Date"
	ColSignature      = "Signature"
	ColEntryTimestamp = "Entry Timestamp"
)

// Columns is the fixed 12-column schema of the record store.
var Columns = []string{
	ColID, ColStudentName, ColClassCategory, ColClassSection, ColMonth,
	ColMonthlyFee, ColAnnualCharges, ColAdmissionFee,
	ColReceivedAmount, ColDate, ColSignature, ColEntryTimestamp,
}

// FeeRecord is one fee payment entry. A student can have any number of
// records, including several for the same month; paid status is always
// derived from amounts, never from row presence.
//
// Date holds the payment date as DD-MM-YYYY once loaded (new entries are
// written as YYYY-MM-DD and normalized on the next load). EntryTimestamp is
// set when the record is created or updated and is not user-editable.
type FeeRecord struct {
	ID             string `json:"id"`
	StudentName    string `json:"student_name"`
	ClassCategory  string `json:"class_category"`
	ClassSection   string `json:"class_section,omitempty"`
	Month          string `json:"month"`
	MonthlyFee     int    `json:"monthly_fee"`
	AnnualCharges  int    `json:"annual_charges"`
	AdmissionFee   int    `json:"admission_fee"`
	ReceivedAmount int    `json:"received_amount"`
	Date           string `json:"date"`
	Signature      string `json:"signature"`
	EntryTimestamp string `json:"entry_timestamp"`

	// Extra carries values of columns outside the fixed schema, keyed by
	// column name. Unknown columns survive a load/rewrite cycle unchanged.
	Extra map[string]string `json:"extra,omitempty"`
}

// NewFeeRecord builds a fee record for a new payment entry. The ID is derived
// from the student name and class category, the payment date is recorded as
// YYYY-MM-DD and the entry timestamp is set to now.
func NewFeeRecord(studentName, classCategory, classSection, month string,
	monthlyFee, annualCharges, admissionFee, receivedAmount int,
	paymentDate time.Time, signature string) FeeRecord {
	return FeeRecord{
		ID:             identity.StudentID(studentName, classCategory),
		StudentName:    studentName,
		ClassCategory:  classCategory,
		ClassSection:   classSection,
		Month:          month,
		MonthlyFee:     monthlyFee,
		AnnualCharges:  annualCharges,
		AdmissionFee:   admissionFee,
		ReceivedAmount: receivedAmount,
		Date:           paymentDate.Format("2006-01-02"),
		Signature:      signature,
		EntryTimestamp: time.Now().Format("2006-01-02 15:04:05"),
	}
}

// Touch refreshes the entry timestamp after an edit, using the display
// format the editor writes back.
func (r *FeeRecord) Touch() {
	r.EntryTimestamp = time.Now().Format("02-01-2006 15:04")
}

// TotalCharged returns the sum of all charges on the record.
func (r *FeeRecord) TotalCharged() int {
	return r.MonthlyFee + r.AnnualCharges + r.AdmissionFee
}
