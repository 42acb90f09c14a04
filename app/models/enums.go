package models

// PaymentStatus defines the payment status of a month in a yearly report.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "Paid"
	StatusUnpaid PaymentStatus = "Unpaid"
)

// ClassCategories lists the class categories offered by the school, in
// teaching order from nursery up to matriculation.
var ClassCategories = []string{
	"Nursery", "KGI", "KGII",
	"Class 1", "Class 2", "Class 3", "Class 4", "Class 5",
	"Class 6", "Class 7", "Class 8", "Class 9", "Class 10 (Matric)",
}

// Months lists the fee months in academic-year order. The school year starts
// in April, so April sorts first and March last.
var Months = []string{
	"APRIL", "MAY", "JUNE", "JULY", "AUGUST", "SEPTEMBER",
	"OCTOBER", "NOVEMBER", "DECEMBER", "JANUARY", "FEBRUARY", "MARCH",
}

// IsValidClassCategory reports whether category is one of the fixed class
// categories.
func IsValidClassCategory(category string) bool {
	for _, c := range ClassCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidMonth reports whether month is one of the fixed fee months.
func IsValidMonth(month string) bool {
	for _, m := range Months {
		if m == month {
			return true
		}
	}
	return false
}

// MonthIndex returns the academic-year position of month (April is 0), or -1
// if month is not one of the fixed fee months.
func MonthIndex(month string) int {
	for i, m := range Months {
		if m == month {
			return i
		}
	}
	return -1
}
