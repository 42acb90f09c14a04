package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentIDDeterministic(t *testing.T) {
	a := StudentID("Ali", "Class 1")
	b := StudentID("Ali", "Class 1")
	assert.Equal(t, a, b, "same student/class must yield the same ID")
}

func TestStudentIDFormat(t *testing.T) {
	id := StudentID("Fatima Noor", "KGII")
	assert.Len(t, id, 8)
	for _, c := range id {
		ok := (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
		assert.True(t, ok, "ID must be uppercase hex, got %q", id)
	}
}

func TestStudentIDVariesWithInputs(t *testing.T) {
	base := StudentID("Ali", "Class 1")
	assert.NotEqual(t, base, StudentID("Ali", "Class 2"))
	assert.NotEqual(t, base, StudentID("Alia", "Class 1"))
}

func TestStudentIDAcceptsEmptyInputs(t *testing.T) {
	id := StudentID("", "")
	assert.Len(t, id, 8)
	assert.Equal(t, id, StudentID("", ""))
}
