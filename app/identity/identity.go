package identity

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// StudentID derives the 8-character record ID for a student within a class
// category. The same name/category pair always yields the same ID, so
// re-entering a student produces matching IDs across months and process
// restarts. MD5 is used purely as a stable digest here, not for security;
// collisions between different students are possible but unlikely.
func StudentID(studentName, classCategory string) string {
	sum := md5.Sum([]byte(studentName + "_" + classCategory))
	return strings.ToUpper(fmt.Sprintf("%x", sum)[:8])
}
