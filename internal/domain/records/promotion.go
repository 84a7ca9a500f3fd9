package records

import (
	"strconv"
	"strings"
	"unicode"
)

// HighestGrade is the grade beyond which students are not promoted.
const HighestGrade = 12

// PromoteClassName advances a class name of the form "<int>-<suffix>" by one
// grade, leaving the suffix untouched: "10-A" becomes "11-A". Classes already
// at or past grade 12 are unchanged, as are names without a leading digit or
// without a "-" separator. The second return reports whether a promotion
// happened.
func PromoteClassName(className string) (string, bool) {
	if className == "" || !unicode.IsDigit(rune(className[0])) {
		return className, false
	}

	sep := strings.Index(className, "-")
	if sep < 0 {
		return className, false
	}

	grade, err := strconv.Atoi(className[:sep])
	if err != nil || grade >= HighestGrade {
		return className, false
	}

	return strconv.Itoa(grade+1) + className[sep:], true
}
