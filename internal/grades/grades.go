// Package grades turns extracted grade and attendance strings into numbers.
package grades

import (
	"math"
	"strconv"
	"strings"

	"github.com/vytor/edugame/internal/models"
)

// ParseGrades converts each entry to a float, skipping anything that does not
// parse to a finite number.
func ParseGrades(raw []string) []float64 {
	values := make([]float64, 0, len(raw))
	for _, r := range raw {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Mean is the arithmetic mean of values, 0 when empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CourseMean is the mean of the parseable grades in raw.
func CourseMean(raw []string) float64 {
	return Mean(ParseGrades(raw))
}

// ParseAttendance strips '>' and parses a percentage, 0 on failure.
func ParseAttendance(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ">", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CourseResult is one course after extraction and parsing.
type CourseResult struct {
	Code       string
	Grades     []float64
	Attendance float64
}

// NewCourseResult parses the extracted strings of one course.
func NewCourseResult(data models.CourseData) CourseResult {
	return CourseResult{
		Code:       data.Code,
		Grades:     ParseGrades(data.GradeStrings),
		Attendance: ParseAttendance(data.AttendanceText),
	}
}

// Score is the per-course input to the gamification engine.
func (c CourseResult) Score() models.CourseScore {
	return models.CourseScore{Code: c.Code, Mean: Mean(c.Grades), Attendance: c.Attendance}
}

// Summary holds the cross-course aggregates written to the student record.
type Summary struct {
	Mean        float64
	GradePoints int
	Assist      int
}

// Summarize computes the unweighted mean of course means, the truncated
// grade-point total and the clamped mean attendance.
func Summarize(courses []CourseResult) Summary {
	if len(courses) == 0 {
		return Summary{}
	}

	var meanSum, gradeSum, attendanceSum float64
	for _, c := range courses {
		meanSum += Mean(c.Grades)
		attendanceSum += c.Attendance
		for _, g := range c.Grades {
			gradeSum += g
		}
	}
	n := float64(len(courses))

	assist := int(attendanceSum / n)
	if assist < 0 {
		assist = 0
	}
	if assist > 100 {
		assist = 100
	}

	return Summary{
		Mean:        meanSum / n,
		GradePoints: int(gradeSum * 10),
		Assist:      assist,
	}
}

// Scores returns the gamification input for every course, in order.
func Scores(courses []CourseResult) []models.CourseScore {
	scores := make([]models.CourseScore, len(courses))
	for i, c := range courses {
		scores[i] = c.Score()
	}
	return scores
}
