package grades_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/edugame/internal/grades"
	"github.com/vytor/edugame/internal/models"
)

func TestParseGrades_SkipsUnparseable(t *testing.T) {
	got := grades.ParseGrades([]string{"5.5", "abc", " 6.0 ", "NaN", "Inf", "", "6.0"})
	assert.Equal(t, []float64{5.5, 6.0}, got)
}

func TestCourseMean(t *testing.T) {
	assert.InDelta(t, 5.75, grades.CourseMean([]string{"5.5", "abc", "6.0"}), 1e-9)
	assert.Equal(t, 0.0, grades.CourseMean(nil))
	assert.Equal(t, 0.0, grades.CourseMean([]string{"x"}))
}

func TestParseAttendance(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "100", want: 100},
		{raw: ">85", want: 85},
		{raw: "0", want: 0},
		{raw: "n/a", want: 0},
		{raw: "", want: 0},
		{raw: " 85", want: 0},
		{raw: "> 85", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, grades.ParseAttendance(tt.raw))
		})
	}
}

func TestSummarize(t *testing.T) {
	courses := []grades.CourseResult{
		grades.NewCourseResult(models.CourseData{Code: "A", GradeStrings: []string{"5.5", "6.5"}, AttendanceText: "100"}),
		grades.NewCourseResult(models.CourseData{Code: "B", GradeStrings: []string{"4.0"}, AttendanceText: ">75"}),
	}

	s := grades.Summarize(courses)

	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.Equal(t, 160, s.GradePoints)
	assert.Equal(t, 87, s.Assist)
}

func TestSummarize_CourseWithoutGradesCountsAsZero(t *testing.T) {
	courses := []grades.CourseResult{
		{Code: "A", Grades: []float64{6.0}, Attendance: 100},
		{Code: "B", Attendance: 0},
	}

	s := grades.Summarize(courses)

	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.Equal(t, 60, s.GradePoints)
	assert.Equal(t, 50, s.Assist)
}

func TestSummarize_ClampsAssist(t *testing.T) {
	s := grades.Summarize([]grades.CourseResult{{Code: "A", Attendance: 250}})
	assert.Equal(t, 100, s.Assist)

	assert.Equal(t, grades.Summary{}, grades.Summarize(nil))
}

func TestScores(t *testing.T) {
	scores := grades.Scores([]grades.CourseResult{{Code: "A", Grades: []float64{7, 5}, Attendance: 90}})
	assert.Equal(t, []models.CourseScore{{Code: "A", Mean: 6, Attendance: 90}}, scores)
}
