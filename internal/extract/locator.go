package extract

import "strings"

const (
	DefaultName       = "Desconocido"
	DefaultAttendance = "0"
)

// Markers is the set of literal strings that anchor every extracted field.
type Markers struct {
	GradeStart       string `json:"grade_start"`
	GradeEnd         string `json:"grade_end"`
	AttendanceStart  string `json:"attendance_start"`
	AttendanceEnd    string `json:"attendance_end"`
	NameStart        string `json:"name_start"`
	NameEnd          string `json:"name_end"`
	PermissionDenied string `json:"permission_denied"`
	ExamToken        string `json:"exam_token"`
	ArtifactToken    string `json:"artifact_token"`
}

// DefaultMarkers matches the U-Campus student pages.
func DefaultMarkers() Markers {
	return Markers{
		GradeStart:       `<h1 class="strong"><span class="">`,
		GradeEnd:         `</span></h1>`,
		AttendanceStart:  `<th>Asistencia`,
		AttendanceEnd:    `%</h1>`,
		NameStart:        `alias: '`,
		NameEnd:          `',`,
		PermissionDenied: `No tienes permisos para ver esta`,
		ExamToken:        `Examen`,
		ArtifactToken:    `wrong`,
	}
}

// Locator finds student fields in page text.
type Locator interface {
	// GradeOffset is the 1-based position of the first regular grade cell.
	GradeOffset(gradesText string) int
	// Grades returns up to count grade strings starting at offset.
	Grades(gradesText string, offset, count int) []string
	// Attendance returns the attendance percentage text, "0" when absent.
	Attendance(attendanceText string) string
	// DisplayName returns the student's display name, DefaultName when absent.
	DisplayName(gradesText string) string
	// Denied reports whether the page is the portal's permission refusal.
	Denied(text string) bool
}

type markerLocator struct {
	m Markers
}

var _ Locator = (*markerLocator)(nil)

// NewLocator returns a Locator driven by m.
func NewLocator(m Markers) Locator {
	return &markerLocator{m: m}
}

// GradeOffset is 2 when an exam cell precedes the regular grades, else 1.
func (l *markerLocator) GradeOffset(gradesText string) int {
	if l.m.ExamToken != "" && strings.Contains(gradesText, l.m.ExamToken) {
		return 2
	}
	return 1
}

func (l *markerLocator) Grades(gradesText string, offset, count int) []string {
	clean := StripArtifacts(gradesText, l.m.ArtifactToken)
	grades := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if g, ok := NthBetween(clean, l.m.GradeStart, l.m.GradeEnd, offset+i); ok {
			grades = append(grades, g)
		}
	}
	return grades
}

func (l *markerLocator) Attendance(attendanceText string) string {
	v, ok := SuffixBetween(attendanceText, l.m.AttendanceStart, l.m.AttendanceEnd)
	if !ok {
		v = DefaultAttendance
	}
	return strings.ReplaceAll(v, ">", "")
}

func (l *markerLocator) DisplayName(gradesText string) string {
	if name, ok := NthBetween(gradesText, l.m.NameStart, l.m.NameEnd, 1); ok {
		return name
	}
	return DefaultName
}

func (l *markerLocator) Denied(text string) bool {
	return l.m.PermissionDenied != "" && strings.Contains(text, l.m.PermissionDenied)
}
