package portal

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/vytor/edugame/internal/extract"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
)

// Session is an authenticated portal session for one student.
type Session struct {
	http    *resty.Client
	term    string
	locator extract.Locator
}

// GradesPath is the grades page of code in the given section.
func GradesPath(term, code string, section int) string {
	return fmt.Sprintf("/%s/%s/%d/notas/alumno", term, code, section)
}

// AttendancePath is the attendance page of code in the given section.
func AttendancePath(term, code string, section int) string {
	return fmt.Sprintf("/%s/%s/%d/asistencias2/", term, code, section)
}

// FetchCourse downloads the grades page then the attendance page of code.
// Each page is tried in section 1 and, when the portal refuses access there,
// once more in section 2.
func (s *Session) FetchCourse(ctx context.Context, code string) (models.RawCoursePage, error) {
	log := logger.FromContext(ctx).WithPrefix("portal").WithField("course", code)

	grades, err := s.fetchWithFallback(ctx, log, "grades", func(section int) string {
		return GradesPath(s.term, code, section)
	})
	if err != nil {
		return models.RawCoursePage{}, err
	}

	attendance, err := s.fetchWithFallback(ctx, log, "attendance", func(section int) string {
		return AttendancePath(s.term, code, section)
	})
	if err != nil {
		return models.RawCoursePage{}, err
	}

	log.Debug("fetched course pages: grades=%d bytes, attendance=%d bytes", len(grades), len(attendance))
	return models.RawCoursePage{Code: code, GradesText: grades, AttendanceText: attendance}, nil
}

func (s *Session) fetchWithFallback(ctx context.Context, log *logger.Logger, resource string, path func(section int) string) (string, error) {
	body, err := s.get(ctx, resource, path(1))
	if err != nil {
		return "", err
	}
	if !s.locator.Denied(body) {
		return body, nil
	}

	log.Debug("%s denied in section 1, trying section 2", resource)
	metrics.PortalFallbacksTotal.WithLabelValues(resource).Inc()
	body, err = s.get(ctx, resource, path(2))
	if err != nil {
		return "", err
	}
	if s.locator.Denied(body) {
		log.Warn("%s denied in both sections", resource)
	}
	return body, nil
}

func (s *Session) get(ctx context.Context, step, path string) (string, error) {
	metrics.PortalRequestsTotal.WithLabelValues(step).Inc()
	res, err := s.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return "", &NetworkError{Op: "GET", URL: s.http.BaseURL + path, Err: err}
	}
	return string(res.Body()), nil
}
