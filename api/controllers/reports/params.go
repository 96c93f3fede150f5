package reports

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/andhikasp/salesdash-backend/api/validators"
	"github.com/andhikasp/salesdash-backend/internal/report"
	"github.com/andhikasp/salesdash-backend/pkg/config"
	pkgerrors "github.com/andhikasp/salesdash-backend/pkg/errors"
)

func resolveCriteria(r *http.Request) (report.FilterCriteria, error) {
	year, err := resolveYear(r)
	if err != nil {
		return report.FilterCriteria{}, err
	}

	month, err := resolveMonth(r)
	if err != nil {
		return report.FilterCriteria{}, err
	}

	return report.FilterCriteria{
		Year:       year,
		Month:      month,
		Categories: resolveCategories(r),
	}, nil
}

func resolveYear(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "year must be a positive integer or 'all'").
			WithDetails(map[string]any{"field": "year"})
	}
	return year, nil
}

func resolveMonth(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("month"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", nil
	}
	if !validMonthKey(raw) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "month must use the YYYY-MM key format or 'all'").
			WithDetails(map[string]any{"field": "month"})
	}
	return raw, nil
}

// resolveCategories distinguishes an absent parameter (every category, the
// selector default) from a present-but-empty one (an explicit empty
// selection, which matches nothing).
func resolveCategories(r *http.Request) []string {
	values, ok := r.URL.Query()["categories"]
	if !ok {
		return nil
	}
	categories := []string{}
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				categories = append(categories, token)
			}
		}
	}
	return categories
}

func resolveOptions(r *http.Request, cfg config.ReportConfig) (report.Options, error) {
	top, err := validators.ParseQueryInt(r, "top", cfg.DefaultTopN, 1, cfg.MaxTopN)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		CategoryMode:  report.CountMode(strings.TrimSpace(r.URL.Query().Get("category_mode"))),
		FrequencyMode: report.FrequencyMode(strings.TrimSpace(r.URL.Query().Get("frequency_mode"))),
		TopN:          top,
	}, nil
}

func validMonthKey(value string) bool {
	if len(value) != 7 || value[4] != '-' {
		return false
	}
	for i, c := range value {
		if i == 4 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	month := (value[5]-'0')*10 + (value[6] - '0')
	return month >= 1 && month <= 12
}
