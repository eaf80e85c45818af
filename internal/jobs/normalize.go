package jobs

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/pkg/slug"
)

var (
	errMissingTitle   = errors.New("job row has no title")
	errMissingCompany = errors.New("job row has no company name")
)

// Defaults holds the values the normalizer substitutes for absent fields.
type Defaults struct {
	// PlaceholderLogo is used when a job row carries no company logo.
	PlaceholderLogo string
	// Currency is used when a salary range carries no currency.
	Currency string
}

// Normalize maps a raw store row into the canonical Job shape.
// Nil arrays become empty slices, the salary is only set when both
// bounds are present and the slug is always derived from the title,
// never read from the store. Rows missing the title or company name
// are rejected.
func Normalize(row db.Job, defaults Defaults) (Job, error) {
	if row.Title == "" {
		return Job{}, errMissingTitle
	}
	if row.CompanyName == "" {
		return Job{}, errMissingCompany
	}

	job := Job{
		ID:              row.ID.String(),
		Title:           row.Title,
		Company:         row.CompanyName,
		CompanyLogo:     defaults.PlaceholderLogo,
		CompanyWebsite:  row.CompanyWebsite.String,
		Location:        row.Location,
		Type:            NormalizeJobType(row.JobType),
		Remote:          row.IsRemote,
		Description:     row.Description,
		Requirements:    emptyIfNil(row.Requirements),
		Benefits:        emptyIfNil(row.Benefits),
		Tags:            emptyIfNil(row.Tags),
		PostedDate:      row.CreatedAt,
		Featured:        row.IsFeatured,
		Urgent:          false,
		Applications:    row.ApplicationsCount,
		CompanyID:       row.EmployerID.String(),
		ContactEmail:    row.ContactEmail.String,
		ContactPhone:    row.ContactPhone.String,
		ContactApplyURL: row.ApplyUrl.String,
		EmployerID:      row.EmployerID.String(),
		IsFilled:        row.IsFilled,
		Slug:            slug.Make(row.Title),
		Categories:      toCategories(row.Categories),
	}

	if row.CompanyLogo.Valid && row.CompanyLogo.String != "" {
		job.CompanyLogo = row.CompanyLogo.String
	}

	if row.SalaryMin.Valid && row.SalaryMax.Valid {
		currency := defaults.Currency
		if row.SalaryCurrency.Valid && row.SalaryCurrency.String != "" {
			currency = row.SalaryCurrency.String
		}
		if currency == "" {
			currency = "AUD"
		}
		job.Salary = &Salary{
			Min:      row.SalaryMin.Int32,
			Max:      row.SalaryMax.Int32,
			Currency: currency,
		}
	}

	return job, nil
}

// NormalizeAll maps every row, dropping rows the normalizer rejects.
// A dropped row is logged, never propagated as a failure.
func NormalizeAll(rows []db.Job, defaults Defaults) []Job {
	result := make([]Job, 0, len(rows))
	for _, row := range rows {
		job, err := Normalize(row, defaults)
		if err != nil {
			log.Warn().Err(err).Str("job_id", row.ID.String()).Msg("skipping malformed job row")
			continue
		}
		result = append(result, job)
	}
	return result
}

// NormalizeJobType converts a stored job type like "full_time" into the
// canonical display form "Full-time".
func NormalizeJobType(stored string) string {
	s := strings.ReplaceAll(stored, "_", "-")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StoredJobType is the inverse of NormalizeJobType: "Full-time" → "full_time".
func StoredJobType(canonical string) string {
	return strings.ReplaceAll(strings.ToLower(canonical), "-", "_")
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func toCategories(values []string) []Category {
	categories := make([]Category, 0, len(values))
	for _, v := range values {
		categories = append(categories, Category(v))
	}
	return categories
}
