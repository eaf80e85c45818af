package jobs

import (
	"sort"
	"strings"
)

// Criteria is a set of optional job filters. Active criteria are
// combined with AND; the zero value matches everything.
type Criteria struct {
	// Text matches case-insensitively against title, company or any tag.
	Text string
	// Location matches case-insensitively as a substring of the job location.
	Location string
	// Type matches the canonical job type exactly, ignoring case.
	Type string
	// Remote, when true, keeps only remote jobs. False is no constraint.
	Remote bool
	// CompanyID matches the owning account id exactly.
	CompanyID string
	// Category keeps jobs carrying the given category.
	Category Category
}

// Filter returns the jobs matching every active criterion. It never
// fails: empty criteria return the input unchanged and an unmatched
// criterion yields an empty result.
func Filter(all []Job, c Criteria) []Job {
	result := make([]Job, 0, len(all))
	for _, job := range all {
		if matches(job, c) {
			result = append(result, job)
		}
	}
	return result
}

func matches(job Job, c Criteria) bool {
	if c.Text != "" && !matchesText(job, c.Text) {
		return false
	}
	if c.Location != "" && !containsFold(job.Location, c.Location) {
		return false
	}
	if c.Type != "" && !strings.EqualFold(job.Type, c.Type) {
		return false
	}
	if c.Remote && !job.Remote {
		return false
	}
	if c.CompanyID != "" && job.CompanyID != c.CompanyID {
		return false
	}
	if c.Category != "" && !job.HasCategory(c.Category) {
		return false
	}
	return true
}

func matchesText(job Job, text string) bool {
	if containsFold(job.Title, text) || containsFold(job.Company, text) {
		return true
	}
	for _, tag := range job.Tags {
		if containsFold(tag, text) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SortFeaturedFirst stable-sorts jobs so featured postings come first.
// No secondary key is applied: jobs with equal featured flags keep
// their input order.
func SortFeaturedFirst(all []Job) []Job {
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Featured && !all[j].Featured
	})
	return all
}
