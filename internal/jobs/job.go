package jobs

import (
	"time"

	"github.com/wsjobs/go-job-board/pkg/slug"
)

// Category is one of the fixed job categories shown on the board.
type Category string

const (
	CategoryAdministration Category = "Administration"
	CategoryAccounting     Category = "Accounting & Finance"
	CategoryCustomer       Category = "Customer Service"
	CategoryEducation      Category = "Education & Training"
	CategoryEngineering    Category = "Engineering"
	CategoryHealthcare     Category = "Healthcare & Medical"
	CategoryHospitality    Category = "Hospitality & Tourism"
	CategoryHR             Category = "Human Resources"
	CategoryIT             Category = "Information Technology"
	CategoryLegal          Category = "Legal"
	CategoryManufacturing  Category = "Manufacturing"
	CategoryMarketing      Category = "Marketing & Communications"
	CategoryRealEstate     Category = "Real Estate"
	CategoryRetail         Category = "Retail & Sales"
	CategoryTrades         Category = "Trades & Services"
	CategoryTransport      Category = "Transport & Logistics"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryAdministration,
	CategoryAccounting,
	CategoryCustomer,
	CategoryEducation,
	CategoryEngineering,
	CategoryHealthcare,
	CategoryHospitality,
	CategoryHR,
	CategoryIT,
	CategoryLegal,
	CategoryManufacturing,
	CategoryMarketing,
	CategoryRealEstate,
	CategoryRetail,
	CategoryTrades,
	CategoryTransport,
}

// MaxCategories is the most categories a single posting may carry.
// Enforced at the form/API layer, not by the store.
const MaxCategories = 3

// JobTypes are the accepted canonical job types.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// Salary is a compensation range. It is only present on a job when
// both bounds were supplied.
type Salary struct {
	Min      int32  `json:"min"`
	Max      int32  `json:"max"`
	Currency string `json:"currency"`
}

// Job is the canonical in-memory job shape used by the API and the
// preview renderer. It is produced from raw store rows by Normalize.
type Job struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	CompanyLogo     string     `json:"companyLogo,omitempty"`
	CompanyWebsite  string     `json:"companyWebsite,omitempty"`
	Location        string     `json:"location"`
	Type            string     `json:"type"`
	Remote          bool       `json:"remote"`
	Salary          *Salary    `json:"salary,omitempty"`
	Description     string     `json:"description"`
	Requirements    []string   `json:"requirements"`
	Benefits        []string   `json:"benefits"`
	Tags            []string   `json:"tags"`
	PostedDate      time.Time  `json:"postedDate"`
	Featured        bool       `json:"featured"`
	Urgent          bool       `json:"urgent"`
	Applications    int32      `json:"applications"`
	CompanyID       string     `json:"companyId"`
	ContactEmail    string     `json:"contactEmail,omitempty"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	ContactApplyURL string     `json:"contactApplyUrl,omitempty"`
	EmployerID      string     `json:"employerId"`
	IsFilled        bool       `json:"isFilled"`
	Slug            string     `json:"slug"`
	Categories      []Category `json:"categories"`
}

// HasCategory reports whether the job carries the given category.
func (j Job) HasCategory(c Category) bool {
	for _, jc := range j.Categories {
		if jc == c {
			return true
		}
	}
	return false
}

// Resolve returns the first job in candidates whose title-derived slug
// equals s. Slugs are not unique: when two titles normalize to the same
// slug the first match wins.
func Resolve(s string, candidates []Job) (Job, bool) {
	for _, job := range candidates {
		if slug.Make(job.Title) == s {
			return job, true
		}
	}
	return Job{}, false
}
