package jobs

// Company is a read-time projection grouped from job rows. There is no
// persisted company entity: the board knows only what the jobs say.
type Company struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Logo          string `json:"logo,omitempty"`
	Description   string `json:"description"`
	Website       string `json:"website"`
	Location      string `json:"location"`
	Size          string `json:"size"`
	Industry      string `json:"industry"`
	OpenPositions int    `json:"openPositions"`
}

const companyBlurb = "Leading employer in Western Sydney offering great career opportunities."

// Companies groups the given jobs by owning account id. The first job
// seen for an employer supplies the name and website; the open-position
// count includes only non-filled jobs.
func Companies(all []Job, placeholderLogo string) []Company {
	index := make(map[string]int)
	companies := make([]Company, 0)

	for _, job := range all {
		if _, ok := index[job.EmployerID]; !ok {
			index[job.EmployerID] = len(companies)
			companies = append(companies, Company{
				ID:          job.EmployerID,
				Name:        job.Company,
				Logo:        placeholderLogo,
				Description: companyBlurb,
				Website:     job.CompanyWebsite,
				Location:    "Western Sydney",
				Size:        "51-200",
				Industry:    "Various",
			})
		}
		if !job.IsFilled {
			companies[index[job.EmployerID]].OpenPositions++
		}
	}

	return companies
}
