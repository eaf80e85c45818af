package jobs

import "time"

// SampleJobs is the static dataset the preview boundary falls back to
// when the store is unreachable.
func SampleJobs() []Job {
	return []Job{
		{
			ID:           "1",
			Title:        "Administration Officer",
			Company:      "Parramatta City Council",
			CompanyLogo:  "https://images.pexels.com/photos/1181676/pexels-photo-1181676.jpeg?auto=compress&cs=tinysrgb&w=100&h=100",
			Location:     "Parramatta",
			Type:         "Full-time",
			Description:  "We are looking for an Administration Officer to join our team and support various administrative functions.",
			Requirements: []string{},
			Benefits:     []string{},
			Tags:         []string{},
			PostedDate:   time.Now(),
			Slug:         "administration-officer",
			Categories:   []Category{CategoryAdministration},
		},
		{
			ID:           "2",
			Title:        "Registered Nurse",
			Company:      "Blacktown Hospital",
			CompanyLogo:  "https://images.pexels.com/photos/3861969/pexels-photo-3861969.jpeg?auto=compress&cs=tinysrgb&w=100&h=100",
			Location:     "Blacktown",
			Type:         "Full-time",
			Description:  "Join our healthcare team to provide quality patient care in a busy hospital environment.",
			Requirements: []string{},
			Benefits:     []string{},
			Tags:         []string{},
			PostedDate:   time.Now(),
			Slug:         "registered-nurse",
			Categories:   []Category{CategoryHealthcare},
		},
	}
}
