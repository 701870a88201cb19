package application_test

import (
	"time"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// recordX and recordY are the two records used throughout the filter scenarios.
var (
	recordX = model.CredentialRecord{
		Name:       "Microsoft Certified: Data Analyst Associate",
		Category:   "Data Analytics",
		Issuer:     "Microsoft",
		Status:     model.StatusAchieved,
		Tags:       []string{"Power BI", "DAX", "Data Modeling"},
		Location:   "Online",
		AchievedOn: datePtr(2024, time.January, 15),
	}
	recordY = model.CredentialRecord{
		Name:     "AWS Certified Data Analytics",
		Category: "Cloud Data Analytics",
		Issuer:   "Amazon Web Services",
		Status:   model.StatusDesired,
		Tags:     []string{"AWS", "Big Data", "Cloud"},
		Location: "Online",
	}
)

// sampleRecords mirrors the default catalog shipped with the page.
func sampleRecords() []model.CredentialRecord {
	return []model.CredentialRecord{
		recordX,
		{
			Name:       "Google Data Analytics Professional Certificate",
			Category:   "Data Analytics",
			Issuer:     "Google (Coursera)",
			Status:     model.StatusAchieved,
			Tags:       []string{"R", "SQL", "Tableau", "Data Visualization"},
			Location:   "Online",
			AchievedOn: datePtr(2023, time.December, 10),
		},
		recordY,
		{
			Name:     "Tableau Desktop Specialist",
			Category: "Data Visualization",
			Issuer:   "Tableau",
			Status:   model.StatusDesired,
			Tags:     []string{"Tableau", "Visualization", "Dashboard"},
			Location: "Online",
		},
	}
}

func names(records []model.CredentialRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}
