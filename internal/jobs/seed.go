package jobs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads legacy postings from a CSV file with a header row. Skills
// are a semicolon-separated list inside one column. Rows missing a title
// are dropped; a malformed file fails wholesale.
func LoadCSV(path string) ([]JobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read postings header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["title"]; !ok {
		return nil, fmt.Errorf("postings file %s has no title column", path)
	}

	var out []JobRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read postings row %d: %w", line, err)
		}
		line++

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		title := field("title")
		if title == "" {
			continue
		}

		record := JobRecord{
			ID:              field("job_id"),
			Title:           title,
			Company:         field("company"),
			Location:        field("location"),
			Description:     field("description"),
			RequiredSkills:  splitSkills(field("required_skills")),
			ExperienceLevel: field("experience_level"),
			Salary:          field("salary"),
			Source:          "csv",
		}
		if record.ID == "" {
			record.ID = fmt.Sprintf("csv-%d", line)
		}
		if record.ExperienceLevel == "" {
			record.ExperienceLevel = "Not Specified"
		}
		out = append(out, record)
	}
	return out, nil
}

func splitSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type seedTemplate struct {
	title      string
	department string
	skills     []string
}

var seedTemplates = []seedTemplate{
	{"Senior Product Designer", "Design", []string{"Figma", "UI/UX", "Prototyping", "User Research"}},
	{"Software Engineer", "Engineering", []string{"Java", "Spring Boot", "AWS", "System Design"}},
	{"Marketing Manager", "Marketing", []string{"SEO", "Content Strategy", "Google Analytics", "Social Media"}},
	{"Financial Analyst", "Finance", []string{"Excel", "Financial Modeling", "Forecasting", "Accounting"}},
	{"Project Manager", "Management", []string{"Agile", "Scrum", "JIRA", "Stakeholder Management"}},
	{"Sales Representative", "Sales", []string{"CRM", "Negotiation", "Lead Generation", "Communication"}},
	{"HR Specialist", "Human Resources", []string{"Recruiting", "Employee Relations", "Onboarding", "HRIS"}},
}

var seedLocations = []string{"Remote", "New York, NY", "San Francisco, CA", "London, UK"}

var seedLevels = []string{"Entry level", "Mid-Senior level", "Director"}

// SeedJobs returns a deterministic set of diverse postings used when the
// corpus would otherwise be too small to produce useful matches.
func SeedJobs() []JobRecord {
	out := make([]JobRecord, 0, len(seedTemplates)*len(seedLevels))
	i := 0
	for _, level := range seedLevels {
		for _, tmpl := range seedTemplates {
			out = append(out, JobRecord{
				ID:              fmt.Sprintf("seed-%d", i),
				Title:           tmpl.title,
				Company:         fmt.Sprintf("%s Corp %d", tmpl.department, i),
				Location:        seedLocations[i%len(seedLocations)],
				Description: fmt.Sprintf("We are looking for a %s to join our %s team. You will use %s.",
					tmpl.title, tmpl.department, strings.Join(tmpl.skills, ", ")),
				RequiredSkills:  append([]string(nil), tmpl.skills...),
				ExperienceLevel: level,
				Salary:          fmt.Sprintf("$%dk/year", 60+(i*7)%90),
				Source:          "seed",
			})
			i++
		}
	}
	return out
}
