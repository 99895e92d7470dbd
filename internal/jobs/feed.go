package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxFeedDescriptionLen = 1000

// FeedClient fetches postings from a Muse-style public job feed.
type FeedClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFeedClient constructs a feed client for the given endpoint.
func NewFeedClient(baseURL string) *FeedClient {
	return &FeedClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Preferred roles map onto the feed's category taxonomy; anything
// unrecognized falls back to the broadest engineering category.
var roleCategories = map[string]string{
	"data scientist":       "Data and Analytics",
	"data analyst":         "Data and Analytics",
	"software engineer":    "Software Engineering",
	"software developer":   "Software Engineering",
	"full stack developer": "Software Engineering",
	"product manager":      "Product Management",
	"designer":             "Design",
	"ux designer":          "Design",
	"ui designer":          "Design",
}

var defaultCategories = []string{
	"Software Engineering",
	"Design",
	"Data and Analytics",
	"Product Management",
}

type feedResponse struct {
	Results []feedJob `json:"results"`
}

type feedJob struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Contents string `json:"contents"`
	Company  struct {
		Name string `json:"name"`
	} `json:"company"`
	Locations []struct {
		Name string `json:"name"`
	} `json:"locations"`
	Levels []struct {
		Name string `json:"name"`
	} `json:"levels"`
	Refs struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
}

// Fetch returns postings for one role/location query.
func (c *FeedClient) Fetch(ctx context.Context, role, location string) ([]JobRecord, error) {
	category, ok := roleCategories[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		category = "Software Engineering"
	}
	return c.fetchCategory(ctx, category, location)
}

// FetchAll returns postings across the default categories. Per-category
// failures are tolerated as long as at least one category succeeds.
func (c *FeedClient) FetchAll(ctx context.Context) ([]JobRecord, error) {
	var out []JobRecord
	var lastErr error
	for _, category := range defaultCategories {
		records, err := c.fetchCategory(ctx, category, "")
		if err != nil {
			lastErr = err
			continue
		}
		out = append(out, records...)
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (c *FeedClient) fetchCategory(ctx context.Context, category, location string) ([]JobRecord, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("page", "1")
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job feed returned %d for category %q", resp.StatusCode, category)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode job feed: %w", err)
	}

	out := make([]JobRecord, 0, len(payload.Results))
	for _, item := range payload.Results {
		out = append(out, feedJobToRecord(item))
	}
	return out, nil
}

func feedJobToRecord(item feedJob) JobRecord {
	desc := stripTags(item.Contents)

	location := "Remote"
	if len(item.Locations) > 0 && item.Locations[0].Name != "" {
		location = item.Locations[0].Name
	}

	level := "Not Specified"
	if len(item.Levels) > 0 && item.Levels[0].Name != "" {
		level = item.Levels[0].Name
	}

	company := item.Company.Name
	if company == "" {
		company = "Confidential Company"
	}

	display := desc
	if len(display) > maxFeedDescriptionLen {
		display = display[:maxFeedDescriptionLen] + "..."
	}

	return JobRecord{
		ID:              strconv.FormatInt(item.ID, 10),
		Title:           item.Name,
		Company:         company,
		Location:        location,
		Description:     display,
		RequiredSkills:  ExtractSkills(desc),
		ExperienceLevel: level,
		Salary:          "Competitive",
		URL:             item.Refs.LandingPage,
		Source:          "feed",
	}
}

var tagPattern = regexp.MustCompile(`<[^<]+?>`)

func stripTags(html string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(html, " "))
}

type skillKeyword struct {
	skill   string
	pattern *regexp.Regexp
}

// Word boundaries matter here: "go" must not match inside "good".
var skillKeywords = compileSkillKeywords([]struct {
	skill    string
	patterns []string
}{
	{"Python", []string{"python"}},
	{"Java", []string{"java", "jvm"}},
	{"JavaScript", []string{"javascript", "js", "es6"}},
	{"React", []string{"react", "reactjs"}},
	{"Node.js", []string{"node.js", "nodejs", "node"}},
	{"SQL", []string{"sql", "mysql", "postgresql", "postgres"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"Docker", []string{"docker", "container"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Machine Learning", []string{"machine learning", "ml", "ai"}},
	{"Data Analysis", []string{"data analysis", "analytics"}},
	{"Go", []string{"golang", "go lang"}},
	{"Rust", []string{"rust"}},
	{"C++", []string{"c\\+\\+"}},
	{"Git", []string{"git", "github"}},
	{"Agile", []string{"agile", "scrum"}},
	{"Communication", []string{"communication", "verbal", "written"}},
	{"Teamwork", []string{"teamwork", "collaboration"}},
	{"Figma", []string{"figma", "sketch"}},
	{"Marketing", []string{"marketing", "seo", "sem"}},
	{"Sales", []string{"sales", "selling"}},
})

func compileSkillKeywords(entries []struct {
	skill    string
	patterns []string
}) []skillKeyword {
	var out []skillKeyword
	for _, e := range entries {
		alternatives := make([]string, len(e.patterns))
		for i, p := range e.patterns {
			alternatives[i] = strings.ReplaceAll(p, ".", `\.`)
		}
		re := regexp.MustCompile(`\b(?:` + strings.Join(alternatives, "|") + `)\b`)
		out = append(out, skillKeyword{skill: e.skill, pattern: re})
	}
	return out
}

// ExtractSkills pulls a skill list out of free job-description text using
// keyword matching, with contextual fallbacks when nothing matches.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, kw := range skillKeywords {
		if kw.pattern.MatchString(lower) {
			found = append(found, kw.skill)
		}
	}
	if len(found) > 0 {
		return found
	}

	switch {
	case strings.Contains(lower, "software") || strings.Contains(lower, "developer"):
		return []string{"Software Engineering", "Git"}
	case strings.Contains(lower, "design"):
		return []string{"Design", "Figma"}
	case strings.Contains(lower, "data"):
		return []string{"Data Analysis", "SQL"}
	default:
		return []string{"Communication", "Teamwork"}
	}
}
