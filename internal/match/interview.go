package match

import "fmt"

// InterviewQuestion is one targeted prep question for a skill gap.
type InterviewQuestion struct {
	Skill    string `json:"skill"`
	Question string `json:"question"`
}

var interviewTemplates = []string{
	"Describe a project where you used %s to solve a real problem.",
	"What are the most common pitfalls when working with %s, and how do you avoid them?",
	"How would you explain %s to a teammate who has never used it?",
	"Walk me through how you would debug a production issue involving %s.",
}

const maxInterviewQuestions = 3

// InterviewQuestions builds prep questions for the top missing skills.
// Template choice is positional so the same gap list always yields the
// same questions.
func InterviewQuestions(missing []string) []InterviewQuestion {
	out := make([]InterviewQuestion, 0, maxInterviewQuestions)
	for i, skill := range missing {
		if i >= maxInterviewQuestions {
			break
		}
		out = append(out, InterviewQuestion{
			Skill:    skill,
			Question: fmt.Sprintf(interviewTemplates[i%len(interviewTemplates)], skill),
		})
	}
	return out
}
