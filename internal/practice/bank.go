// Package practice serves short skill drills: trivia rounds, spot-the-bug
// challenges, and branching workplace scenarios.
package practice

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
)

// ErrNotFound indicates a scenario id with no bank entry.
var ErrNotFound = errors.New("scenario not found")

// TriviaQuestion is one multiple-choice question.
type TriviaQuestion struct {
	Question string   `json:"q"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

// DebugChallenge is a spot-the-bug exercise.
type DebugChallenge struct {
	Title       string   `json:"title"`
	Language    string   `json:"language"`
	Code        string   `json:"code"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

// ScenarioChoice is one branch out of a scenario node.
type ScenarioChoice struct {
	Text string `json:"text"`
	Next string `json:"next"`
}

// ScenarioNode is one step in a branching scenario. An empty Choices list
// marks a terminal node.
type ScenarioNode struct {
	Text    string           `json:"text"`
	Choices []ScenarioChoice `json:"choices"`
}

// Bank holds the practice content and a guarded RNG for sampling.
type Bank struct {
	trivia    map[string][]TriviaQuestion
	bugs      []DebugChallenge
	scenarios map[string]map[string]ScenarioNode

	mu  sync.Mutex
	rng *rand.Rand
}

const (
	maxTriviaQuestions = 5
	debugSampleSize    = 2
)

// NewBank builds the built-in practice content with a seeded RNG.
func NewBank(seed int64) *Bank {
	return &Bank{
		trivia:    triviaBank(),
		bugs:      debugBank(),
		scenarios: scenarioBank(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// TriviaFor builds a shuffled round from questions matching the given
// skills. Lookup keys are the raw lowercased names, not canonical skill
// names: the bank is keyed on how candidates actually write them, "aws"
// included. No match means the whole bank is in play.
func (b *Bank) TriviaFor(skills []string) []TriviaQuestion {
	var questions []TriviaQuestion
	for _, skill := range skills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if qs, ok := b.trivia[key]; ok {
			questions = append(questions, qs...)
		}
	}
	if len(questions) == 0 {
		for _, qs := range b.trivia {
			questions = append(questions, qs...)
		}
	}

	b.mu.Lock()
	b.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	b.mu.Unlock()

	if len(questions) > maxTriviaQuestions {
		questions = questions[:maxTriviaQuestions]
	}
	return questions
}

// DebugChallenges samples two spot-the-bug exercises.
func (b *Bank) DebugChallenges() []DebugChallenge {
	picks := make([]DebugChallenge, len(b.bugs))
	copy(picks, b.bugs)

	b.mu.Lock()
	b.rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})
	b.mu.Unlock()

	if len(picks) > debugSampleSize {
		picks = picks[:debugSampleSize]
	}
	return picks
}

// Scenario returns a branching scenario's full node graph.
func (b *Bank) Scenario(id string) (map[string]ScenarioNode, error) {
	nodes, ok := b.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	return nodes, nil
}

func triviaBank() map[string][]TriviaQuestion {
	return map[string][]TriviaQuestion{
		"python": {
			{Question: "What data type is immutable in Python?", Options: []string{"List", "Dictionary", "Set", "Tuple"}, Correct: "Tuple"},
			{Question: "What does the GIL stand for?", Options: []string{"Global Interpreter Lock", "General Interface Loop", "Graphical Integrated Layer", "Global Interface Lock"}, Correct: "Global Interpreter Lock"},
			{Question: "Which keyword is used to create a generator?", Options: []string{"return", "yield", "gen", "produce"}, Correct: "yield"},
			{Question: "What is the purpose of dunder methods (e.g., __init__)?", Options: []string{"Double underline", "Operator overloading", "Private methods", "Static methods"}, Correct: "Operator overloading"},
			{Question: "Which library is commonly used for data manipulation?", Options: []string{"Flask", "Pandas", "Requests", "Django"}, Correct: "Pandas"},
		},
		"react": {
			{Question: "What hook is used for side effects?", Options: []string{"useState", "useContext", "useEffect", "useReducer"}, Correct: "useEffect"},
			{Question: "How do you pass data to a child component?", Options: []string{"State", "Props", "Context", "Redux"}, Correct: "Props"},
			{Question: "Which method is required in a Class Component?", Options: []string{"render()", "return()", "componentDidMount()", "build()"}, Correct: "render()"},
			{Question: "What is the virtual DOM?", Options: []string{"A direct copy of the DOM", "An in-memory representation", "A CSS styling method", "A browser plugin"}, Correct: "An in-memory representation"},
			{Question: "Which hook provides access to the context?", Options: []string{"useState", "useContext", "useRef", "useMemo"}, Correct: "useContext"},
		},
		"sql": {
			{Question: "Which command removes all records but keeps the table structure?", Options: []string{"DROP", "DELETE", "TRUNCATE", "REMOVE"}, Correct: "TRUNCATE"},
			{Question: "What does ACID stand for?", Options: []string{"Atomicity, Consistency, Isolation, Durability", "Association, Consistency, Isolation, Database", "Atomicity, Connection, Integrity, Data", "All, Common, Internal, Data"}, Correct: "Atomicity, Consistency, Isolation, Durability"},
			{Question: "What is a Foreign Key?", Options: []string{"A primary key in another table", "A unique index", "A column for passwords", "A table without data"}, Correct: "A primary key in another table"},
			{Question: "Which JOIN returns all rows from both tables?", Options: []string{"INNER JOIN", "LEFT JOIN", "FULL JOIN", "RIGHT JOIN"}, Correct: "FULL JOIN"},
		},
		"aws": {
			{Question: "Which service provides object storage?", Options: []string{"EC2", "RDS", "S3", "Lambda"}, Correct: "S3"},
			{Question: "What is the serverless compute service?", Options: []string{"EC2", "Beanstalk", "Lambda", "Fargate"}, Correct: "Lambda"},
			{Question: "Which service is used for NoSQL databases?", Options: []string{"RDS", "Redshift", "DynamoDB", "ElastiCache"}, Correct: "DynamoDB"},
			{Question: "What does IAM stand for?", Options: []string{"Identity and Access Management", "Internal AWS Matrix", "Internet Access Manager", "Identity API Module"}, Correct: "Identity and Access Management"},
		},
	}
}

func debugBank() []DebugChallenge {
	return []DebugChallenge{
		{
			Title:       "The Infinite Loop",
			Language:    "Python",
			Code:        "def count_down(n):\n    while n > 0:\n        print(n)\n        n + 1",
			Options:     []string{"Syntax Error", "n is never decremented", "Print statement is wrong", "Function needs return"},
			Correct:     "n is never decremented",
			Explanation: "n + 1 calculates the value but does not reassign it to n. Should be n -= 1.",
		},
		{
			Title:       "React State Mutation",
			Language:    "JavaScript",
			Code:        "const [items, setItems] = useState([]);\n\nfunction addItem(item) {\n    items.push(item);\n    setItems(items);\n}",
			Options:     []string{"Push returns length", "Directly mutating state", "Syntactically wrong", "Need useEffect"},
			Correct:     "Directly mutating state",
			Explanation: "Never mutate state directly. Use setItems([...items, item]).",
		},
		{
			Title:       "SQL Comparison Error",
			Language:    "SQL",
			Code:        "SELECT * FROM users WHERE status = NULL",
			Options:     []string{"Column status missing", "Should use IS NULL", "NULL is case sensitive", "Semicolon missing"},
			Correct:     "Should use IS NULL",
			Explanation: "In SQL, NULL comparison must use IS NULL or IS NOT NULL, not the equals operator.",
		},
		{
			Title:       "The Floating Point Trap",
			Language:    "JavaScript",
			Code:        "if (0.1 + 0.2 === 0.3) {\n    alert('Equal!');\n} else {\n    alert('Not equal!');\n}",
			Options:     []string{"Alerts Not equal!", "Syntax Error", "Missing semicolons", "0.1 is not valid"},
			Correct:     "Alerts Not equal!",
			Explanation: "Floating point arithmetic in JS (and many languages) lead to precision issues. 0.1 + 0.2 is actually 0.30000000000000004.",
		},
	}
}

func scenarioBank() map[string]map[string]ScenarioNode {
	return map[string]map[string]ScenarioNode{
		"junior_dev": {
			"start": {
				Text: `It is 4:55 PM on Friday. A critical alert fires: "Production DB CPU at 99%". What do you do?`,
				Choices: []ScenarioChoice{
					{Text: "Ignore it, it is probably a glitch.", Next: "failure_ignore"},
					{Text: "Check the running queries.", Next: "check_queries"},
					{Text: "Restart the database immediately.", Next: "failure_restart"},
				},
			},
			"check_queries": {
				Text: `You see a query: "SELECT * FROM logs" running for 4 hours. It was launched by the CTO.`,
				Choices: []ScenarioChoice{
					{Text: "Kill the query immediately.", Next: "success_kill"},
					{Text: "Call the CTO to ask.", Next: "success_call"},
				},
			},
			"failure_ignore": {
				Text:    "5:15 PM: The site goes down completely. You are fired. Game Over.",
				Choices: []ScenarioChoice{},
			},
			"failure_restart": {
				Text:    "You restart the DB. Data corruption occurs because of unclean shutdown. The weekend is ruined. Game Over.",
				Choices: []ScenarioChoice{},
			},
			"success_kill": {
				Text:    "You killed the query. CPU drops to 5%. The CTO sends a angry Slack message but thanks you later for saving production. +50 XP.",
				Choices: []ScenarioChoice{},
			},
			"success_call": {
				Text:    `CTO says "Oops, wrong DB!". He cancels it. You saved the day with communication. +100 XP.`,
				Choices: []ScenarioChoice{},
			},
		},
	}
}
