package simulations

import "errors"

// ErrNotFound indicates a simulation id with no catalog entry.
var ErrNotFound = errors.New("simulation not found")

// Action is one decision a candidate can take inside a simulation.
type Action struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	Description     string  `json:"description"`
	Time            string  `json:"time"`
	Risk            string  `json:"risk"`
	Complexity      string  `json:"complexity"`
	Impact          float64 `json:"impact"`
	RiskLabel       string  `json:"risk_label,omitempty"`
	CostLabel       string  `json:"cost_label,omitempty"`
	ComplexityLabel string  `json:"complexity_label,omitempty"`
	ExtraLabel      string  `json:"extra_label,omitempty"`
}

// Scenario is the narrative framing shown before the candidate acts.
type Scenario struct {
	Context      string   `json:"context"`
	ProblemBrief string   `json:"problem_brief"`
	KeyAreas     []string `json:"key_areas"`
}

// Simulation is a complete workplace exercise.
type Simulation struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Role          string   `json:"role"`
	TargetSkill   string   `json:"target_skill"`
	EstimatedTime string   `json:"estimated_time"`
	MaxImpact     float64  `json:"max_impact"`
	Scenario      Scenario `json:"scenario"`
	Actions       []Action `json:"actions"`
}

// Catalog holds the simulation bank. Read-only after construction.
type Catalog struct {
	sims     map[string]Simulation
	keywords map[string][]string
	order    []string
}

// NewCatalog builds the built-in simulation bank.
func NewCatalog() *Catalog {
	sims := []Simulation{
		{
			ID:            "sql-perf-audit",
			Title:         "SQL Performance Audit: Optimizing the Customer Dashboard",
			Role:          "Data Analyst",
			TargetSkill:   "SQL Query Optimization",
			EstimatedTime: "20-45 min",
			MaxImpact:     15.0,
			Scenario: Scenario{
				Context:      `We're experiencing significant slowdowns on the Customer Overview Dashboard, particularly for the "Top Customers by Revenue" report. This report is critical for our sales and marketing teams, and they've reported increased load times, sometimes exceeding 30 seconds, over the past 24 hours.`,
				ProblemBrief: "The attached SQL query is the primary driver for this report. We suspect the recent increase in customer data volume might be contributing to the issue, but we haven't made any explicit changes to the query itself recently.",
				KeyAreas:     []string{"Indexing strategies", "Query rewrite opportunities", "Database resource utilization"},
			},
			Actions: []Action{
				{
					ID:          "inspect-plan",
					Label:       "Inspect Query Plan",
					Description: "Analyze the execution plan to understand how the database processes the query.",
					Time:        "5 min",
					Risk:        "Low",
					Complexity:  "Low",
					Impact:      2.0,
				},
				{
					ID:          "sample-rows",
					Label:       "Sample More Rows",
					Description: "Fetch a larger sample of data to verify data distribution and potential skew.",
					Time:        "10 min",
					Risk:        "Low",
					Complexity:  "Medium",
					Impact:      1.0,
					CostLabel:   "Moderate Cost",
				},
				{
					ID:          "suggest-index",
					Label:       "Suggest Indexing",
					Description: `Propose adding an index on "orders.order_date" column.`,
					Time:        "15 min",
					Risk:        "High",
					Complexity:  "Medium",
					Impact:      5.0,
					RiskLabel:   "High Risk",
					ExtraLabel:  "Irreversible (without rollback)",
				},
				{
					ID:              "optimize-joins",
					Label:           "Optimize Joins",
					Description:     "Rewrite or reorder joins to improve execution efficiency.",
					Time:            "20 min",
					Risk:            "Medium",
					Complexity:      "High",
					Impact:          7.0,
					ComplexityLabel: "High Complexity",
				},
			},
		},
		{
			ID:            "python-data-cleanup",
			Title:         "Data Engineering: Pipeline Failure Recovery",
			Role:          "Data Engineer",
			TargetSkill:   "Python Data Engineering",
			EstimatedTime: "15-30 min",
			MaxImpact:     12.0,
			Scenario: Scenario{
				Context:      `The nightly ETL pipeline for the "Monthly Sales Report" failed due to unexpected schema changes in the source JSON files. Over 50,000 records are currently stuck in the "Dirty" queue.`,
				ProblemBrief: `The Python script responsible for cleaning the data is throwing a "KeyError". We need to modify the cleaning logic to handle missing keys gracefully and re-process the batch without duplicates.`,
				KeyAreas:     []string{"Exception handling", "Schema validation", "Idempotent processing"},
			},
			Actions: []Action{
				{
					ID:          "add-try-except",
					Label:       "Add Try-Except Block",
					Description: "Wrap missing key access in try-except to log and skip invalid records.",
					Time:        "5 min",
					Risk:        "Low",
					Complexity:  "Low",
					Impact:      3.0,
				},
				{
					ID:          "pydantic-val",
					Label:       "Implement Pydantic Validation",
					Description: "Use Pydantic models to strictly validate incoming JSON schema.",
					Time:        "15 min",
					Risk:        "Low",
					Complexity:  "Medium",
					Impact:      6.0,
				},
				{
					ID:          "upsert-logic",
					Label:       "Implement Upsert Logic",
					Description: "Modify the database sink to use UPSERT to prevent record duplication during retry.",
					Time:        "10 min",
					Risk:        "Medium",
					Complexity:  "Medium",
					Impact:      4.0,
				},
			},
		},
		{
			ID:            "aws-security-audit",
			Title:         "Cloud Security: IAM Policy Hardening",
			Role:          "DevOps Engineer",
			TargetSkill:   "Cloud Platform (AWS)",
			EstimatedTime: "20-35 min",
			MaxImpact:     10.0,
			Scenario: Scenario{
				Context:      `A security scan has flagged several IAM roles in our production account with "AdministratorAccess" or overly broad "Resource": "*" permissions.`,
				ProblemBrief: `We need to move towards the "Principle of Least Privilege". Your task is to audit the "Web-Server-Role" and restrict its access to only the necessary S3 buckets and DynamoDB tables.`,
				KeyAreas:     []string{"IAM Role configuration", "S3 Bucket Policies", "Resource-level permissions"},
			},
			Actions: []Action{
				{
					ID:          "remove-admin",
					Label:       "Remove AdministratorAccess",
					Description: "Detach the managed AdministratorAccess policy from the role.",
					Time:        "5 min",
					Risk:        "Medium",
					Complexity:  "Low",
					Impact:      4.0,
				},
				{
					ID:          "limit-res",
					Label:       "Limit Resource Scope",
					Description: `Replace "*" in Resource blocks with specific ARNs of the production buckets.`,
					Time:        "15 min",
					Risk:        "High",
					Complexity:  "Medium",
					Impact:      6.0,
					RiskLabel:   "High Risk of Downtime",
				},
			},
		},
		{
			ID:            "react-perf-fix",
			Title:         "Frontend: React Component Optimization",
			Role:          "Software Developer",
			TargetSkill:   "React & Frontend Performance",
			EstimatedTime: "15-25 min",
			MaxImpact:     15.0,
			Scenario: Scenario{
				Context:      `The "Global Search" component is rerendering excessively, causing a noticeable UI lag when users type. The current implementation uses a heavy list that resets on every keystroke.`,
				ProblemBrief: "Your task is to implement memoization and debouncing to stop the unnecessary rerenders and improve the input responsiveness.",
				KeyAreas:     []string{"useMemo/useCallback", "Debouncing implementation", "Virtualization basics"},
			},
			Actions: []Action{
				{
					ID:          "apply-memo",
					Label:       "Apply React.memo",
					Description: "Wrap the list item components in React.memo to prevent rerenders when props dont change.",
					Time:        "5 min",
					Risk:        "Low",
					Complexity:  "Low",
					Impact:      5.0,
				},
				{
					ID:          "debounce-input",
					Label:       "Debounce Search Input",
					Description: "Implement a 300ms debounce on the search term change to reduce filtering frequency.",
					Time:        "10 min",
					Risk:        "Low",
					Complexity:  "Medium",
					Impact:      10.0,
				},
			},
		},
	}

	c := &Catalog{
		sims: make(map[string]Simulation, len(sims)),
		keywords: map[string][]string{
			"sql-perf-audit":      {"index", "execution plan", "scan", "join", "cost", "selectivity", "optimization", "bottleneck", "performance"},
			"python-data-cleanup": {"try", "except", "pydantic", "schema", "validation", "upsert", "duplicate", "error handling", "idempotent"},
			"aws-security-audit":  {"least privilege", "policy", "arn", "role", "access", "wildcard", "iam", "hardening", "audit"},
			"react-perf-fix":      {"memo", "render", "debounce", "state", "virtual", "callback", "rerender", "optimization", "hooks"},
		},
		order: make([]string, 0, len(sims)),
	}
	for _, sim := range sims {
		c.sims[sim.ID] = sim
		c.order = append(c.order, sim.ID)
	}
	return c
}

// Get looks up one simulation by id.
func (c *Catalog) Get(id string) (Simulation, error) {
	sim, ok := c.sims[id]
	if !ok {
		return Simulation{}, ErrNotFound
	}
	return sim, nil
}

// List returns all simulations in catalog order.
func (c *Catalog) List() []Simulation {
	out := make([]Simulation, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.sims[id])
	}
	return out
}
