// Package plan validates analysis plans: static structural and logical
// checks over an ordered list of steps. No LLM involved.
package plan

import "fmt"

// Step is one entry of an analysis plan.
type Step struct {
	Step   int            `json:"step"`
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
	Reason string         `json:"reason"`
}

// Validation is the outcome of checking a plan.
type Validation struct {
	Valid       bool     `json:"valid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

var allowedActions = map[string]bool{
	"scrape_reviews":            true,
	"discover_menu_items":       true,
	"discover_aspects":          true,
	"analyze_sentiment":         true,
	"analyze_menu_performance":  true,
	"analyze_aspects":           true,
	"detect_anomalies":          true,
	"generate_insights_chef":    true,
	"generate_insights_manager": true,
	"save_results":              true,
	"send_alerts":               true,
	"index_for_rag":             true,
}

var requiredActions = []string{"scrape_reviews", "discover_menu_items", "discover_aspects"}

// Validate checks plan structure, action names, step numbering and ordering.
// It never fails hard; every problem is reported as an issue or suggestion.
func Validate(steps []Step) Validation {
	var issues, suggestions []string

	if len(steps) == 0 {
		return Validation{
			Valid:       false,
			Issues:      []string{"plan is empty"},
			Suggestions: []string{"generate a new plan"},
		}
	}

	if len(steps) < 5 {
		issues = append(issues, fmt.Sprintf("plan too short (%d steps) - needs at least 5", len(steps)))
	}
	if len(steps) > 20 {
		issues = append(issues, fmt.Sprintf("plan too long (%d steps) - should be under 20", len(steps)))
	}

	actions := make(map[string]int, len(steps))
	for i, s := range steps {
		n := i + 1
		if s.Action == "" {
			issues = append(issues, fmt.Sprintf("step %d: missing action", n))
		} else if !allowedActions[s.Action] {
			issues = append(issues, fmt.Sprintf("step %d: unknown action %q", n, s.Action))
		}
		if s.Reason == "" {
			issues = append(issues, fmt.Sprintf("step %d: missing reason", n))
		} else if len(s.Reason) < 10 {
			issues = append(issues, fmt.Sprintf("step %d: reason too short (%q)", n, s.Reason))
		}
		if s.Step != n {
			issues = append(issues, fmt.Sprintf("step %d: step number mismatch (got %d)", n, s.Step))
		}
		if _, seen := actions[s.Action]; !seen {
			actions[s.Action] = i
		}
	}

	for _, req := range requiredActions {
		if _, ok := actions[req]; !ok {
			issues = append(issues, fmt.Sprintf("missing required action: %s", req))
		}
	}

	// Scraping must come before anything can be analyzed.
	if idx, ok := actions["scrape_reviews"]; ok && idx > 2 {
		suggestions = append(suggestions, "'scrape_reviews' should happen earlier in the plan")
	}
	if _, ok := actions["save_results"]; !ok {
		suggestions = append(suggestions, "consider adding 'save_results' to persist the analysis")
	}
	if _, ok := actions["detect_anomalies"]; !ok {
		suggestions = append(suggestions, "consider adding 'detect_anomalies' for proactive insights")
	}

	return Validation{Valid: len(issues) == 0, Issues: issues, Suggestions: suggestions}
}
