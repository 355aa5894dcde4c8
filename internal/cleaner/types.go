// pattern: Functional Core

package cleaner

// Action is what happened to one project's dependency directory.
type Action string

const (
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
	ActionDryRun  Action = "dry-run"
)

// Outcome records the resolution of one project.
type Outcome struct {
	Project string // Project directory
	Group   string // Monorepo root when decided as part of a group, "" for standalone
	Action  Action
	Err     error // Set when Action is ActionFailed
}

// Summary counts outcomes by action.
type Summary struct {
	Deleted int
	Skipped int
	Failed  int
	DryRun  int
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Action {
		case ActionDeleted:
			s.Deleted++
		case ActionSkipped:
			s.Skipped++
		case ActionFailed:
			s.Failed++
		case ActionDryRun:
			s.DryRun++
		}
	}
	return s
}
