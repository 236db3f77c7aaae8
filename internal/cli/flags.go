package cli

import (
	"fmt"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/spf13/pflag"
)

// scopeFlags are the --period/--subject/--group flags shared by commands
// that work on one grading scope.
type scopeFlags struct {
	period  int
	subject int
	group   int
}

func (s *scopeFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("scope", pflag.ContinueOnError)
	fs.IntVar(&s.period, "period", 0, "Academic period ID")
	fs.IntVar(&s.subject, "subject", 0, "Subject ID")
	fs.IntVar(&s.group, "group", 0, "Group ID")
	return fs
}

func (s *scopeFlags) scope() domain.Scope {
	return domain.Scope{PeriodID: s.period, SubjectID: s.subject, GroupID: s.group}
}

func (s *scopeFlags) require() (domain.Scope, error) {
	scope := s.scope()
	if !scope.Complete() {
		return scope, fmt.Errorf("--period, --subject and --group are required")
	}
	return scope, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return &t, nil
}
