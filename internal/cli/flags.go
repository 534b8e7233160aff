package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// viewModeValue is a pflag.Value restricted to the known view modes.
type viewModeValue struct {
	mode *domain.ViewMode
}

var _ pflag.Value = viewModeValue{}

func (v viewModeValue) String() string {
	if v.mode == nil {
		return ""
	}
	return string(*v.mode)
}

func (v viewModeValue) Set(s string) error {
	m, err := domain.ParseViewMode(s)
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

func (v viewModeValue) Type() string { return "view" }

// addViewFlags registers --view and its --client shorthand.
func addViewFlags(fs *pflag.FlagSet, mode *domain.ViewMode, client *bool) {
	fs.Var(viewModeValue{mode: mode}, "view", "Audience: internal or client")
	fs.BoolVar(client, "client", false, "Shorthand for --view client")
}

// parseOptionalDate parses YYYY-MM-DD; "" and "none" mean no date.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}
