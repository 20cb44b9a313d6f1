package openhours

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects how a schedule is rendered into the output file.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json" or "yaml"; empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q; want text, json or yaml", s)
	}
}

func (r Rule) String() string {
	days := r.SortedDays()
	codes := make([]string, len(days))
	for i, d := range days {
		codes[i] = d.String()
	}
	intervals := make([]string, len(r.Intervals))
	for i, interval := range r.Intervals {
		intervals[i] = interval.String()
	}
	return "[" + strings.Join(codes, " ") + "] " + strings.Join(intervals, ",")
}

// String renders one rule per "; " separated clause:
//
//	[mo tu we th fr] 09:00-17:00; [sa] 09:00-12:00,14:00-18:00
func (s *WeeklySchedule) String() string {
	if s == nil {
		return ""
	}
	rules := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.String()
	}
	return strings.Join(rules, "; ")
}

type ruleView struct {
	Days      []string       `json:"days" yaml:"days"`
	Intervals []intervalView `json:"intervals" yaml:"intervals"`
}

type intervalView struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

func (s *WeeklySchedule) views() []ruleView {
	views := []ruleView{}
	if s == nil {
		return views
	}
	for _, r := range s.Rules {
		v := ruleView{}
		for _, d := range r.SortedDays() {
			v.Days = append(v.Days, d.String())
		}
		for _, i := range r.Intervals {
			v.Intervals = append(v.Intervals, intervalView{Start: i.Start.String(), End: i.End.String()})
		}
		views = append(views, v)
	}
	return views
}

// Render renders the schedule in the given format. JSON and YAML are
// single line lists of {days, intervals} objects.
func (s *WeeklySchedule) Render(format Format) (string, error) {
	switch format {
	case FormatText, "":
		return s.String(), nil
	case FormatJSON:
		b, err := json.Marshal(s.views())
		if err != nil {
			return "", fmt.Errorf("failed to render schedule as json: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		var node yaml.Node
		if err := node.Encode(s.views()); err != nil {
			return "", fmt.Errorf("failed to render schedule as yaml: %w", err)
		}
		node.Style = yaml.FlowStyle
		b, err := yaml.Marshal(&node)
		if err != nil {
			return "", fmt.Errorf("failed to render schedule as yaml: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
