package compose

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hupe1980/agentdeck/core"
)

// DefaultTrigger is the character that renders mentions and starts
// suggestion mode unless overridden.
const DefaultTrigger = '@'

// ParseCanonical converts a canonical flat string into segments, resolving
// each trigger + label token against the registry. Labels are matched
// longest-first and must end on a word boundary; tokens whose label does not
// resolve degrade to plain text.
//
// Round-tripping through ToCanonical is lossless for any input whose labels
// all resolve.
func ParseCanonical(s string, registry core.Registry, trigger rune) *core.ComposedMessage {
	names := displayNamesByLength(registry)
	runes := []rune(s)
	msg := &core.ComposedMessage{}

	var run []rune
	flush := func() {
		if len(run) > 0 {
			msg.Segments = append(msg.Segments, core.TextSegment{Text: string(run)})
			run = nil
		}
	}

	for i := 0; i < len(runes); {
		if runes[i] != trigger {
			run = append(run, runes[i])
			i++
			continue
		}
		rest := string(runes[i+1:])
		name, ok := matchDisplayName(rest, names)
		if !ok {
			run = append(run, runes[i])
			i++
			continue
		}
		d, _ := registry.GetByDisplayName(name)
		flush()
		msg.Segments = append(msg.Segments, core.MentionSegment{
			Entity: core.MentionEntity{EntityID: d.ID, DisplayLabel: name},
		})
		i += 1 + len([]rune(name))
	}
	flush()
	return msg
}

// ToCanonical renders a message back to its canonical flat string: text runs
// verbatim, each mention as trigger char + display label.
func ToCanonical(msg *core.ComposedMessage, trigger rune) string {
	var b strings.Builder
	for _, seg := range msg.Segments {
		switch s := seg.(type) {
		case core.TextSegment:
			b.WriteString(s.Text)
		case core.MentionSegment:
			b.WriteRune(trigger)
			b.WriteString(s.Entity.DisplayLabel)
		}
	}
	return b.String()
}

// displayNamesByLength returns all registered display names sorted longest
// first so that overlapping names ("Forge", "Forge Pro") match greedily.
func displayNamesByLength(registry core.Registry) []string {
	all := registry.GetAll()
	names := make([]string, 0, len(all))
	for _, d := range all {
		if d.Name != "" {
			names = append(names, d.Name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return names
}

// matchDisplayName finds the longest registered name that prefixes rest and
// ends on a word boundary (end of string or a non letter/digit rune).
func matchDisplayName(rest string, names []string) (string, bool) {
	for _, name := range names {
		if !strings.HasPrefix(rest, name) {
			continue
		}
		tail := []rune(rest[len(name):])
		if len(tail) == 0 || !isWordRune(tail[0]) {
			return name, true
		}
	}
	return "", false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
