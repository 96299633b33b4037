package tipstate

import (
	"strconv"
	"strings"
	"time"
)

// Attribute names the renderer writes on the tooltip span.
const (
	AttrTrigger = "data-trigger"
	AttrDelay   = "data-delay"
	AttrVisible = "data-visible"
)

// FromAttributes builds a Config from a rendered tooltip's data-* attributes.
// A trigger other than "click" means hover. The delay is read the way the
// browser's parseInt does: leading decimal digits, anything else is 0.
func FromAttributes(attrs map[string]string) Config {
	cfg := Config{Trigger: TriggerHover}
	if Trigger(attrs[AttrTrigger]) == TriggerClick {
		cfg.Trigger = TriggerClick
	}
	cfg.Delay = time.Duration(leadingInt(attrs[AttrDelay])) * time.Millisecond
	return cfg
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
