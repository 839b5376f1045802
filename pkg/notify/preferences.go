package notify

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/validator"
)

// CategoryPrefs overrides delivery behavior for one notification category.
type CategoryPrefs struct {
	// MinPriority is the priority floor; notifications below it are
	// suppressed. Empty means no floor.
	MinPriority Priority `json:"min_priority,omitempty"`

	// Sound disables the category's sound hint when false.
	Sound bool `json:"sound"`

	// Channels restricts the category to a channel subset.
	// Empty means no restriction.
	Channels []Channel `json:"channels,omitempty"`
}

// QuietHours is a daily suppression window in local wall-clock time.
// When Start > End the window wraps past midnight.
type QuietHours struct {
	Enabled  bool   `json:"enabled"`
	Start    string `json:"start"` // "HH:MM"
	End      string `json:"end"`   // "HH:MM"
	Timezone string `json:"timezone,omitempty"`
}

// active reports whether now falls inside the quiet-hours window.
func (q QuietHours) active(now time.Time) bool {
	if !q.Enabled {
		return false
	}

	if q.Timezone != "" {
		if loc, err := time.LoadLocation(q.Timezone); err == nil {
			now = now.In(loc)
		}
	}
	current := now.Format("15:04")

	if q.Start <= q.End {
		return current >= q.Start && current <= q.End
	}
	// Window crosses midnight.
	return current >= q.Start || current <= q.End
}

// Preferences is the engine's mutable delivery configuration. It is read on
// every admission decision and mutated only through UpdatePreferences.
type Preferences struct {
	// Channels enables or disables each delivery surface.
	Channels map[Channel]bool `json:"channels"`

	// Categories holds per-category overrides keyed by category label.
	Categories map[string]CategoryPrefs `json:"categories,omitempty"`

	QuietHours   QuietHours `json:"quiet_hours"`
	DoNotDisturb bool       `json:"do_not_disturb"`

	// MaxStored caps the notification store.
	MaxStored int `json:"max_stored"`

	GroupByCategory bool `json:"group_by_category"`
	ShowPreviews    bool `json:"show_previews"`
}

// DefaultPreferences returns permissive defaults: every channel enabled,
// no category overrides, no quiet hours, previews on.
func DefaultPreferences() Preferences {
	channels := make(map[Channel]bool, len(Channels()))
	for _, ch := range Channels() {
		channels[ch] = true
	}
	return Preferences{
		Channels:     channels,
		Categories:   make(map[string]CategoryPrefs),
		MaxStored:    100,
		ShowPreviews: true,
	}
}

// shouldDeliver decides whether the notification may be delivered at all,
// given current preferences and wall-clock time. Per-channel enablement is
// deliberately not consulted here; the dispatcher filters channels.
func (p Preferences) shouldDeliver(n Notification, now time.Time) bool {
	if p.DoNotDisturb && n.Priority != PriorityCritical {
		return false
	}
	if !p.DoNotDisturb && p.QuietHours.active(now) && n.Priority != PriorityCritical {
		return false
	}
	if cp, ok := p.Categories[n.Category]; ok && cp.MinPriority != "" {
		if !n.Priority.AtLeast(cp.MinPriority) {
			return false
		}
	}
	return true
}

// channelAllowed applies the category channel subset, when one is set.
func (p Preferences) channelAllowed(n Notification, ch Channel) bool {
	if !p.Channels[ch] {
		return false
	}
	cp, ok := p.Categories[n.Category]
	if !ok || len(cp.Channels) == 0 {
		return true
	}
	for _, allowed := range cp.Channels {
		if ch == allowed {
			return true
		}
	}
	return false
}

// normalized fills nil maps and a non-positive store cap so caller-built
// Preferences structs are safe to merge patches into.
func (p Preferences) normalized(defaultMaxStored int) Preferences {
	if p.Channels == nil {
		p.Channels = make(map[Channel]bool)
	}
	if p.Categories == nil {
		p.Categories = make(map[string]CategoryPrefs)
	}
	if p.MaxStored <= 0 {
		p.MaxStored = defaultMaxStored
	}
	return p
}

// clone returns a deep copy so callers can't mutate engine state.
func (p Preferences) clone() Preferences {
	out := p
	out.Channels = make(map[Channel]bool, len(p.Channels))
	for ch, enabled := range p.Channels {
		out.Channels[ch] = enabled
	}
	out.Categories = make(map[string]CategoryPrefs, len(p.Categories))
	for cat, cp := range p.Categories {
		cp.Channels = append([]Channel(nil), cp.Channels...)
		out.Categories[cat] = cp
	}
	return out
}

// PreferencesPatch is a partial preferences update. Nil fields leave the
// current value untouched; map entries merge into the current maps.
type PreferencesPatch struct {
	Channels        map[Channel]bool
	Categories      map[string]CategoryPrefs
	QuietHours      *QuietHours
	DoNotDisturb    *bool
	MaxStored       *int
	GroupByCategory *bool
	ShowPreviews    *bool
}

func (patch PreferencesPatch) validate() error {
	if q := patch.QuietHours; q != nil && q.Enabled {
		if err := validator.Apply(
			validator.TimeOfDay("quiet_hours.start", q.Start),
			validator.TimeOfDay("quiet_hours.end", q.End),
		); err != nil {
			return err
		}
		if q.Timezone != "" {
			if _, err := time.LoadLocation(q.Timezone); err != nil {
				return fmt.Errorf("%w: unknown timezone %q", ErrInvalidPreferences, q.Timezone)
			}
		}
	}
	if patch.MaxStored != nil && *patch.MaxStored <= 0 {
		return fmt.Errorf("%w: max stored must be positive", ErrInvalidPreferences)
	}
	return nil
}

// apply merges the patch into p.
func (p *Preferences) apply(patch PreferencesPatch) {
	for ch, enabled := range patch.Channels {
		p.Channels[ch] = enabled
	}
	for cat, cp := range patch.Categories {
		p.Categories[cat] = cp
	}
	if patch.QuietHours != nil {
		p.QuietHours = *patch.QuietHours
	}
	if patch.DoNotDisturb != nil {
		p.DoNotDisturb = *patch.DoNotDisturb
	}
	if patch.MaxStored != nil {
		p.MaxStored = *patch.MaxStored
	}
	if patch.GroupByCategory != nil {
		p.GroupByCategory = *patch.GroupByCategory
	}
	if patch.ShowPreviews != nil {
		p.ShowPreviews = *patch.ShowPreviews
	}
}
