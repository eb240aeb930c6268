package engine

import (
	"math"
	"sort"
	"time"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/policy"
)

// RetentionStatus describes where an ended event sits in its 3-year document
// retention window.
type RetentionStatus string

const (
	// RetentionActive: deadline far off, documents still being collected.
	RetentionActive RetentionStatus = "active"
	// RetentionDueSoon: deadline within the configured warning window.
	RetentionDueSoon RetentionStatus = "due_soon"
	// RetentionPastDue: deadline passed with documents still outstanding.
	RetentionPastDue RetentionStatus = "past_due"
	// RetentionArchived: checklist complete; nothing outstanding.
	RetentionArchived RetentionStatus = "archived"
)

// RetentionEntry is the derived retention record for one ended event.
type RetentionEntry struct {
	EventID              id.EventID      `json:"eventId"`
	EventTitle           string          `json:"eventTitle"`
	EventEndDate         time.Time       `json:"eventEndDate"`
	RetentionDeadline    time.Time       `json:"retentionDeadline"`
	RetentionStatus      RetentionStatus `json:"retentionStatus"`
	CompletionPercentage int             `json:"completionPercentage"`
	MissingDocuments     []string        `json:"missingDocuments"`
}

// TrackRetention derives a retention entry for every event whose end date has
// passed. Events without an end date have no retention anchor and are
// excluded. The required-document set is whatever checklist the snapshot
// carries for the event; the engine only counts completed entries.
//
// A complete checklist archives the event regardless of the deadline; an
// empty checklist (no requirements recorded) is treated as nothing
// outstanding once the deadline passes.
func TrackRetention(now time.Time, snap *Snapshot, pol policy.Policy) []RetentionEntry {
	entries := []RetentionEntry{}

	for _, event := range snap.Events {
		if !event.HasEnded(now) {
			continue
		}
		deadline := policy.Deadline(*event.EndDate, policy.RetentionWindowDays)

		checklist := snap.Documents[event.ID]
		total := len(checklist)
		completed := 0
		missing := []string{}
		for key, done := range checklist {
			if done {
				completed++
			} else {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)

		percentage := 100
		if total > 0 {
			percentage = int(math.Round(float64(completed) / float64(total) * 100))
		}

		var status RetentionStatus
		switch {
		case total > 0 && completed == total:
			status = RetentionArchived
		case now.After(deadline):
			if completed == total {
				status = RetentionArchived
			} else {
				status = RetentionPastDue
			}
		case policy.DaysUntil(now, deadline) <= pol.RetentionWarningDays:
			status = RetentionDueSoon
		default:
			status = RetentionActive
		}

		entries = append(entries, RetentionEntry{
			EventID:              event.ID,
			EventTitle:           event.Title,
			EventEndDate:         *event.EndDate,
			RetentionDeadline:    deadline,
			RetentionStatus:      status,
			CompletionPercentage: percentage,
			MissingDocuments:     missing,
		})
	}

	// Closest deadline first; ID tie-break keeps output deterministic.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].RetentionDeadline.Equal(entries[j].RetentionDeadline) {
			return entries[i].RetentionDeadline.Before(entries[j].RetentionDeadline)
		}
		return entries[i].EventID.String() < entries[j].EventID.String()
	})
	return entries
}
