package appointment

import (
	"sort"
	"time"

	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

// UpcomingLimit caps the dashboard's upcoming-contacts list.
const UpcomingLimit = 8

// DateLayout is the storage format for appointment dates. Handlers reject
// anything else at the entry boundary, so lexicographic comparison of two
// stored dates is chronological comparison.
const DateLayout = "2006-01-02"

// Entry is one booked contact, flattened out of a client record.
type Entry struct {
	ClientID       string `json:"client_id"`
	ClientName     string `json:"client_name"`
	PersonalNumber string `json:"personal_number,omitempty"`
	Kind           Kind   `json:"kind"`
	KindLabel      string `json:"kind_label"`
	Date           string `json:"date"`
	Person         string `json:"person,omitempty"`
	Details        string `json:"details,omitempty"`
}

func entryFor(c *models.Client, k Kind) Entry {
	date, person, details := Fields(c, k)
	return Entry{
		ClientID:       c.ID,
		ClientName:     c.Name,
		PersonalNumber: c.PersonalNumber,
		Kind:           k,
		KindLabel:      k.Label(),
		Date:           date,
		Person:         person,
		Details:        details,
	}
}

// NextForClient returns the chronologically first booked contact on the
// client, or nil when none of the five dates is set. Equal dates resolve
// to the earlier kind in the fixed order.
func NextForClient(c *models.Client) *Entry {
	var next *Entry
	for _, k := range Kinds() {
		date, _, _ := Fields(c, k)
		if date == "" {
			continue
		}
		if next == nil || date < next.Date {
			e := entryFor(c, k)
			next = &e
		}
	}
	return next
}

// Upcoming flattens every booked contact across all clients, drops
// entries dated strictly before today (day granularity) and returns at
// most UpcomingLimit entries sorted ascending by date. Kind order breaks
// date ties; client input order breaks (date, kind) ties.
func Upcoming(clients []models.Client, today time.Time) []Entry {
	cutoff := today.Format(DateLayout)

	var all []Entry
	for i := range clients {
		for _, k := range Kinds() {
			date, _, _ := Fields(&clients[i], k)
			if date == "" || date < cutoff {
				continue
			}
			all = append(all, entryFor(&clients[i], k))
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date < all[j].Date
	})

	if len(all) > UpcomingLimit {
		all = all[:UpcomingLimit]
	}
	return all
}

// CountWithinWeek counts entries dated up to and including the coming
// Sunday, matching the dashboard's "denna vecka" figure.
func CountWithinWeek(entries []Entry, today time.Time) int {
	endOfWeek := today.AddDate(0, 0, 7-int(today.Weekday())).Format(DateLayout)

	n := 0
	for _, e := range entries {
		if e.Date <= endOfWeek {
			n++
		}
	}
	return n
}

// Inactive returns the clients still in status Planned that have no
// booked contact of any kind.
func Inactive(clients []models.Client) []models.Client {
	var out []models.Client
	for i := range clients {
		if clients[i].InterventionStatus != models.StatusPlanned {
			continue
		}
		if NextForClient(&clients[i]) == nil {
			out = append(out, clients[i])
		}
	}
	return out
}
