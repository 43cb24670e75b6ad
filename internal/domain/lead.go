package domain

import "time"

// Lead is a homeowner enquiry routed to the builder, together with the
// builder's progress on it.
type Lead struct {
	Ref         string // short marketplace reference, e.g. "LD-4821"
	Title       string
	Description string // markdown from the enquiry form
	Category    string // trade category, e.g. "plumbing"
	Postcode    string
	Phone       string
	BudgetPence int64 // homeowner's indicated budget
	QuotePence  int64 // builder's quote, 0 until quoted
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns an independent copy of the lead.
func (l Lead) Clone() Lead {
	// All fields are value types today; the method exists so callers don't
	// need to care when reference-typed fields are added.
	return l
}

// Builder identifies a builder profile present in a market snapshot.
type Builder struct {
	ID   string
	Name string
}

// Stats aggregates a lead list into the dashboard headline counts.
type Stats struct {
	Total       int
	New         int
	Quoted      int
	InProgress  int
	Completed   int
	EarnedPence int64 // sum of quotes on completed leads
}

// ComputeStats tallies leads into dashboard counts.
func ComputeStats(leads []Lead) Stats {
	var s Stats
	for _, l := range leads {
		s.Total++
		switch l.Status {
		case StatusNew:
			s.New++
		case StatusQuoted:
			s.Quoted++
		case StatusAccepted, StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
			s.EarnedPence += l.QuotePence
		}
	}
	return s
}
