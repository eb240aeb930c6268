package engine

import (
	"sort"
	"time"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/policy"
)

// OverdueCertificate is a certificate still unissued past its 45-day window.
type OverdueCertificate struct {
	CertificateID id.CertificateID `json:"certificateId"`
	EventID       id.EventID       `json:"eventId"`
	EventTitle    string           `json:"eventTitle"`
	Deadline      time.Time        `json:"deadline"`
	DaysOverdue   int              `json:"daysOverdue"`
}

// OverdueFeedback is attendee feedback unreviewed past its 45-day window.
type OverdueFeedback struct {
	FeedbackID  id.FeedbackID `json:"feedbackId"`
	EventID     id.EventID    `json:"eventId"`
	EventTitle  string        `json:"eventTitle"`
	Deadline    time.Time     `json:"deadline"`
	DaysOverdue int           `json:"daysOverdue"`
}

// OverdueComplaint is a complaint unanswered past its 45-day window.
type OverdueComplaint struct {
	ComplaintID id.ComplaintID `json:"complaintId"`
	SubmittedAt time.Time      `json:"submittedAt"`
	Deadline    time.Time      `json:"deadline"`
	DaysOverdue int            `json:"daysOverdue"`
}

// OverdueReport lists every obligation past its regulatory deadline.
type OverdueReport struct {
	Certificates []OverdueCertificate `json:"certificates"`
	Feedback     []OverdueFeedback    `json:"feedback"`
	Complaints   []OverdueComplaint   `json:"complaints"`
	TotalOverdue int                  `json:"totalOverdue"`
}

// ClassifyOverdue scans pending certificates, feedback and complaints and
// flags items past their deadline. Certificates and feedback anchor on the
// event's end date; complaints anchor on their submission date.
//
// Items whose anchor is missing (event not in the snapshot, or event without
// an end date) are excluded entirely: an ambiguous anchor must not produce a
// false compliance signal in either direction.
func ClassifyOverdue(now time.Time, snap *Snapshot) OverdueReport {
	events := snap.eventsByID()
	report := OverdueReport{
		Certificates: []OverdueCertificate{},
		Feedback:     []OverdueFeedback{},
		Complaints:   []OverdueComplaint{},
	}

	for _, cert := range snap.Certificates {
		if !cert.IsPending() {
			continue
		}
		event, ok := events[cert.EventID]
		if !ok || event.EndDate == nil {
			continue
		}
		deadline := policy.Deadline(*event.EndDate, policy.ResponseWindowDays)
		days := policy.DaysOverdue(now, deadline)
		if days < 1 {
			continue
		}
		report.Certificates = append(report.Certificates, OverdueCertificate{
			CertificateID: cert.ID,
			EventID:       event.ID,
			EventTitle:    event.Title,
			Deadline:      deadline,
			DaysOverdue:   days,
		})
	}

	for _, fb := range snap.Feedback {
		if !fb.IsPending() {
			continue
		}
		event, ok := events[fb.EventID]
		if !ok || event.EndDate == nil {
			continue
		}
		deadline := policy.Deadline(*event.EndDate, policy.ResponseWindowDays)
		days := policy.DaysOverdue(now, deadline)
		if days < 1 {
			continue
		}
		report.Feedback = append(report.Feedback, OverdueFeedback{
			FeedbackID:  fb.ID,
			EventID:     event.ID,
			EventTitle:  event.Title,
			Deadline:    deadline,
			DaysOverdue: days,
		})
	}

	for _, complaint := range snap.Complaints {
		if !complaint.IsPending() {
			continue
		}
		deadline := policy.Deadline(complaint.SubmittedAt, policy.ResponseWindowDays)
		days := policy.DaysOverdue(now, deadline)
		if days < 1 {
			continue
		}
		report.Complaints = append(report.Complaints, OverdueComplaint{
			ComplaintID: complaint.ID,
			SubmittedAt: complaint.SubmittedAt,
			Deadline:    deadline,
			DaysOverdue: days,
		})
	}

	// Most-overdue first, ties broken by ID so identical snapshots always
	// serialize identically for the audit export.
	sort.Slice(report.Certificates, func(i, j int) bool {
		a, b := report.Certificates[i], report.Certificates[j]
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.CertificateID.String() < b.CertificateID.String()
	})
	sort.Slice(report.Feedback, func(i, j int) bool {
		a, b := report.Feedback[i], report.Feedback[j]
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.FeedbackID.String() < b.FeedbackID.String()
	})
	sort.Slice(report.Complaints, func(i, j int) bool {
		a, b := report.Complaints[i], report.Complaints[j]
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.ComplaintID.String() < b.ComplaintID.String()
	})

	report.TotalOverdue = len(report.Certificates) + len(report.Feedback) + len(report.Complaints)
	return report
}
