package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/models"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func endedEvent(endedDaysAgo int) *models.Event {
	end := testNow.AddDate(0, 0, -endedDaysAgo)
	return &models.Event{
		ID:            id.EventID(uuid.New()),
		Title:         "Ethics in Supervision",
		StartDate:     end.AddDate(0, 0, -1),
		EndDate:       &end,
		ApprovalState: models.ApprovalApproved,
	}
}

func TestClassifyOverdueCertificates(t *testing.T) {
	t.Run("flags certificates past the 45-day window", func(t *testing.T) {
		event := endedEvent(50)
		cert := &models.Certificate{ID: id.CertificateID(uuid.New()), EventID: event.ID}

		report := ClassifyOverdue(testNow, &Snapshot{
			Events:       []*models.Event{event},
			Certificates: []*models.Certificate{cert},
		})

		require.Len(t, report.Certificates, 1)
		assert.Equal(t, 5, report.Certificates[0].DaysOverdue)
		assert.Equal(t, event.Title, report.Certificates[0].EventTitle)
		assert.Equal(t, 1, report.TotalOverdue)
	})

	t.Run("within the window is not overdue", func(t *testing.T) {
		event := endedEvent(45)
		cert := &models.Certificate{ID: id.CertificateID(uuid.New()), EventID: event.ID}

		report := ClassifyOverdue(testNow, &Snapshot{
			Events:       []*models.Event{event},
			Certificates: []*models.Certificate{cert},
		})
		assert.Empty(t, report.Certificates)
	})

	t.Run("issued certificates are skipped", func(t *testing.T) {
		event := endedEvent(200)
		issued := testNow.AddDate(0, 0, -100)
		cert := &models.Certificate{ID: id.CertificateID(uuid.New()), EventID: event.ID, IssuedAt: &issued}

		report := ClassifyOverdue(testNow, &Snapshot{
			Events:       []*models.Event{event},
			Certificates: []*models.Certificate{cert},
		})
		assert.Empty(t, report.Certificates)
	})

	t.Run("missing anchor excludes the item", func(t *testing.T) {
		noEnd := &models.Event{ID: id.EventID(uuid.New()), Title: "Open-ended series"}
		cert := &models.Certificate{ID: id.CertificateID(uuid.New()), EventID: noEnd.ID}
		orphan := &models.Certificate{ID: id.CertificateID(uuid.New()), EventID: id.EventID(uuid.New())}

		report := ClassifyOverdue(testNow, &Snapshot{
			Events:       []*models.Event{noEnd},
			Certificates: []*models.Certificate{cert, orphan},
		})
		assert.Empty(t, report.Certificates, "null or unknown anchors must not produce overdue signals")
		assert.Equal(t, 0, report.TotalOverdue)
	})
}

func TestClassifyOverdueComplaints(t *testing.T) {
	t.Run("anchors on submission date", func(t *testing.T) {
		complaint := &models.Complaint{
			ID:          id.ComplaintID(uuid.New()),
			SubmittedAt: testNow.AddDate(0, 0, -46),
		}
		report := ClassifyOverdue(testNow, &Snapshot{Complaints: []*models.Complaint{complaint}})
		require.Len(t, report.Complaints, 1)
		assert.Equal(t, 1, report.Complaints[0].DaysOverdue)
	})

	t.Run("responded complaints are skipped", func(t *testing.T) {
		responded := testNow.AddDate(0, 0, -10)
		complaint := &models.Complaint{
			ID:          id.ComplaintID(uuid.New()),
			SubmittedAt: testNow.AddDate(0, 0, -300),
			RespondedAt: &responded,
		}
		report := ClassifyOverdue(testNow, &Snapshot{Complaints: []*models.Complaint{complaint}})
		assert.Empty(t, report.Complaints)
	})
}

func TestClassifyOverdueOrdering(t *testing.T) {
	older := endedEvent(100)
	newer := endedEvent(50)
	certs := []*models.Certificate{
		{ID: id.CertificateID(uuid.New()), EventID: newer.ID},
		{ID: id.CertificateID(uuid.New()), EventID: older.ID},
	}
	report := ClassifyOverdue(testNow, &Snapshot{
		Events:       []*models.Event{older, newer},
		Certificates: certs,
	})
	require.Len(t, report.Certificates, 2)
	assert.Greater(t, report.Certificates[0].DaysOverdue, report.Certificates[1].DaysOverdue,
		"most overdue listed first")
}

func TestDaysOverdueGrowsWithClock(t *testing.T) {
	event := endedEvent(44)
	fb := &models.FeedbackResponse{
		ID:          id.FeedbackID(uuid.New()),
		EventID:     event.ID,
		SubmittedAt: *event.EndDate,
	}
	snap := &Snapshot{Events: []*models.Event{event}, Feedback: []*models.FeedbackResponse{fb}}

	prev := 0
	for daysAhead := 0; daysAhead <= 30; daysAhead++ {
		report := ClassifyOverdue(testNow.AddDate(0, 0, daysAhead), snap)
		cur := 0
		if len(report.Feedback) == 1 {
			cur = report.Feedback[0].DaysOverdue
		}
		assert.GreaterOrEqual(t, cur, prev, "daysOverdue is monotone in now")
		prev = cur
	}
}
