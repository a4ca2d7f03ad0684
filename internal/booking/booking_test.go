package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accrahealth/carebot/pkg/logging"
)

func validSubmission() Submission {
	return Submission{
		ServiceID:   "svc-cardiology",
		Service:     "Cardiology",
		Date:        "2026-09-15",
		Time:        "10:00 am",
		PatientName: "Ama Mensah",
		Email:       "ama@example.com",
		Phone:       "0241234567",
	}
}

func TestMemorySubmitterSuccess(t *testing.T) {
	sub := NewMemorySubmitter(logging.New("error"))
	receipt, err := sub.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Regexp(t, `^KBH-\d{4}-[A-Z0-9]{5}$`, receipt.ConfirmationID)
	assert.Len(t, sub.Accepted(), 1)
}

func TestMemorySubmitterRejectsIncomplete(t *testing.T) {
	sub := NewMemorySubmitter(logging.New("error"))

	s := validSubmission()
	s.Date = ""
	_, err := sub.Submit(context.Background(), s)
	assert.Error(t, err)

	s = validSubmission()
	s.Email = ""
	_, err = sub.Submit(context.Background(), s)
	assert.Error(t, err)

	assert.Empty(t, sub.Accepted())
}

func TestMemorySubmitterCancelledContext(t *testing.T) {
	sub := NewMemorySubmitter(logging.New("error"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sub.Submit(ctx, validSubmission())
	assert.Error(t, err)
}
