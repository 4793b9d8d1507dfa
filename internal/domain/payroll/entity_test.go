package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"draft to for review", StatusDraft, StatusForReview, true},
		{"draft straight to approved", StatusDraft, StatusApproved, false},
		{"draft straight to processed", StatusDraft, StatusProcessed, false},
		{"for review to approved", StatusForReview, StatusApproved, true},
		{"for review to rejected", StatusForReview, StatusRejected, true},
		{"for review back to draft", StatusForReview, StatusDraft, false},
		{"approved to processed", StatusApproved, StatusProcessed, true},
		{"approved back to for review", StatusApproved, StatusForReview, false},
		{"rejected resubmitted", StatusRejected, StatusForReview, true},
		{"rejected to approved", StatusRejected, StatusApproved, false},
		{"processed is terminal", StatusProcessed, StatusForReview, false},
		{"self transition", StatusForReview, StatusForReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEditable(t *testing.T) {
	assert.True(t, StatusRejected.Editable())

	for _, s := range []Status{StatusDraft, StatusForReview, StatusApproved, StatusProcessed} {
		assert.False(t, s.Editable(), "status %s", s)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Draft", StatusDraft.String())
	assert.Equal(t, "For Review", StatusForReview.String())
	assert.Equal(t, "Approved", StatusApproved.String())
	assert.Equal(t, "Rejected", StatusRejected.String())
	assert.Equal(t, "Processed", StatusProcessed.String())
	assert.Equal(t, "Unknown", Status(42).String())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusProcessed.Valid())
	assert.False(t, Status(4).Valid())
	assert.False(t, Status(-1).Valid())
}
