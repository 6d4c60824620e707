package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var asOf = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestInvoiceDaysOverdue(t *testing.T) {
	invoice := Invoice{DueDate: asOf.AddDate(0, 0, -18)}
	assert.Equal(t, 18, invoice.DaysOverdue(asOf))

	notDue := Invoice{DueDate: asOf.AddDate(0, 0, 10)}
	assert.Equal(t, 0, notDue.DaysOverdue(asOf))
}

func TestInvoiceIsOverdue(t *testing.T) {
	base := Invoice{
		TotalAmount: amount("1440.00"),
		AmountPaid:  amount("440.00"),
		DueDate:     asOf.AddDate(0, 0, -18),
		Status:      InvoiceSent,
	}
	assert.True(t, base.IsOverdue(asOf))

	settled := base
	settled.AmountPaid = settled.TotalAmount
	assert.False(t, settled.IsOverdue(asOf))

	draft := base
	draft.Status = InvoiceDraft
	assert.False(t, draft.IsOverdue(asOf))

	cancelled := base
	cancelled.Status = InvoiceCancelled
	assert.False(t, cancelled.IsOverdue(asOf))

	future := base
	future.DueDate = asOf.AddDate(0, 0, 5)
	assert.False(t, future.IsOverdue(asOf))
}

func TestInvoiceEffectiveStatus(t *testing.T) {
	invoice := Invoice{
		TotalAmount: amount("1440.00"),
		AmountPaid:  amount("440.00"),
		DueDate:     asOf.AddDate(0, 0, -18),
		Status:      InvoicePartiallyPaid,
	}
	assert.Equal(t, InvoiceOverdue, invoice.EffectiveStatus(asOf))

	invoice.DueDate = asOf.AddDate(0, 0, 5)
	assert.Equal(t, InvoicePartiallyPaid, invoice.EffectiveStatus(asOf))
}

func TestInvoiceRemainingDue(t *testing.T) {
	invoice := Invoice{TotalAmount: amount("1440.00"), AmountPaid: amount("440.00")}
	assert.True(t, invoice.RemainingDue().Equal(amount("1000.00")))
}
