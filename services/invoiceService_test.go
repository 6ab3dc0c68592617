package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-ledger/dtos"
	"ecom-ledger/models"
	"ecom-ledger/utils"
)

func snapshot() dtos.CustomerSnapshotInput {
	phone := "+1 514 555 0100"
	city := "Montreal"
	return dtos.CustomerSnapshotInput{
		CustomerName:  "Jordan Tremblay",
		CustomerPhone: &phone,
		City:          &city,
	}
}

func TestGenerateInvoiceSnapshotsOrder(t *testing.T) {
	db := newTestDB(t)

	order, err := NewOrderService(db).Create(orderInput(utils.ChannelCustomer))
	require.NoError(t, err)

	invoice, err := NewInvoiceService(db).Generate(order.ID, snapshot())
	require.NoError(t, err)

	assert.Equal(t, order.ID, invoice.OrderID)
	assert.True(t, invoice.Subtotal.Equal(order.Subtotal))
	assert.True(t, invoice.Tax.Equal(order.Tax))
	assert.True(t, invoice.Shipping.Equal(order.Shipping))
	assert.True(t, invoice.Discount.Equal(order.Discount))
	assert.True(t, invoice.Total.Equal(order.Total))
	assert.Equal(t, order.Currency, invoice.Currency)
	assert.Equal(t, "Jordan Tremblay", invoice.CustomerName)
	require.NotNil(t, invoice.City)
	assert.Equal(t, "Montreal", *invoice.City)
	assert.NotEmpty(t, invoice.InvoiceNumber)
}

func TestGenerateInvoiceMissingOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := NewInvoiceService(db).Generate(404, snapshot())
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}

// Regeneration appends: same totals, fresh number, old invoice untouched.
func TestGenerateInvoiceTwice(t *testing.T) {
	db := newTestDB(t)

	order, err := NewOrderService(db).Create(orderInput(utils.ChannelCustomer))
	require.NoError(t, err)

	svc := NewInvoiceService(db)
	first, err := svc.Generate(order.ID, snapshot())
	require.NoError(t, err)
	second, err := svc.Generate(order.ID, snapshot())
	require.NoError(t, err)

	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
	assert.True(t, first.Total.Equal(second.Total))

	history, err := svc.ListByOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	// the first invoice is still retrievable as written
	again, err := svc.GetByNumber(first.InvoiceNumber)
	require.NoError(t, err)
	assert.True(t, again.Total.Equal(first.Total))
}

func TestGetInvoiceNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)

	_, err := svc.GetByID(4242)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.GetByNumber("INV-000000000000")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
