package utils

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sales channel prefixes. Regular customer orders carry a bare numeric
// number; the admin walk-in and dealer channels are encoded in the
// order number itself, so listings filter by prefix rather than a
// dedicated channel column.
const (
	AdminSalePrefix  = "ADMIN-SALE-"
	DealerSalePrefix = "DEALER-SALE-"
)

const (
	ChannelCustomer = "customer"
	ChannelAdmin    = "admin"
	ChannelDealer   = "dealer"
)

// GenerateOrderNumber produces a fresh channel-tagged order number.
// Uniqueness is not guaranteed here; the unique index on orders.order_number
// is the arbiter, and the caller retries on collision.
func GenerateOrderNumber(channel string) string {
	n := randomNumericTail()
	switch channel {
	case ChannelAdmin:
		return AdminSalePrefix + n
	case ChannelDealer:
		return DealerSalePrefix + n
	default:
		return n
	}
}

// GenerateInvoiceNumber produces a fresh invoice number.
func GenerateInvoiceNumber() string {
	return "INV-" + randomNumericTail()
}

func randomNumericTail() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8]) % 1_000_000_000_000
	return fmt.Sprintf("%012d", n)
}

func IsAdminSaleNumber(orderNumber string) bool {
	return strings.HasPrefix(orderNumber, AdminSalePrefix)
}

func IsDealerSaleNumber(orderNumber string) bool {
	return strings.HasPrefix(orderNumber, DealerSalePrefix)
}

// IsCustomerNumber reports whether an order number belongs to the plain
// customer/guest channel, i.e. carries neither reserved prefix.
func IsCustomerNumber(orderNumber string) bool {
	return !IsAdminSaleNumber(orderNumber) && !IsDealerSaleNumber(orderNumber)
}

// OrderChannel classifies an order number back into its sales channel.
func OrderChannel(orderNumber string) string {
	switch {
	case IsAdminSaleNumber(orderNumber):
		return ChannelAdmin
	case IsDealerSaleNumber(orderNumber):
		return ChannelDealer
	default:
		return ChannelCustomer
	}
}
