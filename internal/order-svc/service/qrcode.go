package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int, orderNumber string) ([]byte, error)
}

// DefaultQRGenerator encodes the handoff confirmation link the delivery
// agent scans at pickup.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int, orderNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/pickup.html?order_id=%d&number=%s", g.BaseURL, orderID, orderNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
