package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(pedidoID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(pedidoID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/cuenta.html?pedido_id=%d", g.BaseURL, pedidoID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
