package qr

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"ms-content/internal/models"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var (
	ErrNoUPI         = errors.New("donation config has no UPI id")
	ErrInvalidAmount = errors.New("donation amount must be positive")
)

type QRGenerator struct {
	size int
}

func NewQRGenerator(size int) *QRGenerator {
	if size <= 0 {
		size = DefaultSize
	}
	return &QRGenerator{size: size}
}

// PaymentURI builds the upi://pay link for cfg. An amount of zero leaves the
// amount for the donor to enter.
func PaymentURI(cfg *models.DonationConfig, amount int) (string, error) {
	if cfg == nil || cfg.UPIID == nil || strings.TrimSpace(*cfg.UPIID) == "" {
		return "", ErrNoUPI
	}
	if amount < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	params := url.Values{}
	params.Set("pa", *cfg.UPIID)
	if cfg.AccountName != nil {
		params.Set("pn", *cfg.AccountName)
	}
	params.Set("cu", "INR")
	if amount > 0 {
		params.Set("am", strconv.Itoa(amount))
	}
	params.Set("tn", cfg.Title)

	return "upi://pay?" + params.Encode(), nil
}

// Generate returns a PNG QR code for the payment link.
func (q *QRGenerator) Generate(cfg *models.DonationConfig, amount int) ([]byte, error) {
	uri, err := PaymentURI(cfg, amount)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(uri, qrcode.Medium, q.size)
}

// SuggestedAmounts parses the comma separated list stored with the donation
// config. Malformed entries are skipped.
func SuggestedAmounts(cfg *models.DonationConfig) []int {
	if cfg == nil || cfg.SuggestedAmounts == nil {
		return nil
	}

	var amounts []int
	for _, part := range strings.Split(*cfg.SuggestedAmounts, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			continue
		}
		amounts = append(amounts, n)
	}
	return amounts
}
