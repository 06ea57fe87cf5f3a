package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"novapay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	paymentScheme = "upi"
	paymentTag    = "NovaPayTransfer"

	// copiedAckWindow is how long a copy acknowledgment stays visible.
	copiedAckWindow = 2 * time.Second
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PaymentLinkServiceImpl implements ports.PaymentLinkService. URI building
// is pure; QR rendering is delegated to the external image service.
type PaymentLinkServiceImpl struct {
	qrBaseURL  string
	currency   string
	httpClient HTTPClient
	log        zerolog.Logger
	now        func() time.Time

	mu       sync.Mutex
	copiedAt time.Time
}

// NewPaymentLinkService creates a payment link service.
func NewPaymentLinkService(qrBaseURL, currency string, httpClient HTTPClient, log zerolog.Logger) *PaymentLinkServiceImpl {
	return &PaymentLinkServiceImpl{
		qrBaseURL:  qrBaseURL,
		currency:   currency,
		httpClient: httpClient,
		log:        log,
		now:        time.Now,
	}
}

// BuildURI constructs the standard payment deep link:
//
//	upi://pay?pa=<handle>&pn=<url-encoded name>&am=<amount>&cu=<currency>&tn=NovaPayTransfer
//
// The parameter order and encoding are fixed; existing deep-link consumers
// parse this byte-for-byte. Unparsable amounts render as 0.
func (s *PaymentLinkServiceImpl) BuildURI(amount, payeeHandle, payerName string) string {
	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		amt = decimal.Zero
	}

	return fmt.Sprintf("%s://pay?pa=%s&pn=%s&am=%s&cu=%s&tn=%s",
		paymentScheme, payeeHandle, encodeComponent(payerName), amt.String(), s.currency, paymentTag)
}

// QRImageURL returns the external image service URL that renders uri as a
// scannable QR code, with fixed size and colors.
func (s *PaymentLinkServiceImpl) QRImageURL(uri string) string {
	return fmt.Sprintf("%s?size=300x300&data=%s&color=06b6d4&bgcolor=00000000",
		s.qrBaseURL, url.QueryEscape(uri))
}

// FetchQR retrieves the rendered QR image and returns it as-is.
func (s *PaymentLinkServiceImpl) FetchQR(ctx context.Context, uri string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.QRImageURL(uri), nil)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("build qr request: %w", err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", apperror.ErrUpstreamFailure(fmt.Errorf("fetch qr image: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", apperror.ErrUpstreamFailure(fmt.Errorf("qr service returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperror.ErrUpstreamFailure(fmt.Errorf("read qr image: %w", err))
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// Copy records a copy-to-clipboard acknowledgment for uri.
func (s *PaymentLinkServiceImpl) Copy(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copiedAt = s.now()
	s.log.Debug().Str("uri", uri).Msg("payment uri copied")
}

// CopiedRecently reports whether a copy happened within the ack window.
func (s *PaymentLinkServiceImpl) CopiedRecently() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.copiedAt.IsZero() && s.now().Sub(s.copiedAt) < copiedAckWindow
}

// encodeComponent matches JavaScript's encodeURIComponent for the
// characters that matter here: spaces become %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
