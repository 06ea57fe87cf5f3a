package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQRBase = "https://api.qrserver.com/v1/create-qr-code/"

// stubHTTPClient returns a canned response or error.
type stubHTTPClient struct {
	resp *http.Response
	err  error
	got  *http.Request
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestPaymentLinkService(client HTTPClient) *PaymentLinkServiceImpl {
	return NewPaymentLinkService(testQRBase, "USD", client, zerolog.Nop())
}

func TestBuildURI_Exact(t *testing.T) {
	svc := newTestPaymentLinkService(nil)

	uri := svc.BuildURI("12.5", "bob@bank", "Alex Rivera")
	assert.Equal(t, "upi://pay?pa=bob@bank&pn=Alex%20Rivera&am=12.5&cu=USD&tn=NovaPayTransfer", uri)
}

func TestBuildURI_Idempotent(t *testing.T) {
	svc := newTestPaymentLinkService(nil)

	first := svc.BuildURI("12.5", "bob@bank", "Alex Rivera")
	second := svc.BuildURI("12.5", "bob@bank", "Alex Rivera")
	assert.Equal(t, first, second)
}

func TestBuildURI_UnparsableAmountDefaultsToZero(t *testing.T) {
	svc := newTestPaymentLinkService(nil)

	uri := svc.BuildURI("lots", "bob@bank", "Alex Rivera")
	assert.Contains(t, uri, "&am=0&")
}

func TestQRImageURL(t *testing.T) {
	svc := newTestPaymentLinkService(nil)

	uri := svc.BuildURI("12.5", "bob@bank", "Alex Rivera")
	qrURL := svc.QRImageURL(uri)

	assert.True(t, strings.HasPrefix(qrURL, testQRBase+"?size=300x300&data="))
	assert.Contains(t, qrURL, "color=06b6d4")
	assert.Contains(t, qrURL, "bgcolor=00000000")
	// The payment URI is fully url-encoded inside the data parameter.
	assert.Contains(t, qrURL, "upi%3A%2F%2Fpay")
	assert.NotContains(t, qrURL[len(testQRBase):], "upi://")
}

func TestFetchQR(t *testing.T) {
	client := &stubHTTPClient{
		resp: &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"image/png"}},
			Body:       io.NopCloser(strings.NewReader("png-bytes")),
		},
	}
	svc := newTestPaymentLinkService(client)

	body, contentType, err := svc.FetchQR(context.Background(), "upi://pay?pa=bob@bank")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), body)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, http.MethodGet, client.got.Method)
}

func TestFetchQR_UpstreamError(t *testing.T) {
	svc := newTestPaymentLinkService(&stubHTTPClient{err: fmt.Errorf("connection refused")})

	_, _, err := svc.FetchQR(context.Background(), "upi://pay?pa=bob@bank")
	assertAppError(t, err, "SYS_002")
}

func TestFetchQR_Non2xx(t *testing.T) {
	client := &stubHTTPClient{
		resp: &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("")),
		},
	}
	svc := newTestPaymentLinkService(client)

	_, _, err := svc.FetchQR(context.Background(), "upi://pay?pa=bob@bank")
	assertAppError(t, err, "SYS_002")
}

func TestCopyAcknowledgmentExpires(t *testing.T) {
	svc := newTestPaymentLinkService(nil)

	now := time.Now()
	svc.now = func() time.Time { return now }

	assert.False(t, svc.CopiedRecently())

	svc.Copy("upi://pay?pa=bob@bank")
	assert.True(t, svc.CopiedRecently())

	svc.now = func() time.Time { return now.Add(copiedAckWindow - time.Millisecond) }
	assert.True(t, svc.CopiedRecently())

	svc.now = func() time.Time { return now.Add(copiedAckWindow) }
	assert.False(t, svc.CopiedRecently())
}
