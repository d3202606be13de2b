package vnpay

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	c := NewClient(Config{
		TmnCode:   "DEMO01",
		Secret:    testSecret,
		Host:      "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL: "https://app.example.com/payment/vnpay/callback",
	})
	c.now = func() time.Time {
		return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	}
	return c
}

func TestBuildPaymentURL(t *testing.T) {
	c := testClient()

	raw := c.BuildPaymentURL(PaymentRequest{
		OrderID:   "O1",
		Amount:    500000,
		OrderInfo: "Thanh toan don hang O1",
		IPAddr:    "127.0.0.1",
	})

	require.True(t, strings.HasPrefix(raw, c.cfg.Host+"?"))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "2.1.0", q.Get("vnp_Version"))
	assert.Equal(t, "pay", q.Get("vnp_Command"))
	assert.Equal(t, "DEMO01", q.Get("vnp_TmnCode"))
	assert.Equal(t, "O1", q.Get(ParamTxnRef))
	assert.Equal(t, "50000000", q.Get("vnp_Amount"), "amount is in the gateway's smallest unit")
	assert.Equal(t, "20240102150405", q.Get("vnp_CreateDate"))
	assert.Equal(t, "https://app.example.com/payment/vnpay/callback", q.Get("vnp_ReturnUrl"))
	assert.NotEmpty(t, q.Get(ParamSecureHash))

	// signature must be appended last
	assert.True(t, strings.Contains(raw, "&"+ParamSecureHash+"="))
	assert.Equal(t, strings.LastIndex(raw, "&")+1, strings.Index(raw, ParamSecureHash+"="))
}

func TestBuildPaymentURLSignatureVerifies(t *testing.T) {
	c := testClient()

	raw := c.BuildPaymentURL(PaymentRequest{
		OrderID:   "O1",
		Amount:    500000,
		OrderInfo: "Thanh toan don hang O1",
		IPAddr:    "127.0.0.1",
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)

	params := map[string]string{}
	for k, vs := range u.Query() {
		params[k] = vs[0]
	}
	assert.True(t, c.Verify(params))

	params[ParamTxnRef] = "O2"
	assert.False(t, c.Verify(params))
}
