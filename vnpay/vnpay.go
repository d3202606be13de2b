// Package vnpay implements the VNPay hosted-payment protocol: building the
// signed redirect URL and verifying the HMAC-SHA512 signature on return and
// IPN callbacks.
package vnpay

import (
	"strconv"
	"time"
)

const createDateLayout = "20060102150405"

type Config struct {
	TmnCode   string // merchant code issued by the gateway
	Secret    string // shared HMAC secret
	Host      string // payment page URL, e.g. https://sandbox.vnpayment.vn/paymentv2/vpcpay.html
	ReturnURL string // browser redirect target after payment
}

type Client struct {
	cfg Config
	now func() time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, now: time.Now}
}

// PaymentRequest describes one order to be paid on the gateway's hosted page.
type PaymentRequest struct {
	OrderID   string
	Amount    int64 // VND; the gateway expects the value multiplied by 100
	OrderInfo string
	IPAddr    string
}

// BuildPaymentURL returns the redirect URL for req, with vnp_SecureHash
// appended last over the canonical parameter string.
func (c *Client) BuildPaymentURL(req PaymentRequest) string {
	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    c.cfg.TmnCode,
		"vnp_Locale":     "vn",
		"vnp_CurrCode":   "VND",
		ParamTxnRef:      req.OrderID,
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  "other",
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_ReturnUrl":  c.cfg.ReturnURL,
		"vnp_IpAddr":     req.IPAddr,
		"vnp_CreateDate": c.now().Format(createDateLayout),
	}

	query := HashData(params)
	digest := ComputeSignature(params, c.cfg.Secret)
	return c.cfg.Host + "?" + query + "&" + ParamSecureHash + "=" + digest
}

// Verify checks the signature carried inside params (vnp_SecureHash) against
// the remaining parameters.
func (c *Client) Verify(params map[string]string) bool {
	return VerifySignature(params, params[ParamSecureHash], c.cfg.Secret)
}

// Sign computes the signature for params under the client's secret.
func (c *Client) Sign(params map[string]string) string {
	return ComputeSignature(params, c.cfg.Secret)
}
