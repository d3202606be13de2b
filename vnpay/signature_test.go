package vnpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "s3cret"

func sampleParams() map[string]string {
	return map[string]string{
		"vnp_Amount":     "50000000",
		"vnp_Command":    "pay",
		"vnp_CreateDate": "20240102150405",
		"vnp_CurrCode":   "VND",
		"vnp_IpAddr":     "127.0.0.1",
		"vnp_Locale":     "vn",
		"vnp_OrderInfo":  "Thanh toan don hang O1",
		"vnp_OrderType":  "other",
		"vnp_ReturnUrl":  "https://app.example.com/payment/vnpay/callback",
		"vnp_TmnCode":    "DEMO01",
		"vnp_TxnRef":     "O1",
		"vnp_Version":    "2.1.0",
	}
}

func TestHashDataCanonicalization(t *testing.T) {
	got := HashData(sampleParams())
	want := "vnp_Amount=50000000&vnp_Command=pay&vnp_CreateDate=20240102150405&vnp_CurrCode=VND" +
		"&vnp_IpAddr=127.0.0.1&vnp_Locale=vn&vnp_OrderInfo=Thanh+toan+don+hang+O1&vnp_OrderType=other" +
		"&vnp_ReturnUrl=https%3A%2F%2Fapp.example.com%2Fpayment%2Fvnpay%2Fcallback" +
		"&vnp_TmnCode=DEMO01&vnp_TxnRef=O1&vnp_Version=2.1.0"
	assert.Equal(t, want, got)
}

func TestHashDataExcludesSignatureFields(t *testing.T) {
	params := sampleParams()
	base := HashData(params)

	params[ParamSecureHash] = "deadbeef"
	params[ParamSecureHashType] = "HmacSHA512"
	assert.Equal(t, base, HashData(params))
}

func TestComputeSignatureKnownVector(t *testing.T) {
	got := ComputeSignature(sampleParams(), testSecret)
	want := "3bd179e23b3a880ea0bb15e3638680f09ea90f7b0d618de9b4e871e6f29e3ecc" +
		"4a55c7d1a8c170b14b86bf3e0ada29ce2a9b117514128be34e45d13479487ccc"
	assert.Equal(t, want, got)
}

func TestVerifyRoundTrip(t *testing.T) {
	params := sampleParams()
	digest := ComputeSignature(params, testSecret)
	assert.True(t, VerifySignature(params, digest, testSecret))

	// case-insensitive on the provided digest, as gateways sometimes upper-case hex
	upper := make([]byte, len(digest))
	for i := range digest {
		c := digest[i]
		if c >= 'a' && c <= 'f' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	assert.True(t, VerifySignature(params, string(upper), testSecret))
}

func TestVerifyDetectsTampering(t *testing.T) {
	params := sampleParams()
	digest := ComputeSignature(params, testSecret)

	for key := range params {
		tampered := sampleParams()
		tampered[key] = tampered[key] + "x"
		assert.False(t, VerifySignature(tampered, digest, testSecret), "mutated %s must not verify", key)
	}
}

func TestVerifyRejectsWrongSecretAndEmptyDigest(t *testing.T) {
	params := sampleParams()
	digest := ComputeSignature(params, testSecret)

	assert.False(t, VerifySignature(params, digest, "other-secret"))
	assert.False(t, VerifySignature(params, "", testSecret))
}
