package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Parameter names carried by gateway redirects and IPN calls.
const (
	ParamTxnRef         = "vnp_TxnRef"
	ParamResponseCode   = "vnp_ResponseCode"
	ParamTransactionNo  = "vnp_TransactionNo"
	ParamSecureHash     = "vnp_SecureHash"
	ParamSecureHashType = "vnp_SecureHashType"
)

// ResponseCodeSuccess is the gateway's code for a successful payment. Any
// other vnp_ResponseCode value means the payment did not go through.
const ResponseCodeSuccess = "00"

// HashData builds the canonical signing string: every key and value is
// URL-encoded with spaces rendered as "+", pairs are sorted byte-wise by
// encoded key and joined as "k=v" with "&". The signature fields themselves
// are excluded.
func HashData(params map[string]string) string {
	encoded := make(map[string]string, len(params))
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == ParamSecureHash || k == ParamSecureHashType {
			continue
		}
		ek := encode(k)
		encoded[ek] = encode(v)
		keys = append(keys, ek)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(encoded[k])
	}
	return sb.String()
}

// ComputeSignature returns the lowercase hex HMAC-SHA512 of the canonical
// string for params under secret.
func ComputeSignature(params map[string]string, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(HashData(params)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the caller-supplied digest against the one computed
// from params. Comparison is constant-time.
func VerifySignature(params map[string]string, providedDigest, secret string) bool {
	if providedDigest == "" {
		return false
	}
	expected := ComputeSignature(params, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(providedDigest)))
}

// encode matches the gateway's convention: percent-encoding with spaces as
// "+". url.QueryEscape already does exactly that.
func encode(s string) string {
	return url.QueryEscape(s)
}
