package vnpay

// IPNResponse is the fixed acknowledgment shape the gateway expects from the
// IPN endpoint. Anything other than code "00" engages the gateway's retry
// policy.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

var (
	IPNSuccess          = IPNResponse{RspCode: "00", Message: "Success"}
	IPNOrderNotFound    = IPNResponse{RspCode: "01", Message: "Order not found"}
	IPNAlreadyConfirmed = IPNResponse{RspCode: "02", Message: "Order already confirmed"}
	IPNChecksumFailed   = IPNResponse{RspCode: "97", Message: "Checksum failed"}
	IPNUnknownError     = IPNResponse{RspCode: "99", Message: "Unknown error"}
)
