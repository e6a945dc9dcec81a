package domain

// GatewayResponse is what a payment gateway hands back for a charge or refund.
// It is either a StructuredResponse or a BareResponse.
type GatewayResponse interface {
	gatewayResponse()
}

// StructuredResponse carries an explicit success flag and optional details
type StructuredResponse struct {
	Success       bool
	TransactionID *string
	Message       *string
}

func (StructuredResponse) gatewayResponse() {}

// BareResponse is a plain truthy/falsy answer with no details
type BareResponse bool

func (BareResponse) gatewayResponse() {}

// NormalizedResponse is a gateway response with defaults filled in
type NormalizedResponse struct {
	Success       bool
	TransactionID *string
	Message       string
}

// Default messages for responses that carry none
const (
	GatewayMessageOK       = "OK"
	GatewayMessageDeclined = "Declined"
)

// Normalize resolves either response shape into a NormalizedResponse.
// A nil response counts as a falsy bare answer.
func Normalize(resp GatewayResponse) NormalizedResponse {
	var (
		out     NormalizedResponse
		message *string
	)

	switch r := resp.(type) {
	case StructuredResponse:
		out.Success, out.TransactionID, message = r.Success, r.TransactionID, r.Message
	case *StructuredResponse:
		if r != nil {
			out.Success, out.TransactionID, message = r.Success, r.TransactionID, r.Message
		}
	case BareResponse:
		out.Success = bool(r)
	}

	switch {
	case message != nil:
		out.Message = *message
	case out.Success:
		out.Message = GatewayMessageOK
	default:
		out.Message = GatewayMessageDeclined
	}

	return out
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
