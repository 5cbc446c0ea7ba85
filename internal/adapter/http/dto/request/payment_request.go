package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload for the "registrar pagamento"
// route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; the use case overwrites transaction_amount with the order total.

type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
