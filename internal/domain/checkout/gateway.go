package checkout

import "context"

//go:generate mockgen -source gateway.go -destination mock_gateway.go -package checkout

// PaymentGateway creates hosted-checkout sessions with the payment processor.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (SessionResult, error)
}
