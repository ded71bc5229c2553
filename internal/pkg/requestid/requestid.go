// Package requestid carries the inbound request ID to outbound calls.
package requestid

import "context"

const Header = "X-Request-ID"

type ctxKey struct{}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
