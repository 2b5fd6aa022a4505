package message

import "context"

// Service appends contact messages to the write-only log. Nothing in this
// application ever reads them back.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
}

// Appender is the append-log surface: one record in, a generated key out.
type Appender interface {
	Append(ctx context.Context, values map[string]interface{}) (string, error)
}
