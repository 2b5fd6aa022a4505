package service

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/domains/message"
)

type messageService struct {
	log message.Appender
	now func() time.Time
}

func NewMessageService(log message.Appender) message.Service {
	return &messageService{log: log, now: time.Now}
}

// Submit appends the record once, stamped with the submission time in
// milliseconds since epoch. No retry; a failed append is the caller's to
// report.
func (s *messageService) Submit(ctx context.Context, req message.SubmitRequest) (*message.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	timestamp := s.now().UnixMilli()

	key, err := s.log.Append(ctx, map[string]interface{}{
		"fullname":  req.FullName,
		"email":     req.Email,
		"message":   req.Message,
		"timestamp": timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	return &message.SubmitResponse{Key: key, Timestamp: timestamp}, nil
}
