package events

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/messaging"
)

// NoopPublisher drops events; used when event streaming is disabled
type NoopPublisher struct{}

var _ messaging.StatementPublisher = NoopPublisher{}

func (NoopPublisher) PublishStatementCreated(context.Context, entity.StatementCreatedEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
