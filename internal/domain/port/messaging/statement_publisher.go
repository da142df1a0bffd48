package messaging

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// StatementPublisher notifies downstream consumers about committed statements
type StatementPublisher interface {
	PublishStatementCreated(ctx context.Context, event entity.StatementCreatedEvent) error
	Close() error
}
