// Package outbox stores events in Postgres within the business transaction
// and forwards them to the redis stream once the transaction commits.
package outbox

import (
	"context"
	stdSQL "database/sql"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"

	"bustickets/pkg/log"
)

const Topic = "events_to_forward"

// NewPublisherForTx returns a publisher writing to the outbox table inside
// the given transaction. Messages published through it become visible to the
// forwarder only after the transaction commits.
func NewPublisherForTx(ctx context.Context, tx *sqlx.Tx) (message.Publisher, error) {
	logger := log.NewWatermill(log.FromContext(ctx))

	var publisher message.Publisher
	publisher, err := sql.NewPublisher(
		tx,
		sql.PublisherConfig{
			SchemaAdapter:        sql.DefaultPostgreSQLSchema{},
			AutoInitializeSchema: true,
		},
		logger,
	)
	if err != nil {
		return nil, err
	}

	publisher = forwarder.NewPublisher(publisher, forwarder.PublisherConfig{
		ForwarderTopic: Topic,
	})

	return publisher, nil
}

// NewForwarder moves committed outbox messages from Postgres to the stream
// publisher they were addressed to.
func NewForwarder(db *stdSQL.DB, publisher message.Publisher, logger watermill.LoggerAdapter) (*forwarder.Forwarder, error) {
	subscriber, err := sql.NewSubscriber(db, sql.SubscriberConfig{
		SchemaAdapter:    sql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   sql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
	}, logger)
	if err != nil {
		return nil, err
	}

	return forwarder.NewForwarder(subscriber, publisher, logger, forwarder.Config{
		ForwarderTopic: Topic,
	})
}
