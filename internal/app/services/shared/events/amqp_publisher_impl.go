package events

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/pkg/constvars"
	"medichat-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type amqpPublisher struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewAmqpPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &amqpPublisher{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (p *amqpPublisher) PublishPatientSaved(ctx context.Context, event *contracts.PatientSavedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrPublishMessage(err)
	}
	return nil
}
