// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"coaching-dashboard-be/internal/dto"
	"coaching-dashboard-be/internal/pkg/mailer"
	"coaching-dashboard-be/internal/repository/specification"
	"coaching-dashboard-be/internal/repository/unitofwork"
	"coaching-dashboard-be/pkg/events"
	pktNats "coaching-dashboard-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishCheckpointRecordedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing checkpoint notification for EmployeeId: %s", payload.EmployeeId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: payload.EmployeeId})
	if err != nil {
		log.Printf("[ERROR] Failed to get employee %s: %v", payload.EmployeeId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if employee == nil {
		log.Printf("[ERROR] Employee not found: %s", payload.EmployeeId)
		msg.Ack() // Employee deleted? Ack.
		return
	}

	if err := cs.emailService.SendCheckinSummary(employee.Email, employee.FullName, payload.CheckpointNumber); err != nil {
		log.Printf("[WARN] Check-in summary email failed for %s: %v", employee.Email, err)
		// Email failure is not retriable work; the checkpoint itself is safe.
	}

	if cs.eventPublisher != nil {
		event := events.NewCheckpointRecordedEvent(
			payload.EmployeeId.String(),
			payload.CheckpointId.String(),
			payload.CheckpointNumber,
		)
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish checkpoint event to NATS: %v", err)
		}
	}

	msg.Ack()
}
