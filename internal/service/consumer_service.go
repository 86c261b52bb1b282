// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/pkg/mailer"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
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
	var payload dto.DeadlineReminderMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reminder message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	deadline, err := uow.DeadlineRepository().FindOne(ctx, specification.ByID{ID: payload.DeadlineId})
	if err != nil {
		log.Printf("[ERROR] Failed to get deadline %s: %v", payload.DeadlineId, err)
		msg.Nack()
		return
	}
	if deadline == nil || deadline.IsCompleted {
		msg.Ack() // Deadline deleted or done meanwhile.
		return
	}

	profile, err := uow.CompanyProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get company profile for %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if profile == nil || profile.Email == "" {
		log.Printf("[WARN] No contact email for user %s, dropping reminder", payload.UserId)
		msg.Ack()
		return
	}

	dueDate := deadline.DueDate.Format("02.01.2006")
	if err := cs.emailService.SendDeadlineReminder(profile.Email, deadline.Title, dueDate); err != nil {
		log.Printf("[ERROR] Failed to send reminder for deadline %s: %v", deadline.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Reminder sent for deadline %s to %s", deadline.Id, profile.Email)
	msg.Ack()
}
