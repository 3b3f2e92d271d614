package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Dutt123/ossvacationtracker/internal/domain"
)

const NotificationQueue = "leave_notifications"

// notifyLeaveRequested tells the admin mailbox that a request is waiting.
func (h *Handler) notifyLeaveRequested(leave *domain.Leave) {
	if h.config.Email.NotifyAddress == "" {
		return
	}
	h.publishMail(domain.MailMessage{
		Type: "leave_requested",
		To:   h.config.Email.NotifyAddress,
		Data: domain.LeaveRequestedMailData{
			Member:   leave.Member,
			Date:     leave.Date,
			Category: leave.Category,
		},
	})
}

// notifyLeaveApproved tells the member their request went through.
func (h *Handler) notifyLeaveApproved(leave *domain.Leave) {
	h.publishMail(domain.MailMessage{
		Type: "leave_approved",
		To:   domain.MemberAddress(leave.Member, h.config.Email.UserDomain),
		Data: domain.LeaveApprovedMailData{
			Member:   leave.Member,
			Date:     leave.Date,
			Category: leave.Category,
		},
	})
}

// publishMail hands a message to the notification queue. Best effort: a
// failed publish is logged, never surfaced to the API caller.
func (h *Handler) publishMail(msg domain.MailMessage) {
	if h.mailChannel == nil {
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		slog.Error("could not serialize notification", "type", msg.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		NotificationQueue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("could not publish notification", "type", msg.Type, "error", err)
	}
}
