package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mcgege/openstudio/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	loc    *time.Location
	logger logger.Logger
}

func NewTelegramNotifier(token string, loc *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, loc: loc, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, loc: loc, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyCheckedIn(ctx context.Context, customer *domain.Customer, a *domain.Attendance) {
	n.send(ctx, customer.TelegramChatID, checkedInText(customer, a, n.loc))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, customer *domain.Customer, a *domain.Attendance) {
	n.send(ctx, customer.TelegramChatID, cancelledText(customer, a, n.loc))
}

func checkedInText(customer *domain.Customer, a *domain.Attendance, loc *time.Location) string {
	return fmt.Sprintf(
		"*%s, вы отмечены на занятии!*\n\n"+"%s"+"Время отметки: %s",
		customer.DisplayName, classLine(a, loc), a.CreatedOn.In(loc).Format(timeLayout),
	)
}

func cancelledText(customer *domain.Customer, a *domain.Attendance, loc *time.Location) string {
	return fmt.Sprintf(
		"*%s, ваша запись отменена*\n\n"+"%s"+"Дата записи: %s",
		customer.DisplayName, classLine(a, loc), a.CreatedOn.In(loc).Format(timeLayout),
	)
}

// classLine пустая, если название занятия не загружено.
func classLine(a *domain.Attendance, loc *time.Location) string {
	if a.ClassName == "" {
		return ""
	}
	if a.ClassStartsAt.IsZero() {
		return fmt.Sprintf("Занятие: %s\n", a.ClassName)
	}
	return fmt.Sprintf("Занятие: %s, %s\n", a.ClassName, a.ClassStartsAt.In(loc).Format(timeLayout))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
