package telegram

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/mixelka/tempmailbot/internal/formatter"
	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

// handleCallback dispatches inline button presses.
func (b *Bot) handleCallback(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data, err := formatter.DecodeCallback(callback.Data)
	if err != nil {
		b.logger.Error("failed to decode callback", "error", err, "data", callback.Data)
		b.answerCallback(ctx, callback.ID, "Ошибка", false)
		return
	}

	b.answerCallback(ctx, callback.ID, "", false)

	t := callbackTarget(callback)
	userID := callback.From.ID

	switch data.Action {
	case appmodels.CallbackNewEmail:
		b.showDomainPicker(ctx, t)
	case appmodels.CallbackPickDomain:
		b.createMailbox(ctx, t, userID, data.Domain)
	case appmodels.CallbackCheckInbox:
		b.showInbox(ctx, t, userID)
	case appmodels.CallbackRefreshInbox:
		b.refreshInbox(ctx, t, userID)
	case appmodels.CallbackReadMessage:
		b.showMessage(ctx, t, userID, data.MessageID)
	case appmodels.CallbackDomains:
		b.showDomains(ctx, t, userID)
	case appmodels.CallbackHistory:
		b.showHistory(ctx, t, userID)
	case appmodels.CallbackHelp:
		b.showHelp(ctx, t)
	case appmodels.CallbackMainMenu:
		b.showStart(ctx, t, callback.From.FirstName)
	case appmodels.CallbackAddDomain:
		b.showAddDomainPrompt(ctx, t, userID)
	default:
		b.logger.Debug("unknown callback action", "action", data.Action)
	}
}

// refreshInbox shows a short loading state before re-rendering the inbox, so
// the user sees that something happened even when nothing changed.
func (b *Bot) refreshInbox(ctx context.Context, t target, userID int64) {
	b.render(ctx, t, "🔄 <i>Обновляю входящие...</i>", nil)
	time.Sleep(time.Second)
	b.showInbox(ctx, t, userID)
}

// showAddDomainPrompt explains the /adddomain format to the administrator.
func (b *Bot) showAddDomainPrompt(ctx context.Context, t target, userID int64) {
	if !b.isAdmin(userID) {
		b.render(ctx, t, "❌ Добавлять домены может только администратор!", formatter.BuildBackToMenuKeyboard())
		return
	}

	b.render(ctx, t,
		"🌐 <b>Добавление своего домена</b>\n\nОтправьте команду в формате:\n<code>/adddomain example.com</code>",
		formatter.BuildBackToMenuKeyboard())
}
