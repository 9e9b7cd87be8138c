package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// target pinpoints where a screen should be rendered: a fresh message for
// commands, an in-place edit for button presses.
type target struct {
	chatID    int64
	messageID int // non-zero means edit that message
}

func messageTarget(msg *models.Message) target {
	return target{chatID: msg.Chat.ID}
}

// callbackTarget derives a render target from a button press. When the
// original message is no longer accessible the screen is sent as a new
// message to the user's private chat instead.
func callbackTarget(cb *models.CallbackQuery) target {
	if cb.Message.Message != nil {
		return target{
			chatID:    cb.Message.Message.Chat.ID,
			messageID: cb.Message.Message.ID,
		}
	}
	return target{chatID: cb.From.ID}
}

// render sends or edits the screen at the given target.
func (b *Bot) render(ctx context.Context, t target, text string, keyboard *models.InlineKeyboardMarkup) {
	if t.messageID != 0 {
		params := &bot.EditMessageTextParams{
			ChatID:    t.chatID,
			MessageID: t.messageID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		}
		if keyboard != nil {
			params.ReplyMarkup = keyboard
		}
		if _, err := b.bot.EditMessageText(ctx, params); err != nil {
			b.logger.Error("failed to edit message", "chat_id", t.chatID, "message_id", t.messageID, "error", err)
		}
		return
	}

	b.sendMessage(ctx, t.chatID, text, keyboard)
}

// sendMessage sends a message with an optional inline keyboard
func (b *Bot) sendMessage(ctx context.Context, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	if _, err := b.bot.SendMessage(ctx, params); err != nil {
		b.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

// answerCallback answers a callback query
func (b *Bot) answerCallback(ctx context.Context, callbackID, text string, showAlert bool) {
	_, err := b.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	})
	if err != nil {
		b.logger.Warn("failed to answer callback", "error", err)
	}
}
