package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/mixelka/tempmailbot/internal/formatter"
	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

// handleStart handles /start command
func (b *Bot) handleStart(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message
	b.showStart(ctx, messageTarget(msg), msg.From.FirstName)
}

func (b *Bot) showStart(ctx context.Context, t target, firstName string) {
	b.render(ctx, t, formatter.FormatWelcome(firstName), formatter.BuildMainMenuKeyboard())
}

// handleHelp handles /help command
func (b *Bot) handleHelp(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.showHelp(ctx, messageTarget(update.Message))
}

func (b *Bot) showHelp(ctx context.Context, t target) {
	b.render(ctx, t, formatter.FormatHelp(), formatter.BuildBackToMenuKeyboard())
}

// handleNew handles /new and /refresh: both open the domain picker.
func (b *Bot) handleNew(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.showDomainPicker(ctx, messageTarget(update.Message))
}

func (b *Bot) showDomainPicker(ctx context.Context, t target) {
	domains := b.availableDomains(ctx)
	b.render(ctx, t, formatter.FormatDomainPicker(), formatter.BuildDomainPickerKeyboard(domains))
}

// createMailbox allocates a fresh address for the user, replaces their
// session and arms the one-shot deferred inbox check.
func (b *Bot) createMailbox(ctx context.Context, t target, userID int64, domain string) {
	// The merged list is only needed for a random pick
	var available []string
	if domain == "" {
		available = b.availableDomains(ctx)
	}

	addr, err := b.provider.GenerateAddress(domain, available)
	if err != nil {
		b.logger.Error("failed to generate address", "user_id", userID, "error", err)
		b.render(ctx, t, "❌ Не удалось создать email, попробуйте ещё раз.", formatter.BuildNoMailboxKeyboard())
		return
	}

	b.sessions.Set(userID, addr)
	b.logger.Info("mailbox created", "user_id", userID, "address", addr.String())

	b.render(ctx, t, formatter.FormatMailboxCreated(addr), formatter.BuildMailboxKeyboard())

	b.scheduler.Arm(userID, t.chatID)
}

// handleInbox handles /inbox command
func (b *Bot) handleInbox(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message
	b.showInbox(ctx, messageTarget(msg), msg.From.ID)
}

// showInbox renders the user's inbox. Without an active mailbox the user
// gets a guidance screen and the provider is never consulted.
func (b *Bot) showInbox(ctx context.Context, t target, userID int64) {
	addr, ok := b.sessions.Get(userID)
	if !ok {
		b.render(ctx, t, formatter.FormatNoMailbox(), formatter.BuildNoMailboxKeyboard())
		return
	}

	msgs := b.provider.Messages(ctx, addr)
	if len(msgs) == 0 {
		b.render(ctx, t, formatter.FormatEmptyInbox(addr, time.Now()), formatter.BuildEmptyInboxKeyboard())
		return
	}

	b.render(ctx, t, formatter.FormatInbox(addr, msgs), formatter.BuildInboxKeyboard(msgs))
}

// showMessage renders one message with the markup stripped and the body
// truncated to the display limit.
func (b *Bot) showMessage(ctx context.Context, t target, userID, messageID int64) {
	addr, ok := b.sessions.Get(userID)
	if !ok {
		b.render(ctx, t, formatter.FormatNoMailbox(), formatter.BuildNoMailboxKeyboard())
		return
	}

	detail := b.provider.ReadMessage(ctx, addr, messageID)
	if detail == nil {
		b.render(ctx, t, "❌ Не удалось загрузить письмо!", formatter.BuildMessageKeyboard())
		return
	}

	body := b.stripper.Strip(detail.PreferredBody())
	b.render(ctx, t, formatter.FormatMessage(detail, body), formatter.BuildMessageKeyboard())
}

// handleDomains handles /domains command
func (b *Bot) handleDomains(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message
	b.showDomains(ctx, messageTarget(msg), msg.From.ID)
}

func (b *Bot) showDomains(ctx context.Context, t target, userID int64) {
	domains := b.availableDomains(ctx)
	text := formatter.FormatDomains(domains, b.domains.Contains)
	b.render(ctx, t, text, formatter.BuildDomainsKeyboard(b.isAdmin(userID)))
}

// handleHistory handles /history command
func (b *Bot) handleHistory(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message
	b.showHistory(ctx, messageTarget(msg), msg.From.ID)
}

func (b *Bot) showHistory(ctx context.Context, t target, userID int64) {
	addrs := b.sessions.History(userID)
	b.render(ctx, t, formatter.FormatHistory(addrs), formatter.BuildBackToMenuKeyboard())
}

// handleAddDomain handles /adddomain command (admin only)
// Usage: /adddomain example.com
func (b *Bot) handleAddDomain(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message
	t := messageTarget(msg)

	if !b.isAdmin(msg.From.ID) {
		b.render(ctx, t, "❌ Эта команда доступна только администратору!", nil)
		return
	}

	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		b.render(ctx, t, "❌ Неверный формат!\n\nИспользуйте: <code>/adddomain example.com</code>", nil)
		return
	}

	domain := strings.ToLower(parts[1])
	b.domains.Add(domain)
	b.logger.Info("custom domain added", "domain", domain, "admin_id", msg.From.ID)

	b.render(ctx, t, "✅ Домен <code>"+formatter.EscapeHTML(domain)+"</code> добавлен!", nil)
}

// availableDomains merges the live provider list with the custom registry,
// falling back to the default domain when both are empty.
func (b *Bot) availableDomains(ctx context.Context) []string {
	merged := b.domains.Merge(b.provider.Domains(ctx))
	if len(merged) == 0 {
		merged = []string{b.config.DefaultDomain}
	}
	return merged
}

// onNewMail is the scheduler's push callback.
func (b *Bot) onNewMail(ctx context.Context, chatID int64, addr appmodels.Address, count int) {
	b.sendMessage(ctx, chatID, formatter.FormatNewMail(addr, count), nil)
}
