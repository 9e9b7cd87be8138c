package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/mixelka/tempmailbot/internal/config"
	"github.com/mixelka/tempmailbot/internal/notify"
	"github.com/mixelka/tempmailbot/internal/parser"
	"github.com/mixelka/tempmailbot/internal/session"
	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

// Provider is the disposable-mail API surface the bot consumes.
type Provider interface {
	Domains(ctx context.Context) []string
	GenerateAddress(domain string, available []string) (appmodels.Address, error)
	Messages(ctx context.Context, addr appmodels.Address) []appmodels.MessageSummary
	ReadMessage(ctx context.Context, addr appmodels.Address, id int64) *appmodels.MessageDetail
}

// Bot represents the Telegram bot
type Bot struct {
	bot       *bot.Bot
	config    *config.Config
	sessions  *session.Store
	domains   *session.Registry
	provider  Provider
	scheduler *notify.Scheduler
	stripper  *parser.HTMLStripper
	logger    *slog.Logger
}

// BotDeps dependencies for creating a bot
type BotDeps struct {
	Config    *config.Config
	Sessions  *session.Store
	Domains   *session.Registry
	Provider  Provider
	Scheduler *notify.Scheduler
	Stripper  *parser.HTMLStripper
	Logger    *slog.Logger
}

// NewBot creates a new Telegram bot
func NewBot(deps BotDeps) (*Bot, error) {
	b := &Bot{
		config:    deps.Config,
		sessions:  deps.Sessions,
		domains:   deps.Domains,
		provider:  deps.Provider,
		scheduler: deps.Scheduler,
		stripper:  deps.Stripper,
		logger:    deps.Logger.With("component", "telegram_bot"),
	}

	opts := []bot.Option{
		bot.WithDefaultHandler(b.defaultHandler),
	}

	tgBot, err := bot.New(deps.Config.TelegramToken, opts...)
	if err != nil {
		return nil, err
	}

	b.bot = tgBot
	b.registerHandlers()

	return b, nil
}

// registerHandlers registers command handlers
func (b *Bot) registerHandlers() {
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, b.handleStart)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new", bot.MatchTypePrefix, b.handleNew)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/inbox", bot.MatchTypePrefix, b.handleInbox)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/refresh", bot.MatchTypePrefix, b.handleNew)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/domains", bot.MatchTypePrefix, b.handleDomains)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypePrefix, b.handleHistory)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, b.handleHelp)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/adddomain", bot.MatchTypePrefix, b.handleAddDomain)
	b.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, b.handleCallback)
}

// SetupNotifications wires the deferred inbox check into the chat.
func (b *Bot) SetupNotifications() {
	b.scheduler.SetNotifier(b.onNewMail)
}

// Start registers the command menu and starts long polling.
func (b *Bot) Start(ctx context.Context) {
	if _, err := b.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{Command: "start", Description: "Главное меню"},
			{Command: "new", Description: "Создать email"},
			{Command: "inbox", Description: "Проверить входящие"},
			{Command: "refresh", Description: "Другой email"},
			{Command: "domains", Description: "Список доменов"},
			{Command: "history", Description: "История адресов"},
			{Command: "help", Description: "Справка"},
		},
	}); err != nil {
		b.logger.Warn("failed to set command menu", "error", err)
	}

	b.logger.Info("starting telegram bot")
	b.bot.Start(ctx)
}

// defaultHandler handles unknown messages
func (b *Bot) defaultHandler(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	// Log unknown commands
	if update.Message.Text != "" && update.Message.Text[0] == '/' {
		b.logger.Debug("unknown command", "text", update.Message.Text)
	}
}

// isAdmin checks the acting identity against the configured administrator.
func (b *Bot) isAdmin(userID int64) bool {
	return userID == b.config.AdminID
}
