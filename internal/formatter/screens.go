package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mixelka/tempmailbot/pkg/models"
)

const (
	// BodyLimit is how much of a message body one screen shows, in runes.
	BodyLimit = 1000

	// MaxInboxMessages caps how many summaries one inbox screen shows.
	MaxInboxMessages = 10

	subjectLineLimit   = 40
	subjectButtonLimit = 30
)

// FormatWelcome renders the /start screen.
func FormatWelcome(firstName string) string {
	name := "друг"
	if firstName != "" {
		name = EscapeHTML(firstName)
	}

	return fmt.Sprintf(`🌟 <b>TempMail Bot</b> 🌟

Привет, %s! 👋

Бот выдаёт временные email-адреса для защиты вашей приватности.

<b>Команды:</b>
/new - создать новый email
/inbox - проверить входящие
/refresh - выдать другой email
/domains - список доменов
/history - ранее выданные адреса
/help - справка

Начните с /new, чтобы получить первый адрес!`, name)
}

// FormatHelp renders the /help screen.
func FormatHelp() string {
	return `📖 <b>Как пользоваться ботом</b>

1. Создайте email через /new
2. Выберите домен или нажмите «Случайный»
3. Скопируйте адрес и используйте для регистрации
4. Проверяйте входящие через /inbox

<b>Команды:</b>
/start - главное меню
/new - создать email
/inbox - входящие
/refresh - другой email
/domains - домены
/history - история адресов
/help - эта справка

<b>Админ:</b>
/adddomain - добавить свой домен

<b>Внимание:</b> адреса публичные и временные, не используйте их для важных данных!`
}

// FormatDomainPicker renders the domain selection screen.
func FormatDomainPicker() string {
	return "🌐 <b>Выберите домен для адреса:</b>"
}

// FormatMailboxCreated renders the confirmation after allocation.
func FormatMailboxCreated(addr models.Address) string {
	return fmt.Sprintf(`✅ <b>Email создан!</b>

📧 <b>Адрес:</b> <code>%s</code>

<i>Нажмите на адрес, чтобы скопировать.</i>

Письма начнут приходить через несколько секунд, проверяйте входящие кнопкой ниже.`, EscapeHTML(addr.String()))
}

// FormatNoMailbox renders the guidance shown when the user has never
// created an address.
func FormatNoMailbox() string {
	return "❌ У вас нет активного email.\nСначала создайте адрес!"
}

// FormatEmptyInbox renders the empty-inbox state.
func FormatEmptyInbox(addr models.Address, checkedAt time.Time) string {
	return fmt.Sprintf(`📭 <b>Входящих нет</b>

📧 <b>Активный адрес:</b> <code>%s</code>

<i>Писем пока нет, попробуйте обновить чуть позже.</i>

⏰ Проверено: %s`, EscapeHTML(addr.String()), checkedAt.Format("15:04:05"))
}

// FormatInbox renders at most MaxInboxMessages newest summaries.
func FormatInbox(addr models.Address, msgs []models.MessageSummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📬 <b>Входящие — %d</b>\n\n", len(msgs))
	fmt.Fprintf(&sb, "📧 <b>Адрес:</b> <code>%s</code>\n\n", EscapeHTML(addr.String()))

	for _, msg := range clipMessages(msgs) {
		fmt.Fprintf(&sb, "📨 <b>%s</b>\n", EscapeHTML(truncateRunes(subjectOrDefault(msg.Subject), subjectLineLimit)))
		fmt.Fprintf(&sb, "👤 %s\n", EscapeHTML(senderOrDefault(msg.From)))
		fmt.Fprintf(&sb, "🕐 %s\n\n", EscapeHTML(msg.Date))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatMessage renders a message detail with the stripped plain-text body.
func FormatMessage(msg *models.MessageDetail, plainBody string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📧 <b>%s</b>\n\n", EscapeHTML(subjectOrDefault(msg.Subject)))
	fmt.Fprintf(&sb, "👤 <b>От:</b> %s\n", EscapeHTML(senderOrDefault(msg.From)))
	fmt.Fprintf(&sb, "🕐 <b>Дата:</b> %s\n\n", EscapeHTML(msg.Date))
	sb.WriteString("📄 <b>Сообщение:</b>\n")

	body, cut := TruncateBody(plainBody)
	sb.WriteString(EscapeHTML(body))
	if cut {
		sb.WriteString("\n\n<i>... (обрезано)</i>")
	}

	return sb.String()
}

// FormatDomains renders the merged domain list, marking custom entries.
func FormatDomains(domains []string, isCustom func(string) bool) string {
	var sb strings.Builder
	sb.WriteString("🌐 <b>Доступные домены</b>\n\n")

	for i, domain := range domains {
		mark := "📧 публичный"
		if isCustom(domain) {
			mark = "⭐ свой"
		}
		fmt.Fprintf(&sb, "%d. %s %s\n", i+1, EscapeHTML(domain), mark)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatHistory renders previously issued addresses, newest first.
func FormatHistory(addrs []models.Address) string {
	if len(addrs) == 0 {
		return "📂 История пуста.\nСоздайте первый email через /new."
	}

	var sb strings.Builder
	sb.WriteString("💾 <b>Ранее выданные адреса</b>\n\n")
	for i, addr := range addrs {
		fmt.Fprintf(&sb, "%d. <code>%s</code>\n", i+1, EscapeHTML(addr.String()))
	}
	sb.WriteString("\n<i>Письма приходят только на текущий (первый) адрес.</i>")

	return sb.String()
}

// FormatNewMail renders the push notification sent by the deferred check.
func FormatNewMail(addr models.Address, count int) string {
	return fmt.Sprintf("📬 <b>Новые письма!</b>\n\nНа <code>%s</code> пришло писем: %d.\nОткройте /inbox, чтобы посмотреть.",
		EscapeHTML(addr.String()), count)
}

// TruncateBody cuts a body down to BodyLimit runes. The second value reports
// whether the limit was reached — a body of exactly BodyLimit counts — so the
// caller can append a truncation marker outside of HTML escaping.
func TruncateBody(s string) (string, bool) {
	runes := []rune(s)
	if len(runes) < BodyLimit {
		return s, false
	}
	return string(runes[:BodyLimit]), true
}

// EscapeHTML escapes HTML special characters for Telegram
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func clipMessages(msgs []models.MessageSummary) []models.MessageSummary {
	if len(msgs) > MaxInboxMessages {
		return msgs[:MaxInboxMessages]
	}
	return msgs
}

func subjectOrDefault(subject string) string {
	if strings.TrimSpace(subject) == "" {
		return "Без темы"
	}
	return subject
}

func senderOrDefault(from string) string {
	if strings.TrimSpace(from) == "" {
		return "Неизвестный отправитель"
	}
	return from
}

// truncateRunes keeps the rendered width within limit, ellipsis included.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
