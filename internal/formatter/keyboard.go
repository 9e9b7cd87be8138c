package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/go-telegram/bot/models"

	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

// BuildMainMenuKeyboard creates the /start screen keyboard
func BuildMainMenuKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{button("📧 Создать email", appmodels.CallbackData{Action: appmodels.CallbackNewEmail})},
			{
				button("📖 Справка", appmodels.CallbackData{Action: appmodels.CallbackHelp}),
				button("🌐 Домены", appmodels.CallbackData{Action: appmodels.CallbackDomains}),
			},
		},
	}
}

// BuildDomainPickerKeyboard creates the domain selection keyboard, two
// domains per row plus a random option.
func BuildDomainPickerKeyboard(domains []string) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	for i := 0; i < len(domains); i += 2 {
		row := []models.InlineKeyboardButton{
			button("📧 "+domains[i], appmodels.CallbackData{Action: appmodels.CallbackPickDomain, Domain: domains[i]}),
		}
		if i+1 < len(domains) {
			row = append(row,
				button("📧 "+domains[i+1], appmodels.CallbackData{Action: appmodels.CallbackPickDomain, Domain: domains[i+1]}))
		}
		rows = append(rows, row)
	}

	rows = append(rows, []models.InlineKeyboardButton{
		button("🎲 Случайный", appmodels.CallbackData{Action: appmodels.CallbackPickDomain}),
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BuildMailboxKeyboard creates the keyboard under the created-address screen
func BuildMailboxKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{button("📬 Проверить входящие", appmodels.CallbackData{Action: appmodels.CallbackCheckInbox})},
			navigationRow(),
		},
	}
}

// BuildNoMailboxKeyboard creates the keyboard for the no-active-mailbox guidance
func BuildNoMailboxKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{button("📧 Создать email", appmodels.CallbackData{Action: appmodels.CallbackNewEmail})},
		},
	}
}

// BuildEmptyInboxKeyboard creates the keyboard for the empty-inbox state
func BuildEmptyInboxKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{button("🔄 Обновить", appmodels.CallbackData{Action: appmodels.CallbackRefreshInbox})},
			navigationRow(),
		},
	}
}

// BuildInboxKeyboard creates one read button per shown summary, then the
// refresh and navigation rows.
func BuildInboxKeyboard(msgs []appmodels.MessageSummary) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	for _, msg := range clipMessages(msgs) {
		label := fmt.Sprintf("📖 %s", truncateRunes(subjectOrDefault(msg.Subject), subjectButtonLimit))
		rows = append(rows, []models.InlineKeyboardButton{
			button(label, appmodels.CallbackData{Action: appmodels.CallbackReadMessage, MessageID: msg.ID}),
		})
	}

	rows = append(rows, []models.InlineKeyboardButton{
		button("🔄 Обновить", appmodels.CallbackData{Action: appmodels.CallbackRefreshInbox}),
	})
	rows = append(rows, navigationRow())

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BuildMessageKeyboard creates the keyboard under a message detail
func BuildMessageKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{button("⬅️ К входящим", appmodels.CallbackData{Action: appmodels.CallbackCheckInbox})},
			{button("🏠 Меню", appmodels.CallbackData{Action: appmodels.CallbackMainMenu})},
		},
	}
}

// BuildDomainsKeyboard creates the keyboard for the domain list; the
// administrator additionally gets an add-domain button.
func BuildDomainsKeyboard(isAdmin bool) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	if isAdmin {
		rows = append(rows, []models.InlineKeyboardButton{
			button("➕ Добавить домен", appmodels.CallbackData{Action: appmodels.CallbackAddDomain}),
		})
	}

	rows = append(rows,
		[]models.InlineKeyboardButton{button("📧 Создать email", appmodels.CallbackData{Action: appmodels.CallbackNewEmail})},
		[]models.InlineKeyboardButton{button("🏠 Меню", appmodels.CallbackData{Action: appmodels.CallbackMainMenu})},
	)

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BuildBackToMenuKeyboard creates a single back-to-menu row
func BuildBackToMenuKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{button("🏠 Меню", appmodels.CallbackData{Action: appmodels.CallbackMainMenu})},
		},
	}
}

func navigationRow() []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		button("📧 Новый email", appmodels.CallbackData{Action: appmodels.CallbackNewEmail}),
		button("🏠 Меню", appmodels.CallbackData{Action: appmodels.CallbackMainMenu}),
	}
}

func button(text string, data appmodels.CallbackData) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: EncodeCallback(data),
	}
}

// EncodeCallback encodes callback data to string
func EncodeCallback(data appmodels.CallbackData) string {
	b, _ := json.Marshal(data)
	return string(b)
}

// DecodeCallback decodes callback data from string
func DecodeCallback(data string) (appmodels.CallbackData, error) {
	var cb appmodels.CallbackData
	err := json.Unmarshal([]byte(data), &cb)
	return cb, err
}
