package formatter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

func TestCallbackRoundtrip(t *testing.T) {
	in := appmodels.CallbackData{
		Action:    appmodels.CallbackReadMessage,
		MessageID: 12345,
	}

	out, err := DecodeCallback(EncodeCallback(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCallbackSizeLimit(t *testing.T) {
	// Telegram rejects callback data above 64 bytes
	data := EncodeCallback(appmodels.CallbackData{
		Action: appmodels.CallbackPickDomain,
		Domain: "some-fairly-long-domain-name.example.com",
	})
	assert.LessOrEqual(t, len(data), 64)
}

func TestBuildDomainPickerKeyboard(t *testing.T) {
	kb := BuildDomainPickerKeyboard([]string{"a.com", "b.com", "c.com"})

	// two per row plus the random row
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)

	random, err := DecodeCallback(kb.InlineKeyboard[2][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, appmodels.CallbackPickDomain, random.Action)
	assert.Empty(t, random.Domain, "random pick carries no domain")

	first, err := DecodeCallback(kb.InlineKeyboard[0][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, "a.com", first.Domain)
}

func TestBuildInboxKeyboard(t *testing.T) {
	t.Run("one read button per message plus controls", func(t *testing.T) {
		msgs := []appmodels.MessageSummary{
			{ID: 1, Subject: "first"},
			{ID: 2, Subject: "second"},
		}
		kb := BuildInboxKeyboard(msgs)
		require.Len(t, kb.InlineKeyboard, 4) // 2 reads + refresh + navigation

		data, err := DecodeCallback(kb.InlineKeyboard[1][0].CallbackData)
		require.NoError(t, err)
		assert.Equal(t, appmodels.CallbackReadMessage, data.Action)
		assert.Equal(t, int64(2), data.MessageID)
	})

	t.Run("button labels stay within thirty runes", func(t *testing.T) {
		long := strings.Repeat("s", 50)
		kb := BuildInboxKeyboard([]appmodels.MessageSummary{{ID: 1, Subject: long}})

		label := kb.InlineKeyboard[0][0].Text
		// "📖 " prefix + at most 30 runes, ellipsis included
		assert.LessOrEqual(t, utf8.RuneCountInString(label), 32)
		assert.Contains(t, label, strings.Repeat("s", 29)+"…")
	})

	t.Run("clipped to ten read buttons", func(t *testing.T) {
		var msgs []appmodels.MessageSummary
		for i := 0; i < 20; i++ {
			msgs = append(msgs, appmodels.MessageSummary{ID: int64(i)})
		}
		kb := BuildInboxKeyboard(msgs)
		assert.Len(t, kb.InlineKeyboard, 12) // 10 reads + refresh + navigation
	})
}

func TestBuildDomainsKeyboard(t *testing.T) {
	t.Run("admin sees the add-domain button", func(t *testing.T) {
		kb := BuildDomainsKeyboard(true)
		data, err := DecodeCallback(kb.InlineKeyboard[0][0].CallbackData)
		require.NoError(t, err)
		assert.Equal(t, appmodels.CallbackAddDomain, data.Action)
	})

	t.Run("regular users do not", func(t *testing.T) {
		kb := BuildDomainsKeyboard(false)
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				data, err := DecodeCallback(btn.CallbackData)
				require.NoError(t, err)
				assert.NotEqual(t, appmodels.CallbackAddDomain, data.Action)
			}
		}
	})
}
