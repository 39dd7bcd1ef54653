package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hakambing/bikebuddy-bot/internal/bot"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// chatOf returns the chat an update belongs to. Updates without a chat (inline
// queries, edited channel posts) are not handled.
func chatOf(update tgbotapi.Update) (int64, bool) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil && update.CallbackQuery.Message.Chat != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	case update.Message != nil && update.Message.Chat != nil:
		return update.Message.Chat.ID, true
	default:
		return 0, false
	}
}

func toEvent(chatID int64, update tgbotapi.Update) bot.Event {
	ev := bot.Event{ConversationID: conversationID(chatID)}
	if update.CallbackQuery != nil {
		ev.Callback = update.CallbackQuery.Data
		return ev
	}
	if update.Message != nil {
		ev.Text = update.Message.Text
	}
	return ev
}

func conversationID(chatID int64) domain.ConversationID {
	return domain.ConversationID(strconv.FormatInt(chatID, 10))
}

func toChattables(chatID int64, reply bot.Reply) []tgbotapi.Chattable {
	if reply.Document != nil {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
			Name:  reply.Document.Name,
			Bytes: reply.Document.Data,
		})
		doc.Caption = reply.Text
		return []tgbotapi.Chattable{doc}
	}

	if reply.Text == "" {
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Buttons) > 0 {
		msg.ReplyMarkup = keyboard(reply.Buttons)
	}
	return []tgbotapi.Chattable{msg}
}

func keyboard(rows [][]bot.Button) tgbotapi.InlineKeyboardMarkup {
	markup := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Data))
		}
		markup = append(markup, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(markup...)
}

func commandMenu(commands []bot.Command) tgbotapi.SetMyCommandsConfig {
	menu := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		menu = append(menu, tgbotapi.BotCommand{Command: cmd.Name, Description: cmd.Description})
	}
	return tgbotapi.NewSetMyCommands(menu...)
}
