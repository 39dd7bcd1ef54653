package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hakambing/bikebuddy-bot/internal/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultPollTimeout = 30 * time.Second

type Config struct {
	Token string
	// Endpoint overrides the Bot API URL template, e.g. for a local Bot API server.
	Endpoint    string
	PollTimeout time.Duration
	QueueSize   int
	Debug       bool
}

// Transport long-polls the Bot API and feeds updates to a Handler.
type Transport struct {
	api         *tgbotapi.BotAPI
	handler     Handler
	pollTimeout time.Duration
	queueSize   int
}

func New(cfg Config, handler Handler) (*Transport, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is required")
	}
	if handler == nil {
		return nil, errors.New("telegram handler is required")
	}

	if err := tgbotapi.SetLogger(zerologAdapter{logger: log.With().Str("component", "telegram").Logger()}); err != nil {
		return nil, fmt.Errorf("set telegram logger: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.Token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	api.Debug = cfg.Debug

	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}

	return &Transport{
		api:         api,
		handler:     handler,
		pollTimeout: pollTimeout,
		queueSize:   cfg.QueueSize,
	}, nil
}

func (t *Transport) Username() string {
	return t.api.Self.UserName
}

// Run polls until ctx is cancelled, then waits for in-flight updates.
func (t *Transport) Run(ctx context.Context) error {
	if _, err := t.api.Request(commandMenu(bot.Commands)); err != nil {
		log.Warn().Err(err).Msg("register bot commands")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = int(t.pollTimeout / time.Second)
	updates := t.api.GetUpdatesChan(updateConfig)

	d := newDispatcher(t.handler, t.api, t.queueSize)
	defer d.close()
	defer t.api.StopReceivingUpdates()

	log.Info().Str("bot", t.api.Self.UserName).Msg("telegram polling started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("telegram polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			d.dispatch(ctx, update)
		}
	}
}

// zerologAdapter routes the Bot API library's own log lines into zerolog.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (a zerologAdapter) Println(v ...interface{}) {
	a.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintln(v...)))
}

func (a zerologAdapter) Printf(format string, v ...interface{}) {
	a.logger.Debug().Msgf(format, v...)
}
