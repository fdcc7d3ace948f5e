package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"SignalDesk/internal/domain/models"
	"SignalDesk/internal/signal"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	applogger "SignalDesk/pkg/logger"
)

// Client reads alert messages from a Telegram chat via the Bot API.
type Client struct {
	http      *xhttp.Client
	apiURL    string
	token     string
	chatID    int64
	pageLimit int
	log       *applogger.Logger
}

// NewClient creates a Telegram message source from config.
func NewClient(cfg *config.Config, log *applogger.Logger) *Client {
	apiURL := cfg.Telegram.APIURL
	if apiURL == "" {
		apiURL = "https://api.telegram.org"
	}
	pageLimit := cfg.Telegram.PageLimit
	if pageLimit <= 0 {
		pageLimit = 100
	}
	timeout := cfg.Telegram.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		apiURL:    apiURL,
		token:     cfg.Telegram.BotToken,
		chatID:    cfg.Telegram.ChatID,
		pageLimit: pageLimit,
		log:       log,
	}
}

type updatesResponse struct {
	OK          bool     `json:"ok"`
	Description string   `json:"description"`
	Result      []update `json:"result"`
}

type update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
	Channel  *message `json:"channel_post"`
}

type message struct {
	MessageID int64 `json:"message_id"`
	Date      int64 `json:"date"`
	Text      string `json:"text"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
}

// Messages returns chat messages whose timestamps fall inside [from, to],
// comparing naive wall-clock values. Pages through getUpdates until the API
// returns a short page.
func (c *Client) Messages(ctx context.Context, from, to time.Time) ([]models.RawMessage, error) {
	var out []models.RawMessage
	offset := int64(0)

	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		for _, u := range page {
			offset = u.UpdateID + 1
			msg := u.Message
			if msg == nil {
				msg = u.Channel
			}
			if msg == nil || msg.Text == "" {
				continue
			}
			if c.chatID != 0 && msg.Chat.ID != c.chatID {
				continue
			}
			ts := time.Unix(msg.Date, 0).UTC()
			if !signal.InWindow(ts, from, to) {
				continue
			}
			out = append(out, models.RawMessage{
				ID:        strconv.FormatInt(msg.MessageID, 10),
				Timestamp: ts,
				Text:      msg.Text,
			})
		}

		if len(page) < c.pageLimit {
			break
		}
	}

	c.log.Debug("telegram messages fetched", applogger.Int("count", len(out)))
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, offset int64) ([]update, error) {
	var resp updatesResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/bot%s/getUpdates", c.apiURL, c.token),
		QueryParams: map[string][]string{
			"offset": {strconv.FormatInt(offset, 10)},
			"limit":  {strconv.Itoa(c.pageLimit)},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("telegram getUpdates: %w", err)
	}
	if !resp.OK {
		return nil, fmt.Errorf("telegram getUpdates: %s", resp.Description)
	}
	return resp.Result, nil
}
