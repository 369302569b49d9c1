package integration

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const maxFeedBytes = 1 << 20

// FeedClient fetches the external results feed. When a relay URL is
// configured the target is fetched through it (a text-extraction proxy
// taking the escaped target as suffix). HTML payloads are reduced to
// plain text so the harvester always sees line-oriented text.
type FeedClient struct {
	client   *http.Client
	feedURL  string
	relayURL string
}

func NewFeedClient(feedURL, relayURL string) *FeedClient {
	return &FeedClient{
		client:   &http.Client{Timeout: 10 * time.Second},
		feedURL:  feedURL,
		relayURL: relayURL,
	}
}

func (c *FeedClient) FetchText() (string, error) {
	target := c.feedURL
	if c.relayURL != "" {
		target = c.relayURL + url.QueryEscape(c.feedURL)
	}

	resp, err := c.client.Get(target)
	if err != nil {
		return "", fmt.Errorf("failed to fetch results feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("results feed returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read results feed: %w", err)
	}

	if looksLikeHTML(resp.Header.Get("Content-Type"), data) {
		return extractText(data), nil
	}
	return string(data), nil
}

func looksLikeHTML(contentType string, data []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	lowered := bytes.ToLower(head)
	return bytes.Contains(lowered, []byte("<html")) || bytes.Contains(lowered, []byte("<!doctype html"))
}

// extractText walks the HTML token stream and emits one line per text
// node, skipping script and style bodies. Tag structure is otherwise
// discarded; the harvester only needs names and time tokens on nearby
// lines.
func extractText(data []byte) string {
	z := html.NewTokenizer(bytes.NewReader(data))
	var b strings.Builder
	skipTag := ""
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			t := z.Token()
			if t.Data == "script" || t.Data == "style" {
				skipTag = t.Data
			}
		case html.EndTagToken:
			t := z.Token()
			if t.Data == skipTag {
				skipTag = ""
			}
		case html.TextToken:
			if skipTag != "" {
				continue
			}
			text := strings.TrimSpace(z.Token().Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
	}
}
