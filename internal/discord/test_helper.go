package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MagicCritBot_Go/internal/critrate"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// CapturedResponse is the part of an interaction callback tests assert on
type CapturedResponse struct {
	Type int `json:"type"`
	Data struct {
		Content string `json:"content"`
	} `json:"data"`
}

// TestContext bundles a Discord session whose HTTP calls never leave the process
type TestContext struct {
	Session      *discordgo.Session
	Calc         *critrate.Service
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	Responses []CapturedResponse
}

// SetupTestContext creates a session with an intercepted HTTP client that
// records interaction callbacks and answers everything else with "{}".
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Session: session,
		Calc:    critrate.NewService(critrate.NewCalculator(nil), critrate.CacheConfig{Size: 8}),
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback") {
				var body CapturedResponse
				if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
					ctx.mu.Lock()
					ctx.Responses = append(ctx.Responses, body)
					ctx.mu.Unlock()
				}
			}
			return jsonResponse("{}"), nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

// LastContent returns the content of the most recent interaction reply
func (c *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Responses) == 0 {
		t.Fatal("no interaction response captured")
	}
	return c.Responses[len(c.Responses)-1].Data.Content
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// commandInteraction builds an application command interaction for handler tests
func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func witOption(wit int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord delivers numbers as JSON, so integer options decode to float64
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionWit,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(wit),
	}
}

func buffOption(buffs string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionBuffNumbers,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: buffs,
	}
}
