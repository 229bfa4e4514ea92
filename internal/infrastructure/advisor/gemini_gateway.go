package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net"
	"strings"

	"wetrade/internal/domain/entities"
	"wetrade/internal/logging"
	"wetrade/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

// Config is the subset of settings the Gemini gateway needs.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	ChatModel string
	Mock      bool
}

// GeminiGateway talks to the Gemini API. In mock mode it answers locally with a
// deterministic appraisal and never opens a connection.
type GeminiGateway struct {
	client    *genai.Client
	model     string
	chatModel string
	mockMode  bool
}

var _ interfaces.IAdvisorGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, cfg Config) (*GeminiGateway, error) {
	log := logging.Component("valuation", "gateway")
	if cfg.Mock {
		log.Info("mock mode enabled")
		return &GeminiGateway{model: cfg.Model, chatModel: cfg.ChatModel, mockMode: true}, nil
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		log.Errorf("failed creating genai client err=%v", err)
		return nil, errors.Wrap(err, "create genai client")
	}
	log.WithField("model", cfg.Model).Info("Gemini client initialized")

	return &GeminiGateway{client: client, model: cfg.Model, chatModel: cfg.ChatModel}, nil
}

func (g *GeminiGateway) Appraise(ctx context.Context, prompt interfaces.AppraisalPrompt) (interfaces.AppraisalReply, error) {
	log := logging.Component("valuation", "gateway")
	if g != nil && g.mockMode {
		log.WithField("has_image", prompt.Image != nil).Debug("mock appraise")
		return mockAppraisal(prompt), nil
	}
	if g == nil || g.client == nil {
		log.Warn("gateway not configured")
		return interfaces.AppraisalReply{}, interfaces.ErrGatewayNotConfigured
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt.Instruction)}
	if prompt.Image != nil && len(prompt.Image.Data) > 0 {
		parts = append(parts, genai.NewPartFromBytes(prompt.Image.Data, prompt.Image.MIMEType))
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(prompt.Schema),
	}
	if prompt.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(prompt.SystemInstruction, genai.RoleUser)
	}
	if prompt.SearchGrounding {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	log.WithField("model", g.model).WithField("parts", len(parts)).Debug("appraise start")
	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, config)
	if err != nil {
		log.Warnf("generate content failed err=%v", err)
		return interfaces.AppraisalReply{}, classify(err)
	}

	reply := interfaces.AppraisalReply{Text: responseText(resp), Sources: groundingSources(resp)}
	log.WithField("text_len", len(reply.Text)).WithField("sources", len(reply.Sources)).Debug("appraise done")
	return reply, nil
}

func (g *GeminiGateway) Chat(ctx context.Context, systemInstruction, message string) (string, error) {
	log := logging.Component("assistant", "gateway")
	if g != nil && g.mockMode {
		return "Thanks for reaching out to WeTrade! Share your gadget details and we will get you a quote.", nil
	}
	if g == nil || g.client == nil {
		log.Warn("gateway not configured")
		return "", interfaces.ErrGatewayNotConfigured
	}

	config := &genai.GenerateContentConfig{}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.chatModel, genai.Text(message), config)
	if err != nil {
		log.Warnf("generate content failed err=%v", err)
		return "", classify(err)
	}
	return responseText(resp), nil
}

func responseSchema(fields []interfaces.SchemaField) *genai.Schema {
	if len(fields) == 0 {
		return nil
	}
	s := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(fields)),
		Required:   make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		t := genai.TypeString
		if f.Type == "number" {
			t = genai.TypeNumber
		}
		s.Properties[f.Name] = &genai.Schema{Type: t, Description: f.Description}
		s.Required = append(s.Required, f.Name)
	}
	return s
}

// responseText joins the text parts of the first candidate, skipping thoughts.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

func groundingSources(resp *genai.GenerateContentResponse) []entities.ValuationSource {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []entities.ValuationSource
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out = append(out, entities.ValuationSource{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return out
}

// classify marks rate limiting, server errors and network errors as transient.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || apiErr.Code >= 500 {
			return errors.Wrap(interfaces.ErrGatewayTransient, err.Error())
		}
		return errors.Wrapf(err, "gemini api status %d", apiErr.Code)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Wrap(interfaces.ErrGatewayTransient, err.Error())
	}
	return err
}

func mockAppraisal(prompt interfaces.AppraisalPrompt) interfaces.AppraisalReply {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt.Instruction))
	mv := float64(150000 + int(h.Sum32()%70)*10000)

	b, _ := json.Marshal(map[string]any{
		"estimatedMarketValue": mv,
		"maxLoanOffer":         mv * 0.7,
		"confidenceScore":      0.5,
		"analysis":             fmt.Sprintf("Mock valuation: comparable listings average around %.0f.", mv),
	})
	return interfaces.AppraisalReply{
		Text:    string(b),
		Sources: []entities.ValuationSource{{Title: "Mock Market Listing", URI: "https://example.com/mock-listing"}},
	}
}
