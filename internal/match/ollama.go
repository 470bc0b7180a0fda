package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/garnizeh/skillswap/internal/config"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/ollama/ollama/api"
	"github.com/qri-io/jsonschema"
)

// package-level logger; can be replaced by callers via SetLogger
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by package match. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// recommendationSchema constrains the model's reply before it is trusted.
const recommendationSchema = `{
	"type": "object",
	"properties": {
		"recommendedIds": {
			"type": "array",
			"items": {"type": "string"}
		}
	},
	"required": ["recommendedIds"]
}`

type recommendation struct {
	RecommendedIDs []string `json:"recommendedIds"`
}

// Ollama ranks candidates with a local model. Every failure mode (network,
// malformed output, schema violation, empty result) degrades silently to
// the fallback ranker, so callers always get an answer.
type Ollama struct {
	client   *api.Client
	model    string
	schema   *jsonschema.Schema
	fallback Ranker
}

var _ Ranker = (*Ollama)(nil)

// NewOllama builds a model-backed ranker. fallback defaults to Heuristic{}.
func NewOllama(cfg config.MatchConfig, httpClient *http.Client, fallback Ranker) (*Ollama, error) {
	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if fallback == nil {
		fallback = Heuristic{}
	}

	schema := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(recommendationSchema), schema); err != nil {
		return nil, fmt.Errorf("parse recommendation schema: %w", err)
	}

	return &Ollama{
		client:   api.NewClient(u, httpClient),
		model:    cfg.Model,
		schema:   schema,
		fallback: fallback,
	}, nil
}

func (o *Ollama) Recommend(ctx context.Context, current models.User, pool []models.User) ([]string, error) {
	candidates := eligible(current, pool)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	ids, err := o.generate(ctx, current, candidates)
	if err != nil {
		logger.Warn("model ranking failed, using heuristic",
			slog.String("model", o.model),
			slog.Any("err", err),
		)
		return o.fallback.Recommend(ctx, current, pool)
	}
	return ids, nil
}

func (o *Ollama) generate(ctx context.Context, current models.User, candidates []models.User) ([]string, error) {
	prompt := buildPrompt(current, candidates)

	var out strings.Builder
	stream := false
	req := &api.GenerateRequest{Model: o.model, Prompt: prompt, Stream: &stream}
	err := o.client.Generate(ctx, req, func(r api.GenerateResponse) error {
		out.WriteString(r.Response)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	j := extractJSON(out.String())
	if j == "" {
		return nil, errors.New("no JSON object found in response")
	}

	verrs, err := o.schema.ValidateBytes(ctx, []byte(j))
	if err != nil {
		return nil, fmt.Errorf("schema validate: %w", err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("response does not match schema: %s", verrs[0].Message)
	}

	var rec recommendation
	if err := json.Unmarshal([]byte(j), &rec); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	// keep only ids that actually exist in the candidate pool
	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c.ID] = true
	}
	ids := make([]string, 0, MaxRecommendations)
	for _, id := range rec.RecommendedIDs {
		if !known[id] {
			continue
		}
		ids = append(ids, id)
		if len(ids) == MaxRecommendations {
			break
		}
	}
	if len(ids) == 0 {
		return nil, errors.New("model returned no usable ids")
	}
	return ids, nil
}

func buildPrompt(current models.User, candidates []models.User) string {
	var b strings.Builder
	b.WriteString("Act as a talent scout for a skill exchange platform. Match the current user with the ")
	fmt.Fprintf(&b, "%d best potential partners from the list.\n\n", MaxRecommendations)

	b.WriteString("Current User Profile:\n")
	writeProfile(&b, current)

	b.WriteString("\nPotential Partners List:\n")
	for _, u := range candidates {
		fmt.Fprintf(&b, "\nID: %s\n", u.ID)
		writeProfile(&b, u)
	}

	b.WriteString("\nEvaluate based on:\n")
	b.WriteString("1. Direct skill overlaps (they teach what the user wants).\n")
	b.WriteString("2. Mutual benefit (the user teaches what they want).\n")
	b.WriteString("3. Personality/Bio compatibility.\n\n")
	b.WriteString(`Return ONLY a JSON object with a key "recommendedIds" containing an array of ID strings.`)
	return b.String()
}

func writeProfile(b *strings.Builder, u models.User) {
	fmt.Fprintf(b, "- Name: %s\n", u.Name)
	fmt.Fprintf(b, "- Bio: %s\n", u.Bio)
	fmt.Fprintf(b, "- Teaches: %s\n", skillNames(u.SkillsOffered))
	fmt.Fprintf(b, "- Wants: %s\n", skillNames(u.SkillsRequested))
}

func skillNames(skills []models.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// extractJSON returns the substring from the first '{' to the last '}' in
// the input, a pragmatic answer to models that wrap JSON in prose or
// markdown fences.
func extractJSON(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return ""
	}
	return s[first : last+1]
}
