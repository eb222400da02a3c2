// Package productcopy generates marketing copy for catalog products with a
// sequential prompt chain: catalog lookup, a gate that ends the run for
// unknown products, image feature extraction, then description, short
// description, SEO title, SEO meta description, and keywords, each step
// building on the previous outputs.
package productcopy

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/randalmurphal/stategraph/pkg/stategraph"
	"github.com/randalmurphal/stategraph/pkg/stategraph/config"
	"github.com/randalmurphal/stategraph/pkg/stategraph/llm"
	"github.com/randalmurphal/stategraph/pkg/stategraph/template"

	"github.com/randalmurphal/stategraph/pkg/productcopy/catalog"
)

// Routes returned by the product gate. The route table is closed: the
// router may only return one of these.
const (
	// RouteAnalyzeImage continues the chain with image analysis.
	RouteAnalyzeImage stategraph.Route = "analyze_product_image"
	// RouteEnd terminates the run without generating copy.
	RouteEnd stategraph.Route = "end"
)

// Config keys read by NewGenerator.
const (
	// KeyModel names the model for every generation call.
	KeyModel = "model"
	// KeyTemperature sets the sampling temperature for the SEO steps.
	KeyTemperature = "temperature"
	// KeyDescriptionTemperature sets the temperature for the main
	// description, which benefits from more varied phrasing.
	KeyDescriptionTemperature = "description_temperature"
)

var keywordsSchema = llm.SchemaFor("product_keywords",
	"SEO keywords for a product",
	`{
		"type": "object",
		"properties": {
			"keywords": {
				"type": "array",
				"items": {"type": "string"},
				"description": "SEO keywords and phrases for the product"
			}
		},
		"required": ["keywords"]
	}`)

type keywordsOutput struct {
	Keywords []string `json:"keywords"`
}

// Generator runs the copy generation workflow.
// Build once with NewGenerator and reuse; Generate is safe for concurrent use.
type Generator struct {
	client      llm.Client
	store       catalog.Store
	logger      *slog.Logger
	model       string
	temperature float64
	descTemp    float64
	expander    *template.Expander
	graph       *stategraph.CompiledGraph[Copy]
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger for workflow runs.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a Generator from configuration, a model client, and a
// product catalog. Returns an error if a collaborator is nil or the graph
// fails to compile.
func NewGenerator(cfg config.Config, client llm.Client, store catalog.Store, opts ...GeneratorOption) (*Generator, error) {
	if client == nil {
		return nil, errors.New("productcopy: client cannot be nil")
	}
	if store == nil {
		return nil, errors.New("productcopy: catalog store cannot be nil")
	}

	g := &Generator{
		client:      client,
		store:       store,
		logger:      slog.Default(),
		model:       cfg.String(KeyModel, ""),
		temperature: cfg.Float(KeyTemperature, 0),
		descTemp:    cfg.Float(KeyDescriptionTemperature, 0.3),
		expander:    template.NewExpander(template.WithMissingAction(template.MissingError)),
	}
	for _, opt := range opts {
		opt(g)
	}

	compiled, err := g.buildGraph().Compile()
	if err != nil {
		return nil, err
	}
	g.graph = compiled
	return g, nil
}

// buildGraph wires the chain with its conditional gate.
func (g *Generator) buildGraph() *stategraph.Graph[Copy] {
	graph := stategraph.NewGraph[Copy]().
		AddNode("find_product_details", g.findProductDetails).
		AddNode("extract_product_features_from_image", g.extractImageFeatures).
		AddNode("generate_product_description", g.generateDescription).
		AddNode("generate_product_short_description", g.generateShortDescription).
		AddNode("generate_product_seo_title", g.generateSEOTitle).
		AddNode("generate_product_seo_description", g.generateSEODescription).
		AddNode("generate_product_keywords", g.generateKeywords).
		SetEntry("find_product_details")

	graph.AddConditionalEdges("find_product_details", g.gateProductFound,
		map[stategraph.Route]string{
			RouteAnalyzeImage: "extract_product_features_from_image",
			RouteEnd:          stategraph.END,
		})

	graph.AddEdge("extract_product_features_from_image", "generate_product_description").
		AddEdge("generate_product_description", "generate_product_short_description").
		AddEdge("generate_product_short_description", "generate_product_seo_title").
		AddEdge("generate_product_seo_title", "generate_product_seo_description").
		AddEdge("generate_product_seo_description", "generate_product_keywords").
		AddEdge("generate_product_keywords", stategraph.END)

	return graph
}

// Generate runs the chain for one product ID.
// An unknown product ID is not an error: the run completes with only
// ProductID set, the gate having routed the chain to its end.
func (g *Generator) Generate(ctx context.Context, productID string) (Copy, error) {
	if productID == "" {
		return Copy{}, errors.New("productcopy: product ID cannot be empty")
	}

	runCtx := stategraph.NewContext(ctx,
		stategraph.WithLogger(g.logger),
		stategraph.WithLLM(g.client))

	return g.graph.Run(runCtx, Copy{ProductID: productID})
}

// findProductDetails loads the product from the catalog. A missing product
// is not an error; the gate routes on the absence of a name.
func (g *Generator) findProductDetails(ctx stategraph.Context, state Copy) (Copy, error) {
	product, err := g.store.Lookup(ctx, state.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		ctx.Logger().Warn("product not found", "product_id", state.ProductID)
		return Copy{}, nil
	}
	if err != nil {
		return Copy{}, err
	}

	return Copy{
		Name:           product.Name,
		ImageURL:       product.ImageURL,
		Features:       product.Features,
		Category:       product.Category,
		Specifications: product.Specifications,
	}, nil
}

// gateProductFound routes past the generation chain when the lookup came up
// empty.
func (g *Generator) gateProductFound(_ stategraph.Context, state Copy) stategraph.Route {
	if state.Name == "" {
		return RouteEnd
	}
	return RouteAnalyzeImage
}

// extractImageFeatures describes the product image with a vision call.
func (g *Generator) extractImageFeatures(ctx stategraph.Context, state Copy) (Copy, error) {
	resp, err := ctx.LLM().Complete(ctx, llm.Request{
		User:        imageFeaturesPrompt,
		ImageURL:    state.ImageURL,
		Model:       g.model,
		Temperature: llm.Float(g.temperature),
	})
	if err != nil {
		return Copy{}, err
	}
	return Copy{ImageFeatures: strings.TrimSpace(resp.Content)}, nil
}

// textStep expands a prompt template and returns the completion text.
func (g *Generator) textStep(ctx stategraph.Context, tmpl string, state Copy, temperature float64) (string, error) {
	prompt, err := g.expander.Expand(tmpl, state.vars())
	if err != nil {
		return "", err
	}
	resp, err := ctx.LLM().Complete(ctx, llm.Request{
		User:        prompt,
		Model:       g.model,
		Temperature: llm.Float(temperature),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

func (g *Generator) generateDescription(ctx stategraph.Context, state Copy) (Copy, error) {
	text, err := g.textStep(ctx, descriptionPrompt, state, g.descTemp)
	if err != nil {
		return Copy{}, err
	}
	return Copy{Description: text}, nil
}

func (g *Generator) generateShortDescription(ctx stategraph.Context, state Copy) (Copy, error) {
	text, err := g.textStep(ctx, shortDescriptionPrompt, state, g.temperature)
	if err != nil {
		return Copy{}, err
	}
	return Copy{ShortDescription: text}, nil
}

func (g *Generator) generateSEOTitle(ctx stategraph.Context, state Copy) (Copy, error) {
	text, err := g.textStep(ctx, seoTitlePrompt, state, g.temperature)
	if err != nil {
		return Copy{}, err
	}
	return Copy{SEOTitle: text}, nil
}

func (g *Generator) generateSEODescription(ctx stategraph.Context, state Copy) (Copy, error) {
	text, err := g.textStep(ctx, seoDescriptionPrompt, state, g.temperature)
	if err != nil {
		return Copy{}, err
	}
	return Copy{SEODescription: text}, nil
}

// generateKeywords asks for a structured keyword list.
func (g *Generator) generateKeywords(ctx stategraph.Context, state Copy) (Copy, error) {
	prompt, err := g.expander.Expand(keywordsPrompt, state.vars())
	if err != nil {
		return Copy{}, err
	}
	resp, err := ctx.LLM().Complete(ctx, llm.Request{
		User:        prompt,
		Model:       g.model,
		Temperature: llm.Float(g.temperature),
		Schema:      keywordsSchema,
	})
	if err != nil {
		return Copy{}, err
	}
	var out keywordsOutput
	if err := resp.Decode(&out); err != nil {
		return Copy{}, err
	}
	return Copy{Keywords: out.Keywords}, nil
}
