package advisor

import (
	"context"

	"github.com/etnz/pms"
	"github.com/etnz/pms/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// PortfolioFunctions returns the functions giving a model read access to p,
// amounts formatted in cur.
func PortfolioFunctions(p *pms.Portfolio, cur string) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Holdings",
				Description: "Holdings lists every investment of the user's portfolio, with its kind, base amount, reference price, kind specific detail and current value, followed by the portfolio total value.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the holdings, and the total value.",
				},
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				return outputResponse(id, "Holdings", renderer.RenderHoldings(renderer.NewHoldings(p, cur)))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Diversification",
				Description: "Diversification breaks down the user's portfolio value by asset class (stock, bond, mutual fund, cryptocurrency) and gives the diversification ratio: 1 for a portfolio concentrated on a single class, 0.5 when evenly spread over the four.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the value and share of each asset class.",
				},
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				d, err := renderer.NewDiversification(p, cur)
				if err != nil {
					return errorResponse(id, "Diversification", err.Error())
				}
				return outputResponse(id, "Diversification", renderer.RenderDiversification(d))
			},
		},
	}
}

// NewPortfolioExpert returns an expert answering questions about p.
func NewPortfolioExpert(p *pms.Portfolio, cur, model string) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := PortfolioFunctions(p, cur)
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial advisor reviewing the user's investment portfolio.
				Use the Tools to read the holdings and the diversification of the portfolio
				before answering, never guess figures.
				A mutual fund is valued at its amount, its NAV is informative only.
				A bond is valued at its amount plus one year of interest.
				Answer in markdown, be concise.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}
