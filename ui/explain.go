package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Explanatory text shown beside each visualization, authored as markdown
// and rendered to HTML once at startup.
var explanationSources = map[string]string{
	"summary": `The pie chart gives a proportional overview of case categories:
*Confirmed*, *Recovered*, *Deaths* and *Active*. The bar graph presents the
absolute count of each case type, emphasizing how far confirmed and
recovered cases outnumber deaths.`,

	"regions": `The grouped bar chart compares confirmed, recovered and death
counts across WHO regions, highlighting regional variation in healthcare
capacity and outcomes. The regional pie shows each region's share of global
confirmed cases.`,

	"rates": `*Deaths / 100 Cases* reflects the mortality rate while
*Recovered / 100 Cases* reveals recovery effectiveness. Higher recovery
rates may point to efficient healthcare management; elevated death rates may
indicate overwhelmed systems.`,

	"top": `The top-N ranking identifies which countries were most severely
impacted by the selected metric, supporting international comparison of
spread patterns and policy responses.`,

	"distribution": `Box summaries show variability and outliers across WHO
regions for each case type. Regions with wide interquartile ranges or
extreme points show uneven case distribution, indicating uneven reporting or
concentrated outbreaks.`,

	"correlation": `The correlation heatmap shows pairwise relationships among
numeric features. High positive correlation means one metric rises with
another, such as confirmed and recovered cases; weak correlations suggest
limited dependency.`,
}

// renderExplanations converts every markdown block to HTML once at server
// construction; handlers read the result concurrently.
func renderExplanations() map[string]template.HTML {
	out := make(map[string]template.HTML, len(explanationSources))
	for key, src := range explanationSources {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
		out[key] = template.HTML(markdown.ToHTML([]byte(src), p, renderer))
	}
	return out
}
