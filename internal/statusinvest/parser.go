package statusinvest

import (
	"strings"

	"golang.org/x/net/html"
)

// Page indicator titles as rendered by Status Invest. Each field has its own
// locator; a locator that finds nothing simply leaves its field out of the
// patch.
const (
	titlePriceToBook   = "Preço/Valor patrimonial"
	titleDividendYield = "Dividend Yield com base nos últimos 12 meses"
	titleVacancy       = "Vacância"
	titleLiquidity     = "Liquidez"
	titleManagementFee = "Taxa de Administração"
)

// ParseDocument extracts the scrapeable attribute fields from a fund page.
// One field's parse failure never invalidates the others.
func ParseDocument(doc *html.Node) Patch {
	var patch Patch

	patch.PriceToBook = indicatorValue(doc, titlePriceToBook)
	patch.DividendYieldPct = indicatorValue(doc, titleDividendYield)
	patch.VacancyPct = indicatorValue(doc, titleVacancy)
	patch.ManagementFeePct = indicatorValue(doc, titleManagementFee)

	// Liquidity is published in reais; the dataset stores thousands.
	if liquidity := indicatorValue(doc, titleLiquidity); liquidity != nil {
		thousands := *liquidity / 1000
		patch.DailyLiquidityThousands = &thousands
	}

	return patch
}

// indicatorValue locates div[title=…] and parses the text of its first
// <strong> descendant. Returns nil when the element is missing or the text
// is not a Brazilian-formatted number.
func indicatorValue(doc *html.Node, title string) *float64 {
	container := findDivByTitle(doc, title)
	if container == nil {
		return nil
	}

	strong := findElement(container, "strong")
	if strong == nil {
		return nil
	}

	value, ok := ParseBrazilianNumber(nodeText(strong))
	if !ok {
		return nil
	}
	return &value
}

func findDivByTitle(n *html.Node, title string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" {
		for _, attr := range n.Attr {
			if attr.Key == "title" && attr.Val == title {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findDivByTitle(child, title); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return sb.String()
}
