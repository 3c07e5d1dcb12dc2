package htmldoc

import (
	"context"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"huestat/domain/colors"
	apperrors "huestat/internal/errors"
)

// textSelector matches the element types color words appear in: table cells,
// list items, paragraphs and generic containers.
const textSelector = "td, li, p, span, div"

// Extractor reads one HTML document and yields its normalized color tokens.
// It implements ports.DocumentSource.
type Extractor struct {
	path string
}

// NewExtractor creates an extractor for the document at path.
func NewExtractor(path string) *Extractor {
	return &Extractor{path: path}
}

// ExtractTokens parses the document at the configured path.
func (e *Extractor) ExtractTokens(ctx context.Context) ([]colors.Token, error) {
	f, err := os.Open(e.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.DocumentNotFound(e.path)
		}
		return nil, apperrors.Wrapf(err, "failed to open document %s", e.path)
	}
	defer f.Close()

	tokens, err := ExtractFromReader(f)
	if err != nil {
		return nil, apperrors.ParseFailure(e.path, err)
	}
	return tokens, nil
}

// ExtractFromReader tokenizes already-opened markup content. A document with
// no matching elements yields an empty sequence and no error.
func ExtractFromReader(r io.Reader) ([]colors.Token, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var tokens []colors.Token
	doc.Find(textSelector).Each(func(_ int, s *goquery.Selection) {
		block := strings.TrimSpace(spacedText(s))
		if block == "" {
			return
		}
		tokens = append(tokens, tokenize(block)...)
	})
	return tokens, nil
}

// spacedText concatenates the selection's text nodes with single spaces, so
// words in adjacent child elements do not fuse into one fragment.
func spacedText(s *goquery.Selection) string {
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// tokenize splits a text block on line breaks and commas, then whitespace,
// uppercases each fragment and keeps those containing at least one letter.
func tokenize(block string) []colors.Token {
	block = strings.ReplaceAll(block, "\n", " ")

	var out []colors.Token
	for _, part := range strings.Split(block, ",") {
		for _, field := range strings.Fields(part) {
			token := strings.ToUpper(strings.TrimSpace(field))
			if token == "" || !hasLetter(token) {
				continue
			}
			out = append(out, colors.Token(token))
		}
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
