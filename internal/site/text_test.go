package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n ", nil},
		{"single", "One paragraph.", []string{"One paragraph."}},
		{"literal escape", `First.\n\nSecond.`, []string{"First.", "Second."}},
		{"multiple blank lines", "a\n\n\n\nb", []string{"a", "b"}},
		{"trims per paragraph", "  a  \n\n  b  ", []string{"a", "b"}},
		{"drops empty chunk", "a\n\n   \n\nb", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SplitParagraphs(c.in))
		})
	}
}

func TestSplitParagraphsIdempotent(t *testing.T) {
	in := `Alpha line.\n\nBeta   line.\n\n\nGamma.`
	first := SplitParagraphs(in)
	rejoined := strings.Join(first, "\n\n")
	assert.Equal(t, first, SplitParagraphs(rejoined))
}

func TestSplitBullets(t *testing.T) {
	assert.Nil(t, SplitBullets(""))
	assert.Equal(t, []string{"a", "b"}, SplitBullets(" a | b "))
	assert.Equal(t, []string{"only"}, SplitBullets("only"))
	assert.Equal(t, []string{"x"}, SplitBullets("| x ||"))
}

func TestNormalizeLayoutVariant(t *testing.T) {
	assert.Equal(t, LayoutStandard, NormalizeLayoutVariant(""))
	assert.Equal(t, LayoutStandard, NormalizeLayoutVariant("cards"))
	assert.Equal(t, LayoutLinkhub, NormalizeLayoutVariant(" Linkhub "))
	assert.Equal(t, LayoutProfile, NormalizeLayoutVariant("profile"))
}

func TestNewsletterIsLocal(t *testing.T) {
	local := &Config{NewsletterMode: "local"}
	assert.True(t, local.NewsletterIsLocal())

	providerNoURL := &Config{NewsletterMode: "provider"}
	assert.True(t, providerNoURL.NewsletterIsLocal())

	provider := &Config{NewsletterMode: "provider", NewsletterProviderURL: "https://list.example.org/subscribe"}
	assert.False(t, provider.NewsletterIsLocal())
}
