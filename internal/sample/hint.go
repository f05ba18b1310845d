package sample

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HintAttr is the attribute github.com sets on the contribution calendar when
// a holiday theme is active. Its value is the upstream theme key and is
// trusted as-is here; the result builder defends against unknown keys.
const HintAttr = "data-holiday"

// StyleVar is one CSS custom property read from the page's style scope.
type StyleVar struct {
	Name  string
	Value string
}

// Hint is the explicit theme signal read from the hint attribute plus the
// style variables expected to accompany it.
type Hint struct {
	Key  string
	Vars []StyleVar
}

// hintVarNames builds the five expected custom property names for a theme
// key: the shared day background plus the four themed level variables.
func hintVarNames(key string) []string {
	names := []string{"--color-calendar-graph-day-bg"}
	for level := 1; level <= 4; level++ {
		names = append(names, fmt.Sprintf("--color-calendar-%s-graph-day-L%d-bg", key, level))
	}

	return names
}

// ReadHint looks for the holiday hint attribute and, when present, resolves
// the associated style variables from the page's <style> blocks. The variable
// values are returned even when empty; validation of the key is deliberately
// left to the caller.
func ReadHint(doc *goquery.Document) (Hint, bool) {
	sel := doc.Find("[" + HintAttr + "]").First()
	if sel.Length() == 0 {
		return Hint{}, false
	}

	key, _ := sel.Attr(HintAttr)
	key = strings.TrimSpace(key)
	if key == "" {
		return Hint{}, false
	}

	styles := collectStyleText(doc)

	hint := Hint{Key: key}
	for _, name := range hintVarNames(key) {
		hint.Vars = append(hint.Vars, StyleVar{Name: name, Value: styleVarValue(styles, name)})
	}

	return hint, true
}

func collectStyleText(doc *goquery.Document) string {
	var b strings.Builder

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		b.WriteString(sel.Text())
		b.WriteString("\n")
	})

	return b.String()
}

// styleVarValue finds the first declaration of a custom property in the
// collected style text and returns its raw value, or "" when undeclared.
func styleVarValue(styles, name string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(name) + `\s*:\s*([^;}]+)`)

	m := re.FindStringSubmatch(styles)
	if m == nil {
		return ""
	}

	return strings.TrimSpace(m[1])
}
