package match

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateSnippet returns Go source demonstrating the equivalent search
// with the regexp2 engine: a first-match lookup when Global is unset, an
// enumerate-all loop when it is set. The snippet is display text only;
// nothing is executed.
func GenerateSnippet(pattern string, flags FlagSet) string {
	var sb strings.Builder

	sb.WriteString("re, err := regexp2.Compile(")
	sb.WriteString(patternLiteral(pattern))
	sb.WriteString(", ")
	sb.WriteString(optionsExpr(flags))
	sb.WriteString(")\n")
	sb.WriteString("if err != nil {\n")
	sb.WriteString("\tlog.Fatal(err)\n")
	sb.WriteString("}\n")

	if flags.Global {
		sb.WriteString("m, err := re.FindStringMatch(content)\n")
		sb.WriteString("for m != nil && err == nil {\n")
		sb.WriteString("\tfmt.Printf(\"match %d-%d: %s\\n\", m.Index, m.Index+m.Length, m.String())\n")
		sb.WriteString("\tm, err = re.FindNextMatch(m)\n")
		sb.WriteString("}\n")
	} else {
		sb.WriteString("m, err := re.FindStringMatch(content)\n")
		sb.WriteString("if err == nil && m != nil {\n")
		sb.WriteString("\tfmt.Printf(\"match %d-%d: %s\\n\", m.Index, m.Index+m.Length, m.String())\n")
		sb.WriteString("}\n")
	}

	return sb.String()
}

// optionsExpr renders the flag set as engine option constants joined by
// |, or regexp2.None when no engine flag applies.
func optionsExpr(flags FlagSet) string {
	var parts []string
	if flags.IgnoreCase {
		parts = append(parts, "regexp2.IgnoreCase")
	}
	if flags.Multiline {
		parts = append(parts, "regexp2.Multiline")
	}
	if flags.DotAll {
		parts = append(parts, "regexp2.Singleline")
	}
	if len(parts) == 0 {
		return "regexp2.None"
	}
	return strings.Join(parts, " | ")
}

// patternLiteral renders the pattern as a raw string literal when
// possible, falling back to a quoted literal for patterns containing
// backquotes.
func patternLiteral(pattern string) string {
	if !strings.ContainsRune(pattern, '`') {
		return fmt.Sprintf("`%s`", pattern)
	}
	return strconv.Quote(pattern)
}
