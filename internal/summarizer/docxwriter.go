package summarizer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 18
	partSize  = 15
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// Digest is the content of a summary document: one part per summarized chunk.
type Digest struct {
	Title   string
	Model   string
	Elapsed time.Duration
	Parts   []string
}

// Subtitle describes how the digest was produced.
func (d Digest) Subtitle() string {
	return fmt.Sprintf("Transcribed with %s in %.2f minutes, %d part(s)", d.Model, d.Elapsed.Minutes(), len(d.Parts))
}

// WriteDocx renders d as a Word document at outputPath. Each part gets a
// "Part N" heading; markdown headings, bullets and **bold** inside a part
// are kept as formatting.
func WriteDocx(d Digest, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), d.Title, true, titleSize)
	addRun(doc.AddParagraph(""), d.Subtitle(), false, fontSize)

	for i, part := range d.Parts {
		addRun(doc.AddParagraph(""), fmt.Sprintf("Part %d", i+1), true, partSize)
		for _, line := range partLines(part) {
			writeLine(doc, line)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// partLines drops blank lines and horizontal rules.
func partLines(part string) []string {
	var lines []string
	for _, line := range strings.Split(part, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

func writeLine(doc *docx.RootDoc, line string) {
	if m := reHeading.FindStringSubmatch(line); m != nil {
		addRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
		return
	}
	if m := reBullet.FindStringSubmatch(line); m != nil {
		line = "• " + m[1]
	}
	addRichText(doc.AddParagraph(""), line)
}

// headingSize keeps markdown headings below the "Part N" heading.
func headingSize(level int) uint64 {
	if level <= 1 {
		return 14
	}
	return fontSize
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripMarkers(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText turns each **bold** span into its own bold run.
func addRichText(p *docx.Paragraph, text string) {
	plain := reBold.Split(text, -1)
	bold := reBold.FindAllStringSubmatch(text, -1)

	for i, s := range plain {
		if s != "" {
			addRun(p, s, false, fontSize)
		}
		if i < len(bold) {
			addRun(p, bold[i][1], true, fontSize)
		}
	}
}

func stripMarkers(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
