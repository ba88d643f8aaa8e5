package script

import (
	"fmt"
	"strings"

	"podscript/pkg/domain"
)

const banner = "============================================================"

// assemble concatenates all sections into the final ordered script
// document: header, intro, main content interleaved with transitions,
// outro and a rendered show-notes section.
func (g *Generator) assemble(doc *domain.ScriptDocument) string {
	var parts []string

	parts = append(parts,
		banner,
		fmt.Sprintf("PODCAST SCRIPT: %s", g.show.ShowName),
		fmt.Sprintf("Generated on: %s", g.now().Format("2006-01-02 15:04")),
		banner,
		"",
	)

	parts = append(parts, "### INTRO ###", doc.Intro.Script, "")

	parts = append(parts, "### MAIN CONTENT ###")
	for i, block := range doc.MainContent {
		parts = append(parts,
			fmt.Sprintf("--- Segment %d (%s) ---", block.SegmentID, strings.ToUpper(string(block.Type))),
			block.Script,
		)

		if len(block.ProductionNotes) > 0 {
			parts = append(parts, "", "PRODUCTION NOTES:")
			for _, note := range block.ProductionNotes {
				parts = append(parts, "- "+note)
			}
		}
		parts = append(parts, "")

		// Transitions sit between segments, never after the last.
		if i < len(doc.Transitions) {
			parts = append(parts, "--- TRANSITION ---", doc.Transitions[i].Script, "")
		}
	}

	parts = append(parts, "### OUTRO ###", doc.Outro.Script, "")

	parts = append(parts, "### SHOW NOTES ###")
	parts = append(parts, "**Episode Summary:**", doc.ShowNotes.EpisodeSummary, "")

	parts = append(parts, "**Key Points:**")
	for _, point := range doc.ShowNotes.KeyPoints {
		parts = append(parts, "- "+point)
	}
	parts = append(parts, "")

	parts = append(parts, "**Timestamps:**")
	for _, ts := range doc.ShowNotes.Timestamps {
		parts = append(parts, fmt.Sprintf("%s - %s", ts.Time, ts.Topic))
	}
	parts = append(parts, "")

	return strings.Join(parts, "\n")
}
