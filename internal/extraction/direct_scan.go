package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/chalinh/jobmatch/internal/postprocess"
	"github.com/chalinh/jobmatch/internal/refdata"
)

var (
	parenList = regexp.MustCompile(`\(([^)]{5,200})\)`)
	usePhrase = regexp.MustCompile(
		`(?:able to use|proficiency in|proficient in|knowledge of|experience with|experience in|using|use)\s+` +
			`([a-z0-9][a-z0-9\s,&+#./-]{3,99})(?:[.;]|$)`)
	bulletItem   = regexp.MustCompile(`(?m)^[\s]*[-*•]\s*([a-z0-9][a-z0-9\s+#./-]{1,39})\s*$`)
	versionedUse = regexp.MustCompile(`\b([a-z]+)\s+(?:\d+|365|office|suite)\b`)
	listSplit    = regexp.MustCompile(`[,;&]`)
	andSplit     = regexp.MustCompile(`\s+and\s+`)
)

// DirectScanner sweeps four high-signal syntactic shapes: parenthesized
// lists, "use"/"proficiency in" phrases, bullet lines, and product names
// followed by a version qualifier. Every candidate must be an exact
// vocabulary member, which keeps this strategy second only to the known
// term matcher in precision.
type DirectScanner struct {
	store *refdata.Store
}

func NewDirectScanner(store *refdata.Store) *DirectScanner {
	return &DirectScanner{store: store}
}

func (d *DirectScanner) Name() string { return StrategyDirectScan }

func (d *DirectScanner) Extract(_ context.Context, text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	found := make(map[string]struct{})

	for _, m := range parenList.FindAllStringSubmatch(lower, -1) {
		for _, part := range listSplit.Split(m[1], -1) {
			d.keep(found, part)
		}
	}

	for _, m := range usePhrase.FindAllStringSubmatch(lower, -1) {
		for _, part := range listSplit.Split(m[1], -1) {
			for _, sub := range andSplit.Split(part, -1) {
				if len(strings.TrimSpace(sub)) > 2 {
					d.keep(found, sub)
				}
			}
		}
	}

	for _, m := range bulletItem.FindAllStringSubmatch(lower, -1) {
		d.keep(found, m[1])
	}

	for _, m := range versionedUse.FindAllStringSubmatch(lower, -1) {
		d.keep(found, m[1])
	}

	return sortedSet(found)
}

func (d *DirectScanner) keep(found map[string]struct{}, candidate string) {
	candidate = postprocess.CleanSkill(strings.TrimSpace(candidate))
	if candidate == "" {
		return
	}
	if d.store.HasSkill(candidate) {
		found[candidate] = struct{}{}
	}
}
