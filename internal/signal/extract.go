package signal

import (
	"strings"

	"SignalDesk/internal/domain/models"
)

// Label tokens used by the channel's alert format.
const (
	labelTrigger   = "信號觸發價"
	labelStop      = "策略失效價"
	labelDate      = "日期"
	labelRemark    = "備注"
	labelRemarkAlt = "備註"
)

// lineRule classifies one trimmed, non-blank message line. Rules are NOT
// mutually exclusive: every rule is applied to every line, so a single line
// may populate several fields (e.g. a venue ticker line that also carries the
// stop-loss label). For venue lines, a later match overwrites an earlier one
// (last line wins).
type lineRule func(line string, f *models.ExtractedFields)

var lineRules = []lineRule{
	applyVenueRule,
	applyDateRule,
	applyStopLossRule,
	applyRemarkRule,
}

func applyVenueRule(line string, f *models.ExtractedFields) {
	for _, v := range models.Venues {
		if strings.Contains(line, string(v)) && strings.Contains(line, ":") {
			_, after, _ := strings.Cut(line, ":")
			f.Venues[v] = strings.TrimSpace(after)
		}
	}
}

func applyDateRule(line string, f *models.ExtractedFields) {
	if !strings.Contains(line, labelDate) || !strings.Contains(line, "=") {
		return
	}
	_, after, found := strings.Cut(line, "=")
	if !found {
		f.DateText = line
		return
	}
	f.DateText = strings.TrimSpace(after)
}

func applyStopLossRule(line string, f *models.ExtractedFields) {
	if strings.Contains(line, labelStop) {
		f.StopLoss = line
	}
}

func applyRemarkRule(line string, f *models.ExtractedFields) {
	if strings.Contains(line, labelRemark) || strings.Contains(line, labelRemarkAlt) {
		f.Remark = line
	}
}

// ExtractFields parses one raw message text into its flat field record.
// Unmatched lines are ignored; absent fields stay empty strings. Never
// returns an error.
func ExtractFields(text string) models.ExtractedFields {
	fields := models.NewExtractedFields(text)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, rule := range lineRules {
			rule(line, &fields)
		}
	}
	return fields
}
