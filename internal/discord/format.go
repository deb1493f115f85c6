package discord

import (
	"fmt"
	"strings"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/format"
)

// FormatROI renders the return on investment, or n/a when planting is free
func FormatROI(d *FarmDetail) string {
	if !d.ROIDefined {
		return format.NotApplicable
	}
	return format.ROI(d.ROI)
}

// formatRankingLine renders one list entry of the /farms command
func formatRankingLine(rc domain.RankedCrop) string {
	line := fmt.Sprintf("**%d. %s** · %s/h · %s XP/h",
		rc.Position, rc.Crop.Name, format.Profit(rc.Stats.ProfitPerHour), format.XP(rc.Stats.XPPerHour))
	if !rc.Eligible {
		line = "~~" + line + "~~ " + formatBlockers(rc)
	}
	return line
}

func formatBlockers(rc domain.RankedCrop) string {
	reasons := make([]string, 0, len(rc.Blockers))
	for _, b := range rc.Blockers {
		switch b {
		case domain.ReasonLevel:
			reasons = append(reasons, fmt.Sprintf("needs level %d", rc.Crop.LevelRequirement))
		case domain.ReasonEffort:
			reasons = append(reasons, fmt.Sprintf("needs %s effort", format.XP(rc.Stats.EffortRequired)))
		default:
			reasons = append(reasons, b)
		}
	}
	return "(" + strings.Join(reasons, ", ") + ")"
}

// formatRanking renders up to limit entries, optionally hiding ineligible crops
func formatRanking(ranked []domain.RankedCrop, limit int, eligibleOnly bool) string {
	var sb strings.Builder
	shown := 0
	for _, rc := range ranked {
		if shown >= limit {
			break
		}
		if eligibleOnly && !rc.Eligible {
			continue
		}
		sb.WriteString(formatRankingLine(rc))
		sb.WriteString("\n")
		shown++
	}
	if shown == 0 {
		return MsgNoEligibleCrops
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
