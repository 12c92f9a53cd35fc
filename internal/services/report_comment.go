package services

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/report-service/internal/models"
)

const (
	attendanceExcellentThreshold = 95.0
	attendanceAdequateThreshold  = 85.0
	scoreChangeThreshold         = 5.0
	overallExcellentThreshold    = 90.0
	overallGoodThreshold         = 80.0

	// A drop of exactly 5.5 points is not called out as declining.
	decliningExemptChange = -5.5
)

const (
	commentAttendanceExcellent = "이번 기간 출석률이 매우 우수합니다. 성실한 학습 태도를 칭찬합니다."
	commentAttendanceAdequate  = "출석 상태가 양호합니다. 꾸준히 유지할 수 있도록 격려 부탁드립니다."
	commentAttendanceLow       = "출석률이 다소 낮습니다. 규칙적인 등원을 위해 가정에서도 관심 부탁드립니다."
	commentImprovingFormat     = "%s 영역에서 지난 기간보다 성적이 크게 향상되었습니다."
	commentDecliningFormat     = "%s 영역은 지난 기간보다 성적이 하락하여 보충 학습이 필요합니다."
	commentOverallExcellent    = "전체 평균이 매우 우수하며 현재의 학습 흐름을 잘 유지하고 있습니다."
	commentOverallGood         = "전체적으로 좋은 성취를 보이고 있으며 조금 더 노력하면 더 높은 성과가 기대됩니다."
	commentOverallLow          = "전반적인 성적 향상을 위해 복습과 추가 학습이 필요합니다."
)

// SynthesizeComment builds the instructor comment from fixed sentences picked
// by threshold. The attendance and overall sentences are always present.
// With no scores the overall average is 0, so the lowest band applies.
func SynthesizeComment(attendanceRate float64, scores []models.CategoryScore) string {
	sentences := make([]string, 0, 4)

	switch {
	case attendanceRate >= attendanceExcellentThreshold:
		sentences = append(sentences, commentAttendanceExcellent)
	case attendanceRate >= attendanceAdequateThreshold:
		sentences = append(sentences, commentAttendanceAdequate)
	default:
		sentences = append(sentences, commentAttendanceLow)
	}

	var improving, declining []string
	currents := make([]float64, 0, len(scores))
	for _, s := range scores {
		currents = append(currents, s.Current)
		if s.Change == nil {
			continue
		}
		if *s.Change > scoreChangeThreshold {
			improving = append(improving, s.Category)
		} else if *s.Change < -scoreChangeThreshold && *s.Change != decliningExemptChange {
			declining = append(declining, s.Category)
		}
	}
	if len(improving) > 0 {
		sentences = append(sentences, fmt.Sprintf(commentImprovingFormat, strings.Join(improving, ", ")))
	}
	if len(declining) > 0 {
		sentences = append(sentences, fmt.Sprintf(commentDecliningFormat, strings.Join(declining, ", ")))
	}

	switch avg := mean(currents); {
	case avg >= overallExcellentThreshold:
		sentences = append(sentences, commentOverallExcellent)
	case avg >= overallGoodThreshold:
		sentences = append(sentences, commentOverallGood)
	default:
		sentences = append(sentences, commentOverallLow)
	}

	return strings.Join(sentences, " ")
}

