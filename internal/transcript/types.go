package transcript

import "strings"

// Segment - одна реплика субтитров с таймингом
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// FetchResult - результат загрузки транскрипта
type FetchResult struct {
	Success    bool
	Transcript string
	Segments   []Segment
	Error      string
}

// JoinText склеивает тексты сегментов через пробел
func JoinText(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(seg.Text)
	}
	return sb.String()
}
