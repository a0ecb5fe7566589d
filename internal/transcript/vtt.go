package transcript

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Локальные .vtt файлы субтитров как альтернативный источник сегментов:
// уже скачанные субтитры индексируются без похода в сеть.

var (
	vttTimeRe = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s+-->\s+(\d{2}):(\d{2}):(\d{2})\.(\d{3})`)
	vttTagRe  = regexp.MustCompile(`<[^>]*>`)
)

// ParseVTTFile parses a WebVTT subtitle file into timed segments.
func ParseVTTFile(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseVTT(file)
}

// ParseVTT разбирает WebVTT: строка с таймкодом "HH:MM:SS.mmm --> HH:MM:SS.mmm",
// за ней строки текста до пустой строки.
func ParseVTT(r io.Reader) ([]Segment, error) {
	var segments []Segment
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		m := vttTimeRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		start := vttSeconds(m[1], m[2], m[3], m[4])
		end := vttSeconds(m[5], m[6], m[7], m[8])

		var textLines []string
		for scanner.Scan() {
			textLine := strings.TrimSpace(scanner.Text())
			if textLine == "" {
				break
			}
			// Убираем инлайновые VTT теги (<c>, <00:00:01.500> и т.п.)
			cleanText := strings.TrimSpace(vttTagRe.ReplaceAllString(textLine, ""))
			if cleanText != "" {
				textLines = append(textLines, cleanText)
			}
		}

		if len(textLines) > 0 {
			segments = append(segments, Segment{
				Text:     strings.Join(textLines, " "),
				Start:    start,
				Duration: end - start,
			})
		}
	}

	return segments, scanner.Err()
}

func vttSeconds(hh, mm, ss, ms string) float64 {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	s, _ := strconv.Atoi(ss)
	f, _ := strconv.Atoi(ms)
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(f)/1000
}
