package scan

import (
	"regexp"
	"strconv"
	"strings"
)

var amountRe = regexp.MustCompile(`(?:\$|€|£)?\s*([0-9]+(?:[.,][0-9]{1,2})?)`)

// ExtractAmount pulls the most plausible payable total out of OCR-ish
// text. Lines mentioning a total take priority; otherwise the largest
// amount on the receipt wins. Returns ErrNoAmount when nothing positive
// is found.
func ExtractAmount(text string) (float64, error) {
	lines := strings.Split(text, "\n")

	var totalLines []string
	for _, l := range lines {
		ll := strings.ToLower(l)
		if strings.Contains(ll, "total") || strings.Contains(ll, "amount due") {
			totalLines = append(totalLines, l)
		}
	}
	if v := largestAmount(totalLines); v > 0 {
		return v, nil
	}
	if v := largestAmount(lines); v > 0 {
		return v, nil
	}
	return 0, ErrNoAmount
}

func largestAmount(lines []string) float64 {
	var best float64
	for _, l := range lines {
		for _, m := range amountRe.FindAllStringSubmatch(l, -1) {
			raw := strings.ReplaceAll(m[1], ",", ".")
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			if v > best {
				best = v
			}
		}
	}
	return best
}
