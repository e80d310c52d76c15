package transformer

import (
	"regexp"
	"strconv"
	"strings"
)

// Free-text heuristics. Each extractor is best-effort with an explicit
// no-match result; none of them are embedded in the main transform
// control flow.

// materialCostPatterns are tried in order; the first match wins. Digit
// groups may contain thousands commas.
var materialCostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)worth at least ([\d,]+)\s*gp`),
	regexp.MustCompile(`(?i)costing ([\d,]+)\s*gp`),
	regexp.MustCompile(`(?i)cost of ([\d,]+)\s*gp`),
	regexp.MustCompile(`(?i)cost ([\d,]+)\s*gp`),
	regexp.MustCompile(`(?i)([\d,]+)\s*gp`),
}

// ExtractMaterialCost scans a material-component description for a coin
// cost. No match yields zero.
func ExtractMaterialCost(text string) int {
	for _, pattern := range materialCostPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		digits := strings.ReplaceAll(match[1], ",", "")
		cost, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		return cost
	}
	return 0
}

// scalingPatterns are tried in order against higher-level casting text;
// the first match wins.
var scalingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)increases? by (\d+d\d+)`),
	regexp.MustCompile(`(?i)additional (\d+d\d+)`),
	regexp.MustCompile(`(?i)extra (\d+d\d+)`),
	regexp.MustCompile(`(?i)(\d+d\d+) additional`),
}

// ExtractScalingFormula scans higher-level casting text for a
// dice-increase formula. The second return is false when no dice
// pattern is present.
func ExtractScalingFormula(text string) (string, bool) {
	for _, pattern := range scalingPatterns {
		match := pattern.FindStringSubmatch(text)
		if match != nil {
			return strings.ToLower(match[1]), true
		}
	}
	return "", false
}

// languagePattern matches the standard "You can speak, read, and write
// Common and Elvish." phrasing used by racial traits and backgrounds.
var languagePattern = regexp.MustCompile(`(?i)speak, read, and write ([A-Za-z', ]+)`)

// languageSplitPattern separates the captured language list, absorbing
// the "and" after an Oxford comma.
var languageSplitPattern = regexp.MustCompile(`,\s*(?:and\s+)?|\s+and\s+`)

// ScanLanguages extracts language names from free text. No match yields
// an empty slice.
func ScanLanguages(text string) []string {
	match := languagePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	var languages []string
	for _, part := range languageSplitPattern.Split(match[1], -1) {
		name := strings.TrimSpace(part)
		if name == "" || strings.EqualFold(name, "one other language of your choice") {
			continue
		}
		languages = append(languages, name)
	}
	return languages
}
