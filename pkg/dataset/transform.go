package dataset

import (
	"regexp"
	"strings"
)

// codePattern matches a bare snake_case error code line in a raw docs dump.
var codePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$`)

// TransformRaw parses a raw scraped error listing (alternating code and
// description lines) into classified records. Lines that look like codes
// start a new record; everything until the next code is its description.
// Records without a description are skipped.
func TransformRaw(raw string, date string) []ErrorRecord {
	var records []ErrorRecord
	var code, description string

	flush := func() {
		if code == "" || description == "" {
			return
		}
		records = append(records, classifiedRecord(code, description, date))
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if codePattern.MatchString(line) && !strings.Contains(line, " ") {
			flush()
			code = line
			description = ""
			continue
		}
		if code != "" {
			if description != "" {
				description += " "
			}
			description += line
		}
	}
	flush()

	return records
}

// classifiedRecord builds a record for a scraped code/description pair using
// the rule classifiers only; there is no curated solution for these.
func classifiedRecord(code, description, date string) ErrorRecord {
	category := Categorize(code)
	return NormalizeAt(ErrorRecord{
		API:                 APIStripe,
		Resource:            "stripe_api",
		Method:              "POST",
		ErrorCode:           code,
		ErrorMessage:        description,
		SolutionTitle:       "Stripe " + code + " error",
		SolutionDescription: DefaultSolution(category),
		Severity:            InferSeverity(code, description),
		Category:            category,
		Frequency:           EstimateFrequency(code),
		Tags:                DeriveTags(code, category),
	}, date)
}
