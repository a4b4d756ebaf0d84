package classifier

import "context"

// Region is one of the three facial zones photographed per upload. Uploads are
// always processed in the order returned by Regions.
type Region string

const (
	RegionLeft   Region = "left"
	RegionMiddle Region = "middle"
	RegionRight  Region = "right"
)

// Regions returns the fixed processing order of the facial zones.
func Regions() []Region {
	return []Region{RegionLeft, RegionMiddle, RegionRight}
}

// Sentinels substituted when no real classification is available.
const (
	SeverityModelNotLoaded = "AI model not loaded"
	ConfidenceNA           = "N/A"
)

// severityGrades maps the model's class index to a human-readable grade.
var severityGrades = map[int32]string{
	0: "Grade I: Mild acne with comedones.",
	1: "Grade II: Moderate acne with papules.",
	2: "Grade III: Severe acne with pustules.",
	3: "Grade IV: Very severe acne with nodules.",
}

// GradeLabel translates a predicted class index into its severity grade.
func GradeLabel(class int32) string {
	if label, ok := severityGrades[class]; ok {
		return label
	}
	return "Unknown Severity"
}

// Result contains the outcome of classifying a single region image.
type Result struct {
	Severity   string
	Confidence float64
}

// Client exposes the subset of the classifier service used by the upload flow.
type Client interface {
	Classify(ctx context.Context, userID string, region Region, imageBytes []byte) (*Result, error)
}
