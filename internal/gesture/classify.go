// Package gesture turns per-frame feature sets into stabilized symbols,
// accumulated sequences, and vocabulary matches.
package gesture

import "github.com/ayusman/mudra/internal/detector"

// Distinguished display labels.
const (
	// LabelNone is reported when no hand is in the frame.
	LabelNone = "none"
	// LabelUnknown is the display label for features the decision table
	// cannot place. It is never forwarded to the sequence accumulator.
	LabelUnknown = "?"
	// LabelILoveYou is the two-handed-equivalent phrase sign. Display only,
	// never forwarded to the sequence accumulator.
	LabelILoveYou = "I LOVE YOU"
)

// Gesture is a per-frame classification: a symbol label and a confidence.
// Confidence is a fixed per-rule weight in [0.5, 0.9], not a measured
// probability.
type Gesture struct {
	Label      string
	Confidence float64
}

// Classify maps a feature set to a symbol via a fixed decision table keyed
// on the estimated finger count and refined by the bounding-box shape. The
// table's thresholds are tuning constants carried over as-is, not derived
// sign-language rules.
func Classify(f *detector.FeatureSet) Gesture {
	if f == nil {
		return Gesture{Label: LabelNone}
	}
	if f.AspectRatio == detector.AspectRatioUndefined {
		return Gesture{Label: LabelUnknown, Confidence: 0.5}
	}

	switch f.FingerCount {
	case 1:
		if f.AspectRatio < 0.8 {
			return Gesture{Label: "A", Confidence: 0.8}
		}
		return Gesture{Label: "D", Confidence: 0.7}
	case 2:
		switch {
		case f.AspectRatio > 1.2:
			return Gesture{Label: "L", Confidence: 0.8}
		case f.AspectRatio < 0.9:
			return Gesture{Label: "K", Confidence: 0.6}
		default:
			return Gesture{Label: "V", Confidence: 0.7}
		}
	case 3:
		return Gesture{Label: "W", Confidence: 0.8}
	case 4:
		return Gesture{Label: "B", Confidence: 0.85}
	case 5:
		if float64(f.Width) > 1.2*float64(f.Height) {
			return Gesture{Label: "Y", Confidence: 0.75}
		}
		return Gesture{Label: LabelILoveYou, Confidence: 0.9}
	}
	return Gesture{Label: LabelUnknown, Confidence: 0.5}
}
