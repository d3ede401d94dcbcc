package detector

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	features *FeatureSet
	err      error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFeatures sets the feature set that will be returned by Detect.
// Passing nil simulates "no hand in frame".
func (m *MockDetector) SetFeatures(f *FeatureSet) {
	m.features = f
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured features or error.
func (m *MockDetector) Detect(frame *Frame) (*FeatureSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.features, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenPalmFeatures returns a preset FeatureSet for an open palm: five
// extended fingers on a hand wider than it is tall.
func OpenPalmFeatures() *FeatureSet {
	return &FeatureSet{
		CentroidX:   160,
		CentroidY:   120,
		Left:        80,
		Right:       240,
		Top:         70,
		Bottom:      180,
		Width:       160,
		Height:      110,
		AspectRatio: 160.0 / 110.0,
		FingerCount: 5,
	}
}

// PointingFeatures returns a preset FeatureSet for a single extended finger
// on a tall, narrow hand.
func PointingFeatures() *FeatureSet {
	return &FeatureSet{
		CentroidX:   160,
		CentroidY:   130,
		Left:        130,
		Right:       190,
		Top:         40,
		Bottom:      200,
		Width:       60,
		Height:      160,
		AspectRatio: 60.0 / 160.0,
		FingerCount: 1,
	}
}
