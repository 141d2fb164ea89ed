package difficulty

// Thresholds holds the tuning constants of the difficulty heuristics.
// The defaults are empirically chosen and kept for behavioural
// compatibility; they are configuration, not derived values.
type Thresholds struct {
	// Session-start recommendation.
	ColdStartSessions         int     `mapstructure:"cold_start_sessions"`
	HistoryWindow             int     `mapstructure:"history_window"`
	RecencyDecay              float64 `mapstructure:"recency_decay"`
	PromoteAccuracy           float64 `mapstructure:"promote_accuracy"`
	DemoteAccuracy            float64 `mapstructure:"demote_accuracy"`
	ColdStartConfidence       float64 `mapstructure:"cold_start_confidence"`
	PromoteConfidence         float64 `mapstructure:"promote_confidence"`
	DemoteConfidence          float64 `mapstructure:"demote_confidence"`
	HoldConfidence            float64 `mapstructure:"hold_confidence"`
	StrugglingWordLimit       int     `mapstructure:"struggling_word_limit"`
	StrugglingConfidenceBoost float64 `mapstructure:"struggling_confidence_boost"`

	// Mid-session drift check.
	MidSessionMinExercises      int     `mapstructure:"mid_session_min_exercises"`
	MidSessionWindow            int     `mapstructure:"mid_session_window"`
	MidSessionMinWindow         int     `mapstructure:"mid_session_min_window"`
	MidSessionPromoteAccuracy   float64 `mapstructure:"mid_session_promote_accuracy"`
	MidSessionDemoteAccuracy    float64 `mapstructure:"mid_session_demote_accuracy"`
	MidSessionPromoteConfidence float64 `mapstructure:"mid_session_promote_confidence"`
	MidSessionDemoteConfidence  float64 `mapstructure:"mid_session_demote_confidence"`

	// General-purpose signal analysis.
	HighAccuracy          float64 `mapstructure:"high_accuracy"`
	VeryHighAccuracy      float64 `mapstructure:"very_high_accuracy"`
	LowAccuracy           float64 `mapstructure:"low_accuracy"`
	VeryLowAccuracy       float64 `mapstructure:"very_low_accuracy"`
	AccuracyConfidence    float64 `mapstructure:"accuracy_confidence"`
	StrongAccuracyConf    float64 `mapstructure:"strong_accuracy_confidence"`
	StreakLength          int     `mapstructure:"streak_length"`
	ErrorStreakLength     int     `mapstructure:"error_streak_length"`
	StreakConfidence      float64 `mapstructure:"streak_confidence"`
	AdjustConfidenceFloor float64 `mapstructure:"adjust_confidence_floor"`
}

// DefaultThresholds returns the standard tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ColdStartSessions:         5,
		HistoryWindow:             5,
		RecencyDecay:              0.8,
		PromoteAccuracy:           0.85,
		DemoteAccuracy:            0.60,
		ColdStartConfidence:       0.8,
		PromoteConfidence:         0.8,
		DemoteConfidence:          0.7,
		HoldConfidence:            0.6,
		StrugglingWordLimit:       10,
		StrugglingConfidenceBoost: 0.1,

		MidSessionMinExercises:      3,
		MidSessionWindow:            5,
		MidSessionMinWindow:         4,
		MidSessionPromoteAccuracy:   0.90,
		MidSessionDemoteAccuracy:    0.40,
		MidSessionPromoteConfidence: 0.7,
		MidSessionDemoteConfidence:  0.8,

		HighAccuracy:          0.85,
		VeryHighAccuracy:      0.95,
		LowAccuracy:           0.60,
		VeryLowAccuracy:       0.40,
		AccuracyConfidence:    0.3,
		StrongAccuracyConf:    0.4,
		StreakLength:          5,
		ErrorStreakLength:     3,
		StreakConfidence:      0.1,
		AdjustConfidenceFloor: 0.15,
	}
}
