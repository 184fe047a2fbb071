package core

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
		priority int
	}{
		{VerboseLevel, "VERBOSE", 2},
		{DebugLevel, "DEBUG", 3},
		{InfoLevel, "INFO", 4},
		{WarnLevel, "WARN", 5},
		{ErrorLevel, "ERROR", 6},
		{AssertLevel, "ASSERT", 7},
		{AnalyticsLevel, "ANALYTICS", 13},
		{Level(42), "UNKNOWN", 42},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
			if int(tt.level) != tt.priority {
				t.Errorf("priority = %d, want %d", int(tt.level), tt.priority)
			}
			if tt.level.IsValid() != (tt.expected != "UNKNOWN") {
				t.Errorf("IsValid() = %v", tt.level.IsValid())
			}
		})
	}

	if len(Levels) != 7 {
		t.Errorf("expected 7 levels, got %d", len(Levels))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"verbose", VerboseLevel, false},
		{"V", VerboseLevel, false},
		{"debug", DebugLevel, false},
		{" Info ", InfoLevel, false},
		{"information", InfoLevel, false},
		{"warning", WarnLevel, false},
		{"w", WarnLevel, false},
		{"ERROR", ErrorLevel, false},
		{"wtf", AssertLevel, false},
		{"assert", AssertLevel, false},
		{"analytics", AnalyticsLevel, false},
		{"fatal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
