package logger

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
		wantErr    bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			verbosity:  VerbosityInfo,
			wantErr:    false,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			verbosity:  VerbosityInfo,
			wantErr:    false,
		},
		{
			name:       "Console quiet mode",
			jsonOutput: false,
			verbosity:  VerbosityUser,
			wantErr:    false,
		},
		{
			name:       "JSON debug mode",
			jsonOutput: true,
			verbosity:  VerbosityDebug,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			err := Initialize(tt.jsonOutput, tt.verbosity)
			if (err != nil) != tt.wantErr {
				t.Errorf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if Logger == nil {
					t.Error("Initialize() did not set global Logger")
				}
				if JSONOutput != tt.jsonOutput {
					t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
				}
			}

			// Cleanup
			if Logger != nil {
				Logger.Sync()
				Logger = nil
			}
		})
	}
}

func TestInitializePicksUpThemeFromEnvironment(t *testing.T) {
	original := currentTheme
	defer func() { currentTheme = original }()

	os.Setenv("RRN_LOG_THEME", "gruvbox")
	defer os.Unsetenv("RRN_LOG_THEME")

	if err := Initialize(false, VerbosityUser); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer func() {
		Cleanup()
		Logger = nil
	}()

	if currentTheme != "gruvbox" {
		t.Errorf("Initialize() theme = %q, want gruvbox", currentTheme)
	}
}

func TestSetTheme(t *testing.T) {
	original := currentTheme
	defer func() { currentTheme = original }()

	tests := []struct {
		name  string
		theme string
		want  string
	}{
		{name: "gruvbox accepted", theme: "gruvbox", want: "gruvbox"},
		{name: "everforest accepted", theme: "everforest", want: "everforest"},
		{name: "unknown theme ignored", theme: "solarized", want: "everforest"},
		{name: "empty theme ignored", theme: "", want: "everforest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currentTheme = "everforest"
			SetTheme(tt.theme)
			if currentTheme != tt.want {
				t.Errorf("SetTheme(%q) left theme %q, want %q", tt.theme, currentTheme, tt.want)
			}
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zapcore.Level
	}{
		{name: "default is warnings only", verbosity: VerbosityUser, want: zapcore.WarnLevel},
		{name: "-v enables info", verbosity: VerbosityInfo, want: zapcore.InfoLevel},
		{name: "-vv enables debug", verbosity: VerbosityDebug, want: zapcore.DebugLevel},
		{name: "-vvv stays at debug", verbosity: VerbosityTrace, want: zapcore.DebugLevel},
		{name: "-vvvv stays at debug", verbosity: VerbosityAll, want: zapcore.DebugLevel},
		{name: "beyond all stays at debug", verbosity: 9, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbosityToLevel(tt.verbosity); got != tt.want {
				t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
			}
		})
	}
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{name: "results always shown", verbosity: VerbosityUser, category: OutputResults, want: true},
		{name: "errors always shown", verbosity: VerbosityUser, category: OutputErrors, want: true},
		{name: "progress hidden by default", verbosity: VerbosityUser, category: OutputProgress, want: false},
		{name: "progress shown at -v", verbosity: VerbosityInfo, category: OutputProgress, want: true},
		{name: "timing hidden at -v", verbosity: VerbosityInfo, category: OutputTiming, want: false},
		{name: "timing shown at -vv", verbosity: VerbosityDebug, category: OutputTiming, want: true},
		{name: "checksum detail shown at -vv", verbosity: VerbosityDebug, category: OutputChecksumDetail, want: true},
		{name: "candidates hidden at -vv", verbosity: VerbosityDebug, category: OutputCandidates, want: false},
		{name: "candidates shown at -vvv", verbosity: VerbosityTrace, category: OutputCandidates, want: true},
		{name: "data dump needs -vvvv", verbosity: VerbosityTrace, category: OutputDataDump, want: false},
		{name: "data dump shown at -vvvv", verbosity: VerbosityAll, category: OutputDataDump, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldOutput(tt.verbosity, tt.category); got != tt.want {
				t.Errorf("ShouldOutput(%d, %s) = %v, want %v",
					tt.verbosity, CategoryName(tt.category), got, tt.want)
			}
		})
	}
}

func TestEnabledCategoriesGrowWithVerbosity(t *testing.T) {
	prev := 0
	for verbosity := VerbosityUser; verbosity <= VerbosityAll; verbosity++ {
		enabled := len(EnabledCategories(verbosity))
		if enabled <= prev && verbosity > VerbosityUser {
			t.Errorf("EnabledCategories(%d) = %d categories, not more than %d at previous level",
				verbosity, enabled, prev)
		}
		prev = enabled
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name        string
		setupLogger bool
	}{
		{name: "Cleanup with initialized logger", setupLogger: true},
		{name: "Cleanup with nil logger (should not panic)", setupLogger: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupLogger {
				config := zap.NewDevelopmentConfig()
				zapLogger, err := config.Build()
				if err != nil {
					t.Fatalf("Failed to create test logger: %v", err)
				}
				Logger = zapLogger.Sugar()
			} else {
				Logger = nil
			}

			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Cleanup() panicked unexpectedly: %v", r)
				}
			}()

			Cleanup()

			if tt.setupLogger && Logger == nil {
				t.Error("Cleanup() should not nil out the logger")
			}

			Logger = nil
		})
	}
}

// newTestLogger creates a logger for testing without modifying global state
func newTestLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := config.Build()
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return zapLogger.Sugar()
}

// TestLoggingFunctions tests the package-level logging functions
func TestLoggingFunctions(t *testing.T) {
	Logger = newTestLogger(t)
	defer func() {
		if Logger != nil {
			Logger.Sync()
			Logger = nil
		}
	}()

	t.Run("Info functions", func(t *testing.T) {
		Info("test")
		Infof("test %s", "format")
		Infow("test", "key", "value")
	})

	t.Run("Error functions", func(t *testing.T) {
		Error("test")
		Errorf("test %s", "format")
		Errorw("test", "key", "value")
	})

	t.Run("Warn functions", func(t *testing.T) {
		Warn("test")
		Warnf("test %s", "format")
		Warnw("test", "key", "value")
	})

	t.Run("Debug functions", func(t *testing.T) {
		Debug("test")
		Debugf("test %s", "format")
		Debugw("test", "key", "value")
	})

	t.Run("With nil logger (should not panic)", func(t *testing.T) {
		Logger = nil

		// All these should be safe to call with nil logger
		Info("test")
		Infof("test %s", "format")
		Infow("test", "key", "value")
		Error("test")
		Errorf("test %s", "format")
		Errorw("test", "key", "value")
		Warn("test")
		Warnf("test %s", "format")
		Warnw("test", "key", "value")
		Debug("test")
		Debugf("test %s", "format")
		Debugw("test", "key", "value")
	})
}

func TestComponentLogger(t *testing.T) {
	Logger = newTestLogger(t)
	defer func() {
		Logger.Sync()
		Logger = nil
	}()

	named := ComponentLogger("cli.validate")
	if named == nil {
		t.Fatal("ComponentLogger() returned nil")
	}
	named.Infow("validation complete", FieldCount, 3, FieldValid, 2)

	child := ChildLogger(named, FieldSeed, int64(42))
	if child == nil {
		t.Fatal("ChildLogger() returned nil")
	}
	child.Debugw("generated", FieldNumber, "90022742191")
}

// Benchmark tests for logger performance

// BenchmarkInitialize benchmarks logger initialization
func BenchmarkInitialize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Logger = nil
		Initialize(false, VerbosityInfo)
		if Logger != nil {
			Logger.Sync()
		}
	}
}

// BenchmarkInitializeJSON benchmarks JSON logger initialization
func BenchmarkInitializeJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Logger = nil
		Initialize(true, VerbosityInfo)
		if Logger != nil {
			Logger.Sync()
		}
	}
}

// newBenchmarkLogger creates a logger for benchmarking without modifying global state
func newBenchmarkLogger() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return zapLogger.Sugar()
}

// BenchmarkInfow benchmarks structured Info logging
func BenchmarkInfow(b *testing.B) {
	Logger = newBenchmarkLogger()
	defer func() {
		if Logger != nil {
			Logger.Sync()
			Logger = nil
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Infow("test message", "iteration", i, "key", "value")
	}
}

// BenchmarkParallelLogging benchmarks concurrent logging
func BenchmarkParallelLogging(b *testing.B) {
	Logger = newBenchmarkLogger()
	defer func() {
		if Logger != nil {
			Logger.Sync()
			Logger = nil
		}
	}()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			Infow("parallel log", "goroutine_iteration", i)
			i++
		}
	})
}
