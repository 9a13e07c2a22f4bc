package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,required=true"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	LatencyThreshold     time.Duration `env:"LATENCY_THRESHOLD,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=10"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	DebugPort            int           `env:"DEBUG_PORT,default=0"`
	JournalLimit         int           `env:"JOURNAL_LIMIT,default=50"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Words splits a comma separated list, ignoring blank entries
func Words(str string) []string {
	var words []string
	for _, w := range strings.Split(str, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
