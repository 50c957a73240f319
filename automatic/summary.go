package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gopkg.in/yaml.v3"

	"github.com/domino14/hangman/game"
	"github.com/domino14/hangman/stats"
)

const histogramBins = 10

// StatSummary is the printable form of a stats.Statistic.
type StatSummary struct {
	Mean  float64 `yaml:"mean"`
	Stdev float64 `yaml:"stdev"`
	CI95  float64 `yaml:"ci95"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

func summarize(s *stats.Statistic) StatSummary {
	return StatSummary{
		Mean:  s.Mean(),
		Stdev: s.Stdev(),
		CI95:  s.ConfidenceInterval(95),
		Min:   s.Min(),
		Max:   s.Max(),
	}
}

// Summary aggregates many automatic games.
type Summary struct {
	Games      int            `yaml:"games"`
	Won        int            `yaml:"won"`
	Lost       int            `yaml:"lost"`
	WinRate    float64        `yaml:"win_rate"`
	Wins       map[string]int `yaml:"wins_by_player"`
	Turns      StatSummary    `yaml:"turns"`
	BadGuesses StatSummary    `yaml:"bad_guesses"`

	turnStat  stats.Statistic
	badStat   stats.Statistic
	turnsSeen []float64
}

func NewSummary() *Summary {
	return &Summary{Wins: map[string]int{}}
}

// Add folds one game into the summary.
func (s *Summary) Add(rec GameRecord) {
	s.Games++
	switch rec.Outcome {
	case game.Won:
		s.Won++
		if rec.Winner != "" {
			s.Wins[rec.Winner]++
		}
	case game.Lost:
		s.Lost++
	}
	s.WinRate = float64(s.Won) / float64(s.Games)
	s.turnStat.Push(float64(rec.Turns))
	s.badStat.Push(float64(rec.BadGuesses))
	s.turnsSeen = append(s.turnsSeen, float64(rec.Turns))
	s.Turns = summarize(&s.turnStat)
	s.BadGuesses = summarize(&s.badStat)
}

// String renders the summary as YAML followed by a histogram of game lengths.
func (s *Summary) String() string {
	var sb strings.Builder
	out, err := yaml.Marshal(s)
	if err != nil {
		return "error marshalling summary: " + err.Error()
	}
	sb.Write(out)
	if len(s.turnsSeen) > 0 {
		sb.WriteString("\nTurns per game:\n")
		hist := histogram.Hist(histogramBins, s.turnsSeen)
		if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
			sb.WriteString("error drawing histogram: " + err.Error())
		}
	}
	return sb.String()
}

// AnalyzeLogFile rebuilds a summary from a game log written by Run.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	summary := NewSummary()
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == csvHeader[0] {
			// this is the header line
			continue
		}
		rec, err := parseRecord(record)
		if err != nil {
			return nil, err
		}
		summary.Add(rec)
	}
	return summary, nil
}

func parseRecord(record []string) (GameRecord, error) {
	rec := GameRecord{GameID: record[0], Secret: record[1], Winner: record[3]}
	switch record[2] {
	case game.Won.String():
		rec.Outcome = game.Won
	case game.Lost.String():
		rec.Outcome = game.Lost
	default:
		return rec, fmt.Errorf("game %v: unexpected outcome %q", rec.GameID, record[2])
	}
	var err error
	if rec.Turns, err = strconv.Atoi(record[4]); err != nil {
		return rec, err
	}
	if rec.BadGuesses, err = strconv.Atoi(record[5]); err != nil {
		return rec, err
	}
	return rec, nil
}
