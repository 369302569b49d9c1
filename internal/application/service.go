package application

import (
	"time"

	"github.com/Llorsque/500-tool/internal/laptime"
	"github.com/Llorsque/500-tool/internal/models"
	"github.com/Llorsque/500-tool/internal/repository"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// FeedFetcher returns the current external results feed as plain text.
type FeedFetcher interface {
	FetchText() (string, error)
}

type RankingService interface {
	BestTime(rec models.CompetitorRecord) (int, bool)
	Status(rec models.CompetitorRecord) models.RowStatus
	Leaderboard() []models.RankedEntry
	TopN(n int) []models.RankedEntry
}

type HarvestService interface {
	Start()
	Stop()
	Active() bool
	RunOnce() (int, error)
	LastResult() HarvestResult
}

type ExportService interface {
	CSV() string
	WriteCSVFile(path string) error
	Excel() ([]byte, error)
}

type Service struct {
	Ranking RankingService
	Harvest HarvestService
	Export  ExportService
}

func NewService(roster repository.Roster, layout laptime.Layout, fetcher FeedFetcher, interval time.Duration, logger Logger) *Service {
	ranking := NewRankingServiceImpl(roster, layout)
	return &Service{
		Ranking: ranking,
		Harvest: NewHarvestServiceImpl(roster, fetcher, layout, interval, logger),
		Export:  NewExportServiceImpl(ranking, layout),
	}
}
