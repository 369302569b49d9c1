package application

import "time"

const (
	// Highlight list size
	defaultTopN = 10

	// Harvester
	defaultHarvestInterval = 15 * time.Second
	harvestWindowLines     = 2 // lines searched after a name match
	lap2SourceLive         = "live"

	// CSV export
	csvDelimiter   = ";"
	csvFileName    = "klassement.csv"
	excelSheetName = "Klassement"
)

var csvHeader = []string{"pos", "name", "best_time", "lap1", "lap2"}
